package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/ems-lab/cpgnav/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("json")
	gt.NoError(t, err)
	gt.Value(t, f).Equal(logging.FormatJSON)

	f, err = logging.ParseFormat("console")
	gt.NoError(t, err)
	gt.Value(t, f).Equal(logging.FormatConsole)

	_, err = logging.ParseFormat("yaml")
	gt.Error(t, err)
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	logger.Info("lookup", "query", "cardiac arrest", "matches", 2)
	logger.Debug("should be filtered")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.Value(t, record["msg"]).Equal("lookup")
	gt.Value(t, record["query"]).Equal("cardiac arrest")
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)

	ctx := logging.With(context.Background(), logger)
	gt.Value(t, logging.From(ctx)).Equal(logger)

	// Fallback to default when ctx has no logger
	gt.Value(t, logging.From(context.Background())).Equal(logging.Default())
}
