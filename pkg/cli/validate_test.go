package cli_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ems-lab/cpgnav/pkg/cli"
)

func TestValidateEmbeddedDataset(t *testing.T) {
	err := cli.Run(context.Background(), []string{"cpgnav", "validate"}, "test")
	gt.NoError(t, err)
}

func TestValidateCustomDataset(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guideline.toml")
		content := `
id = "local-cpg"
title = "Local Guidelines"
version = "1.0"

[[sections]]
id = "sec-1.1"
title = "Scene Assessment"
category = "Assessment"
page = 5
keywords = ["1.1", "scene", "assessment"]
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		err := cli.Run(context.Background(), []string{"cpgnav", "validate", "--guideline", path}, "test")
		gt.NoError(t, err)
	})

	t.Run("BrokenDataset", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "guideline.toml")
		content := `
id = "local-cpg"

[[sections]]
id = "sec-1.1"
title = ""
category = "Assessment"
page = 5
keywords = ["1.1"]
`
		gt.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		err := cli.Run(context.Background(), []string{"cpgnav", "validate", "--guideline", path}, "test")
		gt.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		err := cli.Run(context.Background(), []string{"cpgnav", "validate", "--guideline", "/no/such/file.toml"}, "test")
		gt.Error(t, err)
	})
}

func TestLookupRequiresQuery(t *testing.T) {
	err := cli.Run(context.Background(), []string{"cpgnav", "lookup"}, "test")
	gt.Error(t, err)
}

func TestLookupResolves(t *testing.T) {
	err := cli.Run(context.Background(), []string{"cpgnav", "lookup", "naloxone"}, "test")
	gt.NoError(t, err)
}

func TestCategoriesList(t *testing.T) {
	err := cli.Run(context.Background(), []string{"cpgnav", "categories"}, "test")
	gt.NoError(t, err)
}

func TestCategoriesSections(t *testing.T) {
	err := cli.Run(context.Background(), []string{"cpgnav", "categories", "Assessment"}, "test")
	gt.NoError(t, err)
}
