package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/ems-lab/cpgnav/pkg/cli/config"
	"github.com/ems-lab/cpgnav/pkg/utils/logging"
)

func cmdValidate() *cli.Command {
	var guidelineCfg config.Guideline

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a guideline dataset file",
		Flags:   guidelineCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			store, err := guidelineCfg.Configure()
			if err != nil {
				return err
			}

			logger.Info("Dataset validation passed",
				"document_id", store.DocumentID(),
				"version", store.Version(),
				"sections", store.Len(),
			)
			for _, cat := range store.Categories() {
				logger.Info("Category validated", "name", cat.Name, "sections", cat.Count)
			}

			return nil
		},
	}
}
