package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/ems-lab/cpgnav/pkg/cli/config"
)

func cmdCategories() *cli.Command {
	var guidelineCfg config.Guideline

	return &cli.Command{
		Name:      "categories",
		Usage:     "List guideline categories, or the sections of one category",
		ArgsUsage: "[category]",
		Flags:     guidelineCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := guidelineCfg.Configure()
			if err != nil {
				return err
			}

			name := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(name) == "" {
				for _, cat := range store.Categories() {
					fmt.Printf("  %-28s %d sections\n", cat.Name, cat.Count)
				}
				return nil
			}

			entries := store.ByCategory(name)
			if len(entries) == 0 {
				color.Yellow("no category matches %q", name)
				return nil
			}

			bold := color.New(color.Bold)
			bold.Printf("%s\n", entries[0].Category)
			for _, e := range entries {
				fmt.Printf("  %-10s %s (p.%d)\n", e.ID, e.Title, e.Page)
			}
			return nil
		},
	}
}
