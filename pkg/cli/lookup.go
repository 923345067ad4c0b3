package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ems-lab/cpgnav/pkg/cli/config"
	"github.com/ems-lab/cpgnav/pkg/domain/model"
	"github.com/ems-lab/cpgnav/pkg/service/match"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
)

func cmdLookup() *cli.Command {
	var guidelineCfg config.Guideline
	var searchAll bool
	var category string

	flags := []cli.Flag{
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "List every match instead of resolving to the single best section",
			Destination: &searchAll,
		},
		&cli.StringFlag{
			Name:        "category",
			Usage:       "Restrict matches to one category",
			Destination: &category,
		},
	}
	flags = append(flags, guidelineCfg.Flags()...)

	return &cli.Command{
		Name:      "lookup",
		Aliases:   []string{"l"},
		Usage:     "Resolve a query to a guideline section from the command line",
		ArgsUsage: "<query>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(query) == "" {
				return goerr.New("query is required")
			}

			store, err := guidelineCfg.Configure()
			if err != nil {
				return err
			}
			engine := match.New(store)

			if searchAll {
				printSearchResults(engine.Search(query, category), query)
				return nil
			}

			entry := engine.Resolve(query)
			if entry == nil {
				color.Yellow("no section matches %q", query)
				return nil
			}
			printEntry(entry, store)
			return nil
		},
	}
}

func printEntry(entry *model.Entry, store *taxonomy.Store) {
	bold := color.New(color.Bold)
	bold.Printf("%s  %s\n", entry.ID, entry.Title)
	fmt.Printf("  category: %s\n", entry.Category)
	fmt.Printf("  page:     %d\n", entry.Page)
	fmt.Printf("  document: %s\n", store.DocumentID())
}

func printSearchResults(entries []*model.Entry, query string) {
	if len(entries) == 0 {
		color.Yellow("no sections match %q", query)
		return
	}

	fmt.Printf("%d sections match %q:\n", len(entries), query)
	shown := entries
	if len(shown) > match.DisplayLimit {
		shown = shown[:match.DisplayLimit]
	}
	for _, e := range shown {
		fmt.Printf("  %-10s %s (%s, p.%d)\n", e.ID, e.Title, e.Category, e.Page)
	}
	if len(entries) > len(shown) {
		fmt.Printf("  ... and %d more\n", len(entries)-len(shown))
	}
}
