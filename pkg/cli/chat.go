package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ems-lab/cpgnav/pkg/agent/tool"
	"github.com/ems-lab/cpgnav/pkg/cli/config"
	"github.com/ems-lab/cpgnav/pkg/usecase"
	"github.com/ems-lab/cpgnav/pkg/utils/safe"
)

func cmdChat() *cli.Command {
	var guidelineCfg config.Guideline
	var repoCfg config.Repository
	var geminiCfg config.Gemini

	var flags []cli.Flag
	flags = append(flags, guidelineCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Interactive guideline assistant on the terminal",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := guidelineCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}
			if llmClient == nil {
				return goerr.New("chat requires a Gemini project, set --gemini-project")
			}

			uc := usecase.New(repo, store, usecase.WithLLMClient(llmClient))

			title := color.New(color.FgCyan, color.Bold)
			prompt := color.New(color.FgGreen, color.Bold)
			trace := color.New(color.Faint)

			title.Printf("%s\n", store.Title())
			fmt.Printf("%d sections loaded. Type a question, or 'exit' to quit.\n\n", store.Len())

			// Tool activity is echoed as dimmed lines while the agent works
			ctx = tool.WithUpdate(ctx, func(_ context.Context, msg string) {
				trace.Printf("  %s\n", msg)
			})

			scanner := bufio.NewScanner(os.Stdin)
			for {
				prompt.Print("> ")
				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					break
				}

				reply, err := uc.Chat.Chat(ctx, line)
				if err != nil {
					color.Red("error: %v", err)
					continue
				}
				fmt.Printf("\n%s\n\n", reply)
			}

			if err := scanner.Err(); err != nil {
				return goerr.Wrap(err, "failed to read input")
			}
			return nil
		},
	}
}
