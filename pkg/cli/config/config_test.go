package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/ems-lab/cpgnav/pkg/cli/config"
	"github.com/ems-lab/cpgnav/pkg/domain/interfaces"
	"github.com/ems-lab/cpgnav/pkg/service/taxonomy"
)

func TestRepositoryConfigure(t *testing.T) {
	t.Run("MemoryBackend", func(t *testing.T) {
		var cfg config.Repository
		var repo interfaces.Repository

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				r, err := cfg.Configure(ctx)
				if err != nil {
					return err
				}
				repo = r
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test", "--repository-backend", "memory"}))
		if repo == nil {
			t.Fatal("expected repository")
		}
		gt.NoError(t, repo.Close())
	})

	t.Run("FirestoreRequiresProject", func(t *testing.T) {
		var cfg config.Repository

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				_, err := cfg.Configure(ctx)
				return err
			},
		}
		gt.Error(t, cmd.Run(context.Background(), []string{"test", "--repository-backend", "firestore"}))
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		var cfg config.Repository

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				_, err := cfg.Configure(ctx)
				return err
			},
		}
		gt.Error(t, cmd.Run(context.Background(), []string{"test", "--repository-backend", "redis"}))
	})
}

func TestGuidelineConfigure(t *testing.T) {
	t.Run("EmbeddedDefault", func(t *testing.T) {
		var cfg config.Guideline
		var store *taxonomy.Store

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				s, err := cfg.Configure()
				if err != nil {
					return err
				}
				store = s
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))
		if store == nil {
			t.Fatal("expected store")
		}
		gt.Value(t, store.DocumentID().String()).Equal("hmcas-cpg-2.4")
	})

	t.Run("MissingFile", func(t *testing.T) {
		var cfg config.Guideline

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				_, err := cfg.Configure()
				return err
			},
		}
		gt.Error(t, cmd.Run(context.Background(), []string{"test", "--guideline", "/no/such/file.toml"}))
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var cfg config.Logger

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				closer, err := cfg.Configure()
				if err != nil {
					return err
				}
				closer()
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		var cfg config.Logger

		cmd := &cli.Command{
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				_, err := cfg.Configure()
				return err
			},
		}
		gt.Error(t, cmd.Run(context.Background(), []string{"test", "--log-level", "loud"}))
	})
}
