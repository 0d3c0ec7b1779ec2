package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formwidget/internal/config"
	"github.com/goliatone/go-formwidget/internal/observability"
	"github.com/goliatone/go-formwidget/pkg/page"
	"github.com/goliatone/go-formwidget/pkg/schema"
)

// cli holds the resolved configuration shared by every command.
type cli struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	app := &cli{cfg: config.Load(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "formwidget",
		Short: "Render, fill in and check contact forms",
		Long: `formwidget mounts validated forms into an HTML page.
It renders the page, fills a form in from the terminal, or checks values
given on the command line against the same rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := observability.NewLogger(app.cfg.Logger)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			app.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = app.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfg.App.PageConfig, "config", app.cfg.App.PageConfig, "page configuration YAML (default: embedded French/English page)")
	flags.StringVar(&app.cfg.App.OpenAPI, "openapi", app.cfg.App.OpenAPI, "OpenAPI document whose schema replaces the first form's fields")
	flags.StringVar(&app.cfg.App.Schema, "schema", app.cfg.App.Schema, "component schema name used with --openapi")
	flags.StringVar(&app.cfg.App.Locale, "locale", app.cfg.App.Locale, "only consider forms with this locale")
	flags.BoolVarP(&app.cfg.Logger.Verbose, "verbose", "v", app.cfg.Logger.Verbose, "enable debug logging")

	rootCmd.AddCommand(
		newRenderCmd(app),
		newPromptCmd(app),
		newCheckCmd(app),
	)
	return rootCmd
}

func (c *cli) pageConfig(ctx context.Context) (page.Config, error) {
	cfg := page.DefaultConfig()
	if path := strings.TrimSpace(c.cfg.App.PageConfig); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return page.Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if cfg, err = page.LoadConfig(f); err != nil {
			return page.Config{}, err
		}
	}

	if path := strings.TrimSpace(c.cfg.App.OpenAPI); path != "" {
		name := strings.TrimSpace(c.cfg.App.Schema)
		if name == "" {
			return page.Config{}, errors.New("--schema is required with --openapi")
		}
		doc, err := schema.LoadFile(path)
		if err != nil {
			return page.Config{}, err
		}
		mount, err := schema.MountFromDocument(ctx, doc, name, cfg.Forms[0])
		if err != nil {
			return page.Config{}, err
		}
		cfg.Forms[0] = mount
		c.logger.Debug("form imported from openapi",
			zap.String("document", doc.Location()),
			zap.String("schema", name),
			zap.Int("fields", len(mount.Fields)),
		)
	}
	return cfg, nil
}

func (c *cli) buildPage(ctx context.Context) (*page.Page, error) {
	cfg, err := c.pageConfig(ctx)
	if err != nil {
		return nil, err
	}
	return page.Build(cfg, page.WithLogger(c.logger))
}

// mounts returns the page mounts, restricted to --locale when set.
func (c *cli) mounts(p *page.Page) ([]*page.Mount, error) {
	locale := strings.TrimSpace(c.cfg.App.Locale)
	if locale == "" {
		return p.Mounts(), nil
	}
	var out []*page.Mount
	for _, m := range p.Mounts() {
		if strings.EqualFold(m.Locale(), locale) {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no form with locale %q", locale)
	}
	return out, nil
}

// mount resolves --form among the candidate mounts; an empty name picks the
// first one.
func (c *cli) mount(p *page.Page, name string) (*page.Mount, error) {
	candidates, err := c.mounts(p)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return candidates[0], nil
	}
	for _, m := range candidates {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("unknown form %q", name)
}
