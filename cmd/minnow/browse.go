package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/minnow-browser/minnow/internal/config"
	"github.com/minnow-browser/minnow/internal/domain/entity"
	"github.com/minnow-browser/minnow/internal/logging"
	"github.com/minnow-browser/minnow/internal/webengine"
)

func newBrowseCmd() *cobra.Command {
	var desktopMode bool
	var private bool

	cmd := &cobra.Command{
		Use:   "browse [url]",
		Short: "Open a browsing session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri := ""
			if len(args) > 0 {
				uri = args[0]
			}
			return runBrowse(cmd.Context(), uri, desktopMode, private)
		},
	}

	cmd.Flags().BoolVar(&desktopMode, "desktop", false, "use the desktop user agent")
	cmd.Flags().BoolVar(&private, "private", false, "browse in a private context")
	return cmd
}

func runBrowse(ctx context.Context, uri string, desktopMode, private bool) error {
	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to create config manager: %w", err)
	}
	if err := manager.Load(); err != nil {
		return err
	}
	cfg := manager.Get()

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Msg("starting minnow")

	ctx = logging.WithContext(ctx, logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := webengine.NewPlatformEngine()
	if err != nil {
		return fmt.Errorf("failed to start rendering engine: %w", err)
	}

	launcher, download := platformCollaborators()
	service := webengine.NewService(ctx, engine, webengine.Deps{
		Launcher: launcher,
		Download: download,
	}, cfg)
	defer service.Close()

	if uri == "" {
		uri = cfg.Browsing.HomePage
	}
	id, err := service.AddTab(uri, entity.TabOriginUnknown, desktopMode, private)
	if err != nil {
		return err
	}
	if err := service.SwitchToTab(id); err != nil {
		return err
	}

	if err := manager.Watch(); err != nil {
		logger.Warn().Err(err).Msg("config watch unavailable")
	}
	manager.OnConfigChange(func(c *config.Config) {
		logger.Info().Msg("configuration reloaded")
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return engine.Run(ctx)
	})
	return g.Wait()
}
