package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/sparkle/internal/app"
	"github.com/abhisek/sparkle/internal/config"
	"github.com/abhisek/sparkle/internal/sparkles"
)

// runApp launches the TUI with the resolved configuration.
func runApp(cmd *cobra.Command) error {
	skip, _ := cmd.Flags().GetBool("skip-welcome")
	watch, _ := cmd.Flags().GetBool("watch")

	logger.Info("starting",
		zap.String("version", version),
		zap.Int("count", cfg.Count),
		zap.Bool("skip_welcome", skip),
		zap.Bool("watch", watch))

	opts := app.Options{
		Props:       cfg.Props(),
		Logger:      logger,
		SkipWelcome: skip,
	}

	if watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		reload, err := watchConfig(ctx, cmd)
		if err != nil {
			cancel()
			return err
		}
		defer cancel()
		opts.Reload = reload
	}

	return app.Run(opts)
}

// watchConfig streams props from every valid reload of the config file.
// The channel closes when ctx is cancelled.
func watchConfig(ctx context.Context, cmd *cobra.Command) (<-chan sparkles.Props, error) {
	w, err := config.NewWatcher(cfgPath, logger)
	if err != nil {
		return nil, err
	}

	out := make(chan sparkles.Props)
	go func() {
		defer close(out)
		err := w.Run(ctx, func(c config.Config) {
			c, err := overlay(cmd, c)
			if err != nil {
				logger.Warn("ignoring reloaded config", zap.Error(err))
				return
			}
			select {
			case out <- c.Props():
			case <-ctx.Done():
			}
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("config watcher stopped", zap.Error(err))
		}
	}()
	return out, nil
}
