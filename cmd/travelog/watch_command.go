package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"travelog/internal/build"
	"travelog/internal/watch"
)

func newWatchCommand(cmdCtx *commandContext) *cobra.Command {
	var debounceFlag time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build once, then rebuild whenever the source directory changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			runner := build.New(cfg, logger)
			rebuild := func(ctx context.Context) error {
				summary, err := runner.Run(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rebuilt %d entries across %d days in %s\n",
					summary.Entries, summary.Days, summary.Duration.Round(time.Millisecond))
				return nil
			}

			if err := rebuild(ctx); err != nil {
				return err
			}
			return watch.Watch(ctx, cfg.Paths.SourceDir, debounceFlag, logger, rebuild)
		},
	}

	cmd.Flags().DurationVar(&debounceFlag, "debounce", watch.DefaultDebounce, "Quiet period before a change triggers a rebuild")
	return cmd
}
