package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"travelog/internal/build"
	"travelog/internal/deps"
)

func newBuildCommand(cmdCtx *commandContext) *cobra.Command {
	var transcodeFlag string
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run one catalog build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				return err
			}
			if transcodeFlag != "" {
				transcode, err := strconv.ParseBool(transcodeFlag)
				if err != nil {
					return fmt.Errorf("parse --transcode: %w", err)
				}
				cfg.Video.Transcode = transcode
			}
			if workersFlag > 0 {
				cfg.Build.Workers = workersFlag
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			if missing := deps.MissingRequired(statuses); len(missing) > 0 {
				return fmt.Errorf("missing required tools: %v (run `travelog deps`)", missing)
			}

			logger, err := cmdCtx.ensureLogger()
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			summary, err := build.New(cfg, logger).Run(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Built %d entries across %d days in %s\n",
				summary.Entries, summary.Days, summary.Duration.Round(time.Millisecond))
			fmt.Fprintf(out, "Images: %d  Videos: %d  Live pairs: %d  Annotated days: %d\n",
				summary.Counts.Images, summary.Counts.Videos, summary.Counts.Live, summary.AnnotatedDays)
			if len(summary.Conflicts) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, renderConflicts(summary.Conflicts))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&transcodeFlag, "transcode", "", "Override the video transcode policy (true or false)")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Override the derivation worker count")
	return cmd
}
