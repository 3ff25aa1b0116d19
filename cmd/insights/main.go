package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitaltrack/insights/internal/adapters/report"
	"github.com/vitaltrack/insights/internal/adapters/snapshot"
	"github.com/vitaltrack/insights/internal/config"
	"github.com/vitaltrack/insights/internal/core/domain"
	"github.com/vitaltrack/insights/internal/core/engine"
	"github.com/vitaltrack/insights/internal/core/ports"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliContext carries everything a subcommand needs after setup
type cliContext struct {
	source ports.SnapshotSource
	now    time.Time
	format report.Format
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		snapshotPath string
		asOf         string
		format       string
		logLevel     string
	)

	root := &cobra.Command{
		Use:           "insights",
		Short:         "Derive health scores, trends, streaks, and insights from a record snapshot",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "path to a JSON snapshot export")
	root.PersistentFlags().StringVar(&asOf, "as-of", "", "reference time (RFC3339 or YYYY-MM-DD, default: now)")
	root.PersistentFlags().StringVar(&format, "format", "", "output format: text or json")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	setup := func() (*cliContext, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		// Flags win over the environment
		if snapshotPath != "" {
			cfg.SnapshotPath = snapshotPath
		}
		if asOf != "" {
			cfg.AsOf = asOf
		}
		if format != "" {
			cfg.Format = format
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}

		if cfg.SnapshotPath == "" {
			return nil, fmt.Errorf("a snapshot is required: pass --snapshot or set INSIGHTS_SNAPSHOT_PATH")
		}
		if !report.IsValidFormat(report.Format(cfg.Format)) {
			return nil, fmt.Errorf("invalid format %q: want text or json", cfg.Format)
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()

		now, err := cfg.ReferenceTime()
		if err != nil {
			return nil, err
		}

		return &cliContext{
			source: snapshot.NewFileSource(cfg.SnapshotPath, logger),
			now:    now,
			format: report.Format(cfg.Format),
			logger: logger,
		}, nil
	}

	root.AddCommand(reportCmd(setup))
	root.AddCommand(scoreCmd(setup))
	root.AddCommand(streakCmd(setup))
	root.AddCommand(insightsCmd(setup))
	root.AddCommand(trendsCmd(setup))
	return root
}

func loadSnapshot(ctx context.Context, cli *cliContext) (*domain.Snapshot, error) {
	snap, err := cli.source.Load(ctx)
	if err != nil {
		cli.logger.Error().Err(err).Msg("failed to load snapshot")
		return nil, err
	}
	return snap, nil
}

func reportCmd(setup func() (*cliContext, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Full report: score, BMI, trends, streak, insights, medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := setup()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), cli)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), engine.Evaluate(snap, cli.now), cli.format)
		},
	}
}

func scoreCmd(setup func() (*cliContext, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Weighted 0-100 health score with per-component breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := setup()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), cli)
			if err != nil {
				return err
			}
			score := engine.ComputeHealthScore(
				engine.LatestReading(snap.BloodPressure),
				snap.BloodPressure,
				engine.LatestWeight(snap.Weights),
				snap.Weights,
				snap.Goals,
				snap.Visits,
				cli.now,
			)
			if cli.format == report.FormatJSON {
				return report.WriteJSON(cmd.OutOrStdout(), score)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Health Score: %d/100\n", score.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "  Blood pressure:  %d (%s)\n", score.BloodPressure, score.Details.BloodPressure.Reason)
			fmt.Fprintf(cmd.OutOrStdout(), "  Weight:          %d (%s)\n", score.Weight, score.Details.Weight.Reason)
			fmt.Fprintf(cmd.OutOrStdout(), "  Activity:        %d (%s)\n", score.Activity, score.Details.Activity.Reason)
			fmt.Fprintf(cmd.OutOrStdout(), "  Goals:           %d (%s)\n", score.Goals, score.Details.Goals.Reason)
			fmt.Fprintf(cmd.OutOrStdout(), "  Preventive care: %d (%s)\n", score.PreventiveCare, score.Details.PreventiveCare.Reason)
			return nil
		},
	}
}

func streakCmd(setup func() (*cliContext, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "streak",
		Short: "Consecutive-day tracking streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := setup()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), cli)
			if err != nil {
				return err
			}
			streak := engine.ComputeStreak(
				engine.ActivityDates(snap.BloodPressure, snap.Weights, snap.Visits, cli.now),
				cli.now,
			)
			if cli.format == report.FormatJSON {
				return report.WriteJSON(cmd.OutOrStdout(), streak)
			}
			fmt.Fprintln(cmd.OutOrStdout(), streak.Message)
			return nil
		},
	}
}

func insightsCmd(setup func() (*cliContext, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Human-readable observations derived from the records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := setup()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), cli)
			if err != nil {
				return err
			}
			insights := engine.GenerateInsights(snap.BloodPressure, snap.Weights, snap.Labs, snap.Visits, cli.now)
			if cli.format == report.FormatJSON {
				return report.WriteJSON(cmd.OutOrStdout(), insights)
			}
			for _, ins := range insights {
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s — %s\n", ins.Type, ins.Title, ins.Description)
			}
			return nil
		},
	}
}

func trendsCmd(setup func() (*cliContext, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "trends",
		Short: "Latest-vs-previous trends for weight and blood pressure",
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := setup()
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), cli)
			if err != nil {
				return err
			}
			trends := map[string]*domain.TrendResult{
				"weight":    engine.WeightTrend(snap.Weights),
				"bmi":       engine.BMITrend(snap.Weights),
				"systolic":  engine.SystolicTrend(snap.BloodPressure),
				"diastolic": engine.DiastolicTrend(snap.BloodPressure),
			}
			if cli.format == report.FormatJSON {
				return report.WriteJSON(cmd.OutOrStdout(), trends)
			}
			for _, name := range []string{"weight", "bmi", "systolic", "diastolic"} {
				t := trends[name]
				if t == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s no prior value\n", name)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %+.1f (%s%%)\n", name, t.Diff, t.Percentage)
			}
			return nil
		},
	}
}
