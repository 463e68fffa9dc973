package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/basedmereum/awesome-ai-agent-hackathons/internal/generate"
	"github.com/basedmereum/awesome-ai-agent-hackathons/internal/scheduler"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/lifecycle"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// watchCmd runs the full aggregation job on a cron schedule.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the aggregation job on a schedule",
	Long: `Watch runs the full pipeline (scrape all sources, refresh lifecycle
statuses, regenerate outputs) on a cron schedule and blocks until
interrupted. The default schedule runs daily at 02:00.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := scheduler.New(
			scheduler.Config{CronSpec: viper.GetString("cron")},
			runAggregation,
		)
		if err != nil {
			return err
		}

		sched.Start()
		fmt.Println("Watching; press Ctrl-C to stop")
		<-cmd.Context().Done()
		sched.Stop()
		return nil
	},
}

// runAggregation is one full pipeline pass: scrape, reclassify, render.
func runAggregation(ctx context.Context) {
	logger := logging.FromContext(ctx)

	s, err := openStore()
	if err != nil {
		logger.Error().Err(err).Msg("Aggregation aborted: store unavailable")
		return
	}
	defer func() { _ = s.Close() }()

	extractor, err := newExtractor(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Aggregation aborted: extractor unavailable")
		return
	}

	sources, _ := newSources(extractor, "")
	rec := newReconciler(s)
	for _, src := range sources {
		candidates, err := src.Fetch(ctx)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("source", src.ID()).
				Msg("Source fetch incomplete")
		}
		if len(candidates) == 0 {
			continue
		}
		if _, err := rec.Batch(ctx, candidates, src.ID()); err != nil {
			logger.Error().Err(err).Str("source", src.ID()).Msg("Batch aborted")
			return
		}
	}

	engine := lifecycle.New(lifecycle.Config{})
	records, err := s.List()
	if err != nil {
		logger.Error().Err(err).Msg("Lifecycle refresh failed")
		return
	}
	for _, h := range records {
		if updated, ok := engine.UpdateStatus(h); ok {
			if err := s.Upsert(updated); err != nil {
				logger.Error().Err(err).Str("id", h.ID).Msg("Status save failed")
			}
		}
	}

	g := generate.New(s, viper.GetString("site-dir"), viper.GetString("root-dir"))
	if err := g.All(); err != nil {
		logger.Error().Err(err).Msg("Output generation failed")
	}
}

func init() {
	watchCmd.Flags().String("cron", "", "cron schedule (default daily at 02:00)")
	_ = viper.BindPFlag("cron", watchCmd.Flags().Lookup("cron"))
	rootCmd.AddCommand(watchCmd)
}
