package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/reconciler"
)

var scrapeSource string

// scrapeCmd collects candidates from the configured sources and reconciles
// them into the store.
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Collect hackathons from all sources and update the store",
	Long: `Scrape discovers hackathon listings from every configured source
(devpost, lablab, blockchain ecosystem pages), extracts structured fields
from each event page, and reconciles the candidates into the record store.
Duplicates are merged; new events create records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithLogger(cmd.Context(), logging.Default())
		logger := logging.FromContext(ctx)

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		extractor, err := newExtractor(ctx)
		if err != nil {
			return err
		}

		sources, err := newSources(extractor, scrapeSource)
		if err != nil {
			return err
		}

		rec := newReconciler(s)
		total := &reconciler.BatchResult{}

		for _, src := range sources {
			candidates, err := src.Fetch(ctx)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("source", src.ID()).
					Int("collected", len(candidates)).
					Msg("Source fetch incomplete")
			}
			if len(candidates) == 0 {
				continue
			}

			batch, err := rec.Batch(ctx, candidates, src.ID())
			if err != nil {
				return err
			}
			total.Created += batch.Created
			total.Merged += batch.Merged
			total.Failed = append(total.Failed, batch.Failed...)
		}

		fmt.Printf("Scrape complete: %d created, %d merged, %d failed\n",
			total.Created, total.Merged, len(total.Failed))
		for _, f := range total.Failed {
			fmt.Printf("  failed: %s (%s): %v\n", f.Name, f.URL, f.Err)
		}
		return nil
	},
}

func init() {
	scrapeCmd.Flags().StringVar(&scrapeSource, "source", "", "limit to one source: devpost, lablab, blockchain")
	scrapeCmd.Flags().Float64("min-confidence", 0, "drop candidates below this extraction confidence")
	_ = viper.BindPFlag("min-confidence", scrapeCmd.Flags().Lookup("min-confidence"))
	rootCmd.AddCommand(scrapeCmd)
}
