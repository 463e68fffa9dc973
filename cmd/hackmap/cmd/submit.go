package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// submitCmd adds a single hackathon by URL.
var submitCmd = &cobra.Command{
	Use:   "submit <url>",
	Short: "Add one hackathon from its event page URL",
	Long: `Submit fetches a single event page, extracts structured fields from
it, and reconciles the result into the store. Useful for events the
scrapers do not cover.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := logging.WithLogger(cmd.Context(), logging.Default())
		url := args[0]

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		extractor, err := newExtractor(ctx)
		if err != nil {
			return err
		}

		candidate, err := extractor.ExtractURL(ctx, url)
		if err != nil {
			return err
		}

		batch, err := newReconciler(s).Batch(ctx,
			[]hackathons.Candidate{candidate}, "manual-submission")
		if err != nil {
			return err
		}
		if len(batch.Failed) > 0 {
			return batch.Failed[0].Err
		}

		action := "created"
		if batch.Merged > 0 {
			action = "merged into an existing record"
		}
		fmt.Printf("%s: %s\n", candidate.Name, action)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
