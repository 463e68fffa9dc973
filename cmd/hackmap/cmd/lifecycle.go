package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/lifecycle"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/logging"
)

// lifecycleCmd reclassifies every stored record against today's date.
var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Refresh the status of every stored record",
	Long: `Lifecycle reclassifies every record's status (upcoming, registration
open, active, judging, completed) against the current date and persists
only the records whose status changed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Default()

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		records, err := s.List()
		if err != nil {
			return errors.WrapResource("load", "hackathons", "", err)
		}

		engine := lifecycle.New(lifecycle.Config{})
		changed := 0
		for _, h := range records {
			updated, ok := engine.UpdateStatus(h)
			if !ok {
				continue
			}
			if err := s.Upsert(updated); err != nil {
				return errors.WrapResource("save", "hackathon", h.ID, err)
			}
			logger.Info().
				Str("id", h.ID).
				Str("from", string(h.Status)).
				Str("to", string(updated.Status)).
				Msg("Status transitioned")
			changed++
		}

		fmt.Printf("Lifecycle refresh: %d of %d records transitioned\n", changed, len(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lifecycleCmd)
}
