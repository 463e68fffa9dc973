package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/hackathons"
)

var (
	listStatus string
	listJSON   bool
)

// listCmd prints the stored records.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored hackathon records",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		records, err := s.List()
		if err != nil {
			return errors.WrapResource("load", "hackathons", "", err)
		}

		if listStatus != "" {
			want, err := hackathons.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			filtered := records[:0]
			for _, h := range records {
				if h.Status == want {
					filtered = append(filtered, h)
				}
			}
			records = filtered
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDEADLINE\tSOURCE")
		for _, h := range records {
			deadline := ""
			if h.SubmissionDeadline != nil {
				deadline = h.SubmissionDeadline.String()
			} else if h.RegistrationDeadline != nil {
				deadline = h.RegistrationDeadline.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				h.ID, h.Name, h.Status, deadline, h.Source)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}
