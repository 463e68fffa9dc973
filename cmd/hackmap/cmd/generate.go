package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/basedmereum/awesome-ai-agent-hackathons/internal/generate"
	"github.com/basedmereum/awesome-ai-agent-hackathons/pkg/errors"
)

// generateCmd renders the static outputs from the store.
var generateCmd = &cobra.Command{
	Use:   "generate [site|readme|rss|ical|all]",
	Short: "Render static outputs from the record store",
	Long: `Generate renders the record store into static artifacts: the
filterable listing page (index.html), the README tables, the RSS feed
(feed.xml), and the iCal deadline calendar (hackathons.ics). With no
argument every output is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		g := generate.New(s, viper.GetString("site-dir"), viper.GetString("root-dir"))

		target := "all"
		if len(args) == 1 {
			target = args[0]
		}

		switch target {
		case "all":
			err = g.All()
		case "site":
			err = g.Site()
		case "readme":
			err = g.Readme()
		case "rss":
			err = g.RSS()
		case "ical":
			err = g.ICal()
		default:
			return &errors.ConfigError{
				Component: "generate",
				Message:   "unknown output " + target,
			}
		}
		if err != nil {
			return err
		}

		fmt.Printf("Generated %s outputs\n", target)
		return nil
	},
}

func init() {
	generateCmd.Flags().String("site-dir", "site", "directory for site artifacts")
	generateCmd.Flags().String("root-dir", ".", "directory for README.md")
	_ = viper.BindPFlag("site-dir", generateCmd.Flags().Lookup("site-dir"))
	_ = viper.BindPFlag("root-dir", generateCmd.Flags().Lookup("root-dir"))
	rootCmd.AddCommand(generateCmd)
}
