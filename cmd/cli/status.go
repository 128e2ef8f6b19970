package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var outputJSON bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the pull requests the daemon is watching",
	RunE: func(_ *cobra.Command, _ []string) error {
		m, err := newAPIClient(serverAddr).fetchMenu()
		if err != nil {
			return err
		}

		if outputJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(m)
		}

		if m.Total == 0 {
			fmt.Println("No open pull requests.")
			return nil
		}

		bold := color.New(color.Bold)
		for _, section := range m.Sections {
			_, _ = bold.Printf("%s (%d)\n", section.Title, len(section.Rows))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, row := range section.Rows {
				fmt.Fprintf(w, "  %s %s\t%s\t%s\t@%s\n",
					row.StatusGlyph,
					row.ActivityGlyph,
					row.Repo,
					row.Title,
					row.Author,
				)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Println()
		}

		if m.HasUnseen {
			_, _ = color.New(color.FgYellow).Println("There is unseen activity. Run 'prwatch-cli seen' to clear it.")
		}
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	statusCmd.Flags().BoolVar(&outputJSON, "json", false, "Output the menu as JSON")
	rootCmd.AddCommand(statusCmd)
}
