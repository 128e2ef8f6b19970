package main

import (
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Opens a pull request in the browser and acknowledges it",
	Long:  `Tells the daemon to open the given pull request URL in the browser. The request's attention markers are cleared first, lowering the badge once nothing else is unseen.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		body := map[string]string{"url": args[0]}
		return newAPIClient(serverAddr).post("/api/v1/open", body)
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(openCmd)
}
