package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Asks the daemon to poll GitHub now",
	Long:  `Queues an immediate poll and clears all attention markers. Requests made while a poll is already queued are coalesced.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := newAPIClient(serverAddr).post("/api/v1/refresh", nil); err != nil {
			return err
		}
		fmt.Println("Refresh queued.")
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(refreshCmd)
}
