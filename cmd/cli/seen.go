package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seenCmd = &cobra.Command{
	Use:   "seen",
	Short: "Marks all current activity as seen",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := newAPIClient(serverAddr).post("/api/v1/seen", nil); err != nil {
			return err
		}
		fmt.Println("Marked all as seen.")
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(seenCmd)
}
