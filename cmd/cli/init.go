package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"prwatch/internal/config"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Writes a starter config file",
	Long:  `Writes a commented starter config to the default location. Edit it to add your repositories and GitHub token, then start the daemon.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
		}

		data, err := config.StarterYAML()
		if err != nil {
			return fmt.Errorf("failed to render starter config: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0o600); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}

		fmt.Printf("Wrote starter config to %s\n", path)
		return nil
	},
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
