package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"prwatch/internal/config"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "prwatch-cli",
	Short: "prwatch-cli talks to a running prwatch daemon.",
	Long:  `A CLI for the prwatch daemon: show the pull request menu, trigger a refresh, mark everything seen, or open a pull request in the browser.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&serverAddr, "addr", "a", config.DefaultServerAddr, "address of the daemon's control API")

	if err := viper.BindPFlag("server.addr", rootCmd.PersistentFlags().Lookup("addr")); err != nil {
		slog.Error("Error binding flag", "error", err)
		os.Exit(1)
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("PRWATCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()
}
