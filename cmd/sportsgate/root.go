package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sportsgate",
	Short: "SportsGate - single-entry-point sports data proxy",
	Long: `SportsGate is a reverse proxy that exposes a single dispatch endpoint
for typed sports data operations.

It sits in front of an upstream sports data provider and adds:
  - Operation dispatch with payload validation
  - A process-wide sliding window rate limit
  - Exponential backoff retry for transient upstream failures
  - Correlation ID propagation and an audit trail
  - Prometheus metrics and structured logging`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
