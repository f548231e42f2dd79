package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configFile string
	env        string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nivesh",
	Short: "Nivesh - risk-profiled stock recommendations for Indian retail investors",
	Long: `Nivesh Unified CLI

Risk scoring, stock screening and market-data pipelines for NSE/BSE
listed securities.

Usage:
  go run ./cmd/nivesh [command]

Examples:
  go run ./cmd/nivesh api
  go run ./cmd/nivesh refresh RELIANCE
  go run ./cmd/nivesh scheduler start
  go run ./cmd/nivesh seed`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
