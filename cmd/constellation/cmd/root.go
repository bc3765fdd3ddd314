package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/astrogrid/constellation-ops/pkg/logger"
)

var (
	scenarioFile string
	logLevel     string
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "constellation",
	Short: "Constellation mission state engine",
	Long: `Constellation Ops drives an autonomous satellite mission: it seeds a
constellation, runs the seven-stage operations pipeline over it, scans
for collision threats and renders or exports the resulting mission
state.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&scenarioFile, "scenario", "", "scenario file (default is constellation.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(interactiveCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig configures logging and environment variable handling
func initConfig() {
	// Piped output gets plain text regardless of the flag
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	logger.SetLevel(logger.ParseLevel(logLevel))
	logger.SetNoColor(noColor)

	viper.SetEnvPrefix("CONSTELLATION")
	viper.AutomaticEnv()
}
