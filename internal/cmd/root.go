package cmd

import (
	"github.com/spf13/cobra"

	"github.com/idrispack/cli/internal/config"
	"github.com/idrispack/cli/internal/output"
	"github.com/idrispack/cli/internal/version"
)

var (
	// Global flags
	configFlag     string
	collectionFlag string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	packConfig *config.Config
)

// NewRootCmd creates the root command for the pack CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pack",
		Short: "An Idris2 package manager",
		Long: `pack manages Idris2 packages and package collections.

It provides commands to:
  - Inspect and edit the package database of a collection
  - Scaffold new library and executable packages
  - Manage the pack user configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: PACK_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&collectionFlag, "collection", "", "Package collection to use (env: PACK_COLLECTION)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewDBCmd())
	rootCmd.AddCommand(NewNewCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	// Config is loaded first so its log settings can feed logger setup.
	cfg, loadErr := config.NewLoader().LoadWithDefaults(configFlag)
	if loadErr != nil {
		// Commands that don't need config should still work.
		cfg = config.DefaultConfig()
	}

	if collectionFlag != "" {
		cfg.Collection = collectionFlag
	}
	packConfig = cfg

	output.SetupLogging(logConfig(cmd.Flags().Changed("timestamps"), timestampsFlag, cfg))

	info := version.GetInfo()
	output.Debug("pack started", "version", info.Version, "commit", info.GitCommit)
	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
	}
	output.Debug("configuration loaded", "collection", cfg.Collection)
	return nil
}

// logConfig resolves logger settings: an explicitly set --timestamps
// flag wins over the user config's log.timestamps.
func logConfig(flagChanged, flagValue bool, cfg *config.Config) output.LogConfig {
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if flagChanged {
		logCfg.Timestamps = output.BoolPtr(flagValue)
	} else {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	return logCfg
}

// Config returns the resolved configuration for the current invocation.
func Config() *config.Config {
	if packConfig == nil {
		return config.DefaultConfig()
	}
	return packConfig
}
