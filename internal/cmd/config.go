package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idrispack/cli/internal/config"
	"github.com/idrispack/cli/internal/errors"
	"github.com/idrispack/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage pack configuration",
	}

	c.AddCommand(newConfigInitCmd())
	c.AddCommand(newConfigVetCmd())

	return c
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new pack configuration file",
		Long: `Create a new pack configuration file with default values.

The configuration file is created at ~/.pack/user.yaml by default.
Use the --config flag to specify a different location.`,
		RunE: func(command *cobra.Command, _ []string) error {
			return runConfigInit(command, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(command *cobra.Command, force bool) error {
	configFile := configFlag
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if exists && !force {
		return errors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			ExitGeneralError,
		)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# pack configuration\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}

func newConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the pack configuration",
		RunE: func(command *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
			if err != nil {
				return errors.NewExitError(err, ExitValidationError)
			}
			if err := config.Validate(cfg); err != nil {
				return errors.NewExitError(
					fmt.Errorf("%w: %v", errors.ErrValidation, err),
					ExitValidationError,
				)
			}

			fmt.Fprintln(command.OutOrStdout(), output.StyleSuccess.Render("Configuration is valid"))
			return nil
		},
	}
}
