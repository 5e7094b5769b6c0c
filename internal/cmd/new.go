package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idrispack/cli/internal/output"
	"github.com/idrispack/cli/internal/templates"
)

// NewNewCmd creates the new command for scaffolding packages.
func NewNewCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	c := &cobra.Command{
		Use:       "new <lib|app> <dir>",
		Short:     "Scaffold a new package",
		Long:      `Scaffold a new library or executable package: the .ipkg manifest plus a source stub.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: templates.ValidTemplates(),
		RunE: func(command *cobra.Command, args []string) error {
			gen := templates.NewGenerator(templates.GenerateOptions{
				TemplateName: args[0],
				TargetDir:    args[1],
				PkgName:      name,
				Force:        force,
			})

			result, err := gen.Generate()
			if err != nil {
				return err
			}

			output.Info("package scaffolded", "name", result.PkgName, "files", len(result.Files))
			for _, f := range result.Files {
				fmt.Fprintln(command.OutOrStdout(), f)
			}
			return nil
		},
	}

	c.Flags().StringVar(&name, "name", "", "Package name (default: directory name)")
	c.Flags().BoolVarP(&force, "force", "f", false, "Generate into a non-empty directory")

	return c
}
