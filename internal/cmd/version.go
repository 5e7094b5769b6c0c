package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idrispack/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var jsonOut bool

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.GetInfo()

			if jsonOut {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling version info: %w", err)
				}
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(c.OutOrStdout(), info.String())
			return nil
		},
	}

	c.Flags().BoolVar(&jsonOut, "json", false, "Output version info as JSON")

	return c
}
