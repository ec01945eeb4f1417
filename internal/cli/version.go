// Package cli provides the cobra subcommands shared by the calculator
// binaries.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmagnuss/calcsuite/internal/version"
)

// NewVersionCmd returns a version subcommand for the named binary.
func NewVersionCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version number of %s", name),
		Long:  fmt.Sprintf(`Print the version number of %s.`, name),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, version.Version)
		},
	}
}
