package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmagnuss/calcsuite/internal/update"
	"github.com/jmagnuss/calcsuite/internal/version"
)

// NewUpgradeCmd returns an upgrade subcommand that self-updates the named
// binary from the latest release.
func NewUpgradeCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade",
		Short: fmt.Sprintf("Upgrade %s to the latest version", name),
		Long:  fmt.Sprintf(`Upgrade %s to the latest version by downloading and installing the newest release.`, name),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Current version: %s\n", version.Version)

			if update.DetectInstallMethod() == update.InstallHomebrew {
				fmt.Printf("\n%s was installed via Homebrew.\n", name)
				fmt.Println("Run: brew upgrade calcsuite")
				return
			}

			fmt.Println("Checking for updates...")

			release, hasUpdate, err := update.CheckForUpdate(version.Version)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to check for updates: %v\n", err)
				os.Exit(1)
			}

			if !hasUpdate {
				fmt.Println("Already at latest version.")
				return
			}

			fmt.Printf("Updating to %s...\n", release.Version)

			if err := update.Update(version.Version); err != nil {
				fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
				os.Exit(1)
			}

			fmt.Printf("Successfully updated to %s\n", release.Version)
		},
	}
}
