package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/feynman-labs/feynman/internal/branding"
	"github.com/feynman-labs/feynman/internal/config"
	"github.com/feynman-labs/feynman/internal/updater"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	Long: `Check GitHub for a newer release of ` + branding.CLIName() + ` and print where to get it.
Binaries are distributed via GitHub releases; this command does not replace
the running binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(os.Stderr, "Checking for updates...")

		u := updater.New(buildVersion)
		result, err := u.Check()
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		// Silently ignore save errors.
		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   result.LatestVersion,
			CurrentVersion:  result.CurrentVersion,
			CheckedAt:       time.Now(),
			UpdateAvailable: result.UpdateAvailable,
		})

		if !result.UpdateAvailable {
			fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		fmt.Printf("Update available: %s -> %s\n", buildVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Printf("Release notes: %s\n", result.ReleaseURL)
		}
		return nil
	},
}
