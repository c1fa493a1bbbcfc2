package cli

import (
	"os"

	"github.com/feynman-labs/feynman/internal/branding"
	"github.com/feynman-labs/feynman/internal/config"
	"github.com/feynman-labs/feynman/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads your saved articles, compares each one against the problems
you are actively working on, and appends any mechanism, contradiction, or
solution it finds to today's daily note.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The update command does its own check; init has no config yet.
		name := cmd.Name()
		if name == "update" || name == "init" {
			return
		}

		// Non-blocking banner from cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
