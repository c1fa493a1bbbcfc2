package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/feynman-labs/feynman/internal/analysis"
	"github.com/feynman-labs/feynman/internal/config"
	"github.com/feynman-labs/feynman/internal/llm"
	"github.com/feynman-labs/feynman/internal/pipeline"
	"github.com/feynman-labs/feynman/internal/reader"
	"github.com/feynman-labs/feynman/internal/vault"
	"github.com/spf13/cobra"
)

var (
	runHours    int
	runLimit    int
	runDryRun   bool
	runProvider string
)

func init() {
	runCmd.Flags().IntVar(&runHours, "hours", 0, "Lookback window in hours (default: run.window_hours)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "Analyze at most N documents (0 = no limit)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print hits without writing the daily note")
	runCmd.Flags().StringVar(&runProvider, "provider", "", "LLM provider: anthropic, gemini, or openai (default: config)")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch recent articles and scan them for hits on your active problems",
	Long: `Fetch documents saved to your reading inbox during the lookback window,
analyze each one against your active-problems file, and append any hits to
today's daily note.

Examples:
  feynman run
  feynman run --hours 48 --limit 5
  feynman run --dry-run --provider gemini`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		settings := config.Current()

		if runProvider != "" {
			settings.Provider = runProvider
		}
		if runHours > 0 {
			settings.WindowHours = runHours
		}

		if settings.ReaderToken == "" {
			return fmt.Errorf("READWISE_TOKEN is not set")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		client, err := llm.New(ctx, settings)
		if err != nil {
			return err
		}
		fmt.Printf("Using %s for analysis.\n", client.Name())

		lister, err := reader.New(settings.ReaderToken)
		if err != nil {
			return err
		}

		analyzer := analysis.NewAnalyzer(client, settings.MinContentLength, settings.MaxPromptContent)
		notebook := vault.New(settings.VaultPath, settings.ContextFile, settings.DailyDir)

		p := pipeline.New(lister, analyzer, notebook, os.Stdout)
		result, err := p.Run(ctx, pipeline.Options{
			WindowHours: settings.WindowHours,
			Location:    settings.ReaderLocation,
			Delay:       settings.Delay,
			Limit:       runLimit,
			DryRun:      runDryRun,
		})
		if err != nil {
			return err
		}

		if result.Failures > 0 {
			fmt.Printf("Done with %d failure(s): %d fetched, %d analyzed, %d skipped, %d hit(s).\n",
				result.Failures, result.Fetched, result.Analyzed, result.Skipped, len(result.Hits))
			return nil
		}

		fmt.Printf("Done: %d fetched, %d analyzed, %d skipped, %d hit(s).\n",
			result.Fetched, result.Analyzed, result.Skipped, len(result.Hits))
		return nil
	},
}
