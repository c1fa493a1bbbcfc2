package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/feynman-labs/feynman/internal/branding"
	"github.com/feynman-labs/feynman/internal/config"
	"github.com/feynman-labs/feynman/internal/reader"
	"github.com/spf13/cobra"
)

var doctorSkipNetwork bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorSkipNetwork, "offline", false, "Skip checks that hit the network")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for your " + branding.DisplayName() + " setup",
	Long:  `Verify configuration, credentials, vault layout, and API reachability.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		loadErr := config.Load()
		settings := config.Current()

		checkConfigFile(loadErr)
		checkVault(settings)
		checkCredentials(settings)
		if !doctorSkipNetwork {
			checkReaderAPI(cmd.Context(), settings)
		}
		return nil
	},
}

func checkConfigFile(loadErr error) {
	fmt.Println("Configuration:")
	path := config.FilePath()
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("  [WARN] %s not found (run '%s init')\n", path, branding.CLIName())
		return
	}
	if loadErr != nil {
		fmt.Printf("  [FAIL] %v\n", loadErr)
		return
	}
	fmt.Printf("  [ OK ] %s\n", path)
}

func checkVault(settings *config.Settings) {
	fmt.Println("Vault:")

	info, err := os.Stat(settings.VaultPath)
	if err != nil || !info.IsDir() {
		fmt.Printf("  [FAIL] vault.path %q is not a directory\n", settings.VaultPath)
		return
	}
	fmt.Printf("  [ OK ] vault at %s\n", settings.VaultPath)

	contextPath := filepath.Join(settings.VaultPath, settings.ContextFile)
	data, err := os.ReadFile(contextPath)
	switch {
	case err != nil:
		fmt.Printf("  [FAIL] %s missing; nothing to match articles against\n", contextPath)
	case len(data) == 0:
		fmt.Printf("  [WARN] %s is empty\n", contextPath)
	default:
		fmt.Printf("  [ OK ] %s (%d bytes)\n", contextPath, len(data))
	}

	dailyDir := filepath.Join(settings.VaultPath, settings.DailyDir)
	if _, err := os.Stat(dailyDir); err != nil {
		fmt.Printf("  [WARN] %s missing; it will be created on the first hit\n", dailyDir)
		return
	}
	fmt.Printf("  [ OK ] %s\n", dailyDir)
}

func checkCredentials(settings *config.Settings) {
	fmt.Println("Credentials:")

	if settings.ReaderToken == "" {
		fmt.Println("  [MISS] READWISE_TOKEN not set")
	} else {
		fmt.Println("  [ OK ] READWISE_TOKEN set")
	}

	keys := []struct {
		provider string
		envVar   string
		set      bool
	}{
		{"anthropic", "ANTHROPIC_API_KEY", settings.AnthropicAPIKey != ""},
		{"gemini", "GEMINI_API_KEY", settings.GeminiAPIKey != ""},
		{"openai", "OPENAI_API_KEY", settings.OpenAIAPIKey != ""},
	}

	anyKey := false
	for _, k := range keys {
		if k.set {
			anyKey = true
			fmt.Printf("  [ OK ] %s set\n", k.envVar)
		} else if k.provider == settings.Provider {
			fmt.Printf("  [MISS] %s not set (required for provider %q)\n", k.envVar, settings.Provider)
		}
	}
	if !anyKey {
		fmt.Println("  [FAIL] no LLM API key set")
	}
}

func checkReaderAPI(ctx context.Context, settings *config.Settings) {
	fmt.Println("Reader API:")

	if settings.ReaderToken == "" {
		fmt.Println("  [WARN] skipped (no token)")
		return
	}

	client, err := reader.New(settings.ReaderToken)
	if err != nil {
		fmt.Printf("  [FAIL] %v\n", err)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx); err != nil {
		if errors.Is(err, reader.ErrUnauthorized) {
			fmt.Println("  [FAIL] token rejected (check READWISE_TOKEN)")
			return
		}
		fmt.Printf("  [FAIL] %v\n", err)
		return
	}
	fmt.Println("  [ OK ] token accepted")
}
