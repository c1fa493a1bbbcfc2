package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/feynman-labs/feynman/internal/branding"
	"github.com/feynman-labs/feynman/internal/config"
	"github.com/spf13/cobra"
)

var initVaultPath string

func init() {
	initCmd.Flags().StringVar(&initVaultPath, "vault", "", "Path to your markdown vault")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize " + branding.DisplayName() + " configuration",
	Long: `Create ~/` + branding.HomeDir() + `/config.yaml with defaults and, when --vault is given,
seed the vault with an empty active-problems file and a daily-notes directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.FilePath()); err == nil {
			return fmt.Errorf("already initialized: %s exists", config.FilePath())
		}

		// The config file does not exist at this point, so Load only seeds
		// defaults and the env overlay.
		_ = config.Load()
		if initVaultPath != "" {
			if err := config.Set("vault.path", initVaultPath); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
		} else {
			// Set persists all defaults too, so write one key to create the file.
			if err := config.Set("provider", config.DefaultProvider); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
		}
		fmt.Printf("Created %s\n", config.FilePath())

		if initVaultPath != "" {
			if err := seedVault(initVaultPath); err != nil {
				return err
			}
		}

		fmt.Println("\nNext steps:")
		fmt.Println("  1. Export READWISE_TOKEN and an LLM key (ANTHROPIC_API_KEY, GEMINI_API_KEY, or OPENAI_API_KEY)")
		fmt.Printf("  2. List what you are working on in %s\n", config.DefaultContextFile)
		fmt.Printf("  3. Run '%s run' to scan your recent saves\n", branding.CLIName())
		return nil
	},
}

// seedVault creates the context file and daily-notes directory if absent.
func seedVault(root string) error {
	dailyDir := filepath.Join(root, config.DefaultDailyDir)
	if err := os.MkdirAll(dailyDir, 0755); err != nil {
		return fmt.Errorf("creating daily notes directory: %w", err)
	}
	fmt.Printf("Created %s/\n", dailyDir)

	contextPath := filepath.Join(root, config.DefaultContextFile)
	if _, err := os.Stat(contextPath); err == nil {
		return nil
	}

	seed := "# Active Problems\n\nList the problems you are actively working on, one section each.\n"
	if err := os.WriteFile(contextPath, []byte(seed), 0644); err != nil {
		return fmt.Errorf("creating context file: %w", err)
	}
	fmt.Printf("Created %s\n", contextPath)
	return nil
}
