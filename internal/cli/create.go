package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/feynman-labs/feynman/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Shared flag for all create subcommands.
var createOutputDir string

func init() {
	createCmd.PersistentFlags().StringVar(&createOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	createCmd.AddCommand(createDemoCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold a new project from a template",
}

var demoDescription string

func init() {
	createDemoCmd.Flags().StringVar(&demoDescription, "description", "", "Project description (optional)")
}

var createDemoCmd = &cobra.Command{
	Use:   "demo <name>",
	Short: "Scaffold the policy-gradient demo web app",
	Long: `Scaffold a small web app that trains a softmax policy over four tokens
with REINFORCE and plots the result. The generated demo.yaml drives
'feynman serve'.

Example:
  feynman create demo rl-playground`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if err := validateName(name); err != nil {
			return err
		}

		data := scaffold.NewData(name)
		if demoDescription != "" {
			data.Description = demoDescription
		}
		outDir := resolveOutputDir(name)

		result, err := scaffold.Generate("demo", data, outDir)
		if err != nil {
			return err
		}

		printResult("demo", result)
		fmt.Println("\nNext steps:")
		fmt.Printf("  1. cd %s\n", outDir)
		fmt.Println("  2. Run 'feynman serve --config demo.yaml'")
		fmt.Println("  3. Open index.html in a browser")
		return nil
	},
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

func resolveOutputDir(name string) string {
	if createOutputDir != "" {
		return createOutputDir
	}
	return filepath.Join(".", name)
}

func printResult(typeName string, result *scaffold.Result) {
	fmt.Printf("Created %s at %s/\n", typeName, result.OutputDir)
	for _, f := range result.Files {
		fmt.Printf("  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}
