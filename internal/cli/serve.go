package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/feynman-labs/feynman/internal/rlsim"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	serveConfig string
	serveAddr   string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a demo.yaml manifest")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides the manifest)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the policy-gradient demo API",
	Long: `Start the HTTP API backing the scaffolded demo frontend. The server
exposes POST /api/rl/simulate and shuts down cleanly on interrupt.

Examples:
  feynman serve --config demo.yaml
  feynman serve --addr :9000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := ":8000"

		if serveConfig != "" {
			cfg, err := rlsim.LoadConfig(serveConfig)
			if err != nil {
				return err
			}
			addr = cfg.Server.Addr
			fmt.Printf("Serving demo %q\n", cfg.Name)
		}
		if serveAddr != "" {
			addr = serveAddr
		}

		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return rlsim.NewServer(addr).Run(ctx)
	},
}
