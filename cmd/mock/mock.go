package mock

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/logging"
	"github.com/hostkiosk/kioskctl/internal/mockapi"
)

// MockCmd represents the mock command
var MockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Local demo backend",
	Long: `Local demo backend for kioskctl.

Serves the console REST API from seeded in-memory data so every command
can be tried without a real deployment.`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the demo API",
	Long: `Serve the demo API until interrupted.

Example:
  kioskctl mock serve --addr :8080
  kioskctl auth login -e admin@hostkiosk.example -p kioskctl-demo`,
	RunE: runServe,
}

var addr string

func runServe(cmd *cobra.Command, args []string) error {
	if addr == "" {
		addr = config.Get().Mock.Addr
	}

	srv := mockapi.NewServer(mockapi.Seed(), logging.L())

	format.PrintInfo("Demo API listening on %s", addr)
	format.PrintInfo("Login with %s / %s (tenant %s)", mockapi.DemoEmail, mockapi.DemoPassword, mockapi.DemoTenant)

	if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
		return fmt.Errorf("mock server: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default mock.addr)")
	MockCmd.AddCommand(serveCmd)
}
