package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hostkiosk/kioskctl/cmd/audit"
	"github.com/hostkiosk/kioskctl/cmd/auth"
	"github.com/hostkiosk/kioskctl/cmd/billing"
	"github.com/hostkiosk/kioskctl/cmd/config"
	"github.com/hostkiosk/kioskctl/cmd/hotels"
	"github.com/hostkiosk/kioskctl/cmd/kiosks"
	"github.com/hostkiosk/kioskctl/cmd/mock"
	"github.com/hostkiosk/kioskctl/cmd/permissions"
	"github.com/hostkiosk/kioskctl/cmd/reports"
	"github.com/hostkiosk/kioskctl/cmd/roles"
	"github.com/hostkiosk/kioskctl/cmd/support"
	"github.com/hostkiosk/kioskctl/cmd/users"
	"github.com/hostkiosk/kioskctl/internal/cli"
	appConfig "github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/logging"
	"github.com/hostkiosk/kioskctl/internal/notify"
	"github.com/hostkiosk/kioskctl/internal/telemetry"
)

var (
	cfgFile string
	debug   bool
	output  string
	tenant  string

	shutdownTracing = func(context.Context) error { return nil }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kioskctl",
	Short: "kioskctl - console for hotel and kiosk fleet management",
	Long: `kioskctl manages a multi-tenant fleet of hotel self check-in kiosks.

It talks to the fleet REST API to list, search, filter and export hotels,
kiosks, users, invoices, tickets and audit logs, and to edit role
permission matrices. Run "kioskctl mock serve" for a local demo backend.`,
	Version:       "1.0.0",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}
		cfg := appConfig.Get()

		appConfig.SetDebug(debug)
		if _, err := logging.Setup(debug); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}
		logging.L().Debug("configuration loaded", zap.String("file", appConfig.FileUsed()))

		notify.SetDefault(notify.New(
			notify.WithTTL(cfg.ToastTTL()),
			notify.WithColors(cfg.Format.Colors),
		))

		if output != "" {
			if !slices.Contains(format.Formats, output) {
				return fmt.Errorf("unsupported output format %q (expected one of %v)", output, format.Formats)
			}
			appConfig.SetOutputFormat(output)
		}
		if tenant != "" {
			appConfig.SetTenant(tenant)
		}

		shutdownTracing = telemetry.Setup(cmd.Context(), telemetry.ServiceName, telemetry.Options{
			Endpoint: cfg.Telemetry.OTLPEndpoint,
			Insecure: cfg.Telemetry.Insecure,
		})
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		logging.Sync()
		return shutdownTracing(context.Background())
	},
}

// Execute runs the command tree. Errors are reported as toasts.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !cli.IsReported(err) {
		notify.Default().Error("Error", err.Error())
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kioskctl.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "output format (table, json, json-compact, yaml, text, csv)")
	rootCmd.PersistentFlags().StringVar(&tenant, "tenant", "", "tenant id to scope requests to")

	// Add subcommands
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(hotels.HotelsCmd)
	rootCmd.AddCommand(kiosks.KiosksCmd)
	rootCmd.AddCommand(users.UsersCmd)
	rootCmd.AddCommand(roles.RolesCmd)
	rootCmd.AddCommand(permissions.PermissionsCmd)
	rootCmd.AddCommand(billing.BillingCmd)
	rootCmd.AddCommand(support.SupportCmd)
	rootCmd.AddCommand(audit.AuditCmd)
	rootCmd.AddCommand(reports.ReportsCmd)
	rootCmd.AddCommand(config.ConfigCmd)
	rootCmd.AddCommand(mock.MockCmd)
}
