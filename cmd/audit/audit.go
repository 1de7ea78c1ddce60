package audit

import (
	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// AuditCmd represents the audit command
var AuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log commands",
	Long: `Audit log commands for kioskctl.

Every change made through the console is recorded with its actor,
action and target.`,
}

var columns = []export.Column{
	{Key: "created_at", Label: "Time"},
	{Key: "actor", Label: "Actor"},
	{Key: "action", Label: "Action"},
	{Key: "resource", Label: "Resource"},
	{Key: "resource_id", Label: "Resource ID"},
	{Key: "ip", Label: "IP"},
}

var (
	listFlags   *cli.ListFlags
	exportFlags *cli.ListFlags
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit log entries",
	Long: `List audit log entries, newest first unless --sort is given.

Examples:
  kioskctl audit list --filter action=delete,suspend
  kioskctl audit list --search ana@ --sort created_at`,
	RunE: runList,
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export audit log entries to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func newestFirst(f *cli.ListFlags) {
	if f.Sort == "" {
		f.Sort = "created_at:desc"
	}
}

func runList(cmd *cobra.Command, args []string) error {
	rows, err := cli.Fetch[models.AuditLogEntry](cmd.Context(), api.NewClient(), api.ResourceAudit, listFlags)
	if err != nil {
		return err
	}
	newestFirst(listFlags)
	return cli.Render(listFlags, rows, columns)
}

func runExport(cmd *cobra.Command, args []string) error {
	rows, err := cli.Fetch[models.AuditLogEntry](cmd.Context(), api.NewClient(), api.ResourceAudit, exportFlags)
	if err != nil {
		return err
	}
	newestFirst(exportFlags)
	view, err := cli.View(exportFlags, rows)
	if err != nil {
		return err
	}
	_, err = cli.Export(args[0], view.Rows(), columns)
	return err
}

func init() {
	listFlags = cli.AddListFlags(listCmd)
	exportFlags = cli.AddExportFlags(exportCmd)

	AuditCmd.AddCommand(listCmd)
	AuditCmd.AddCommand(exportCmd)
}
