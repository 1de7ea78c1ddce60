package billing

import (
	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// BillingCmd represents the billing command
var BillingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Billing commands",
	Long:  "Billing commands for kioskctl: invoices issued to hotels.",
}

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Invoice commands",
}

var columns = []export.Column{
	{Key: "id", Label: "Invoice"},
	{Key: "hotel_id", Label: "Hotel"},
	{Key: "amount", Label: "Amount"},
	{Key: "currency", Label: "Currency"},
	{Key: "status", Label: "Status"},
	{Key: "issued_at", Label: "Issued"},
	{Key: "due_at", Label: "Due"},
}

var (
	listFlags   *cli.ListFlags
	exportFlags *cli.ListFlags
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices",
	Long: `List invoices.

Examples:
  kioskctl billing invoices list --filter status=overdue --sort amount:desc`,
	RunE: runList,
}

// exportCmd writes every matching invoice to CSV
var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export invoices to CSV",
	Long: `Export every invoice matching the search and filters to a CSV file.

Examples:
  kioskctl billing invoices export overdue.csv --filter status=overdue`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runList(cmd *cobra.Command, args []string) error {
	rows, err := cli.Fetch[models.Invoice](cmd.Context(), api.NewClient(), api.ResourceInvoices, listFlags)
	if err != nil {
		return err
	}
	return cli.Render(listFlags, rows, columns)
}

func runExport(cmd *cobra.Command, args []string) error {
	rows, err := cli.Fetch[models.Invoice](cmd.Context(), api.NewClient(), api.ResourceInvoices, exportFlags)
	if err != nil {
		return err
	}
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

	invoicesCmd.AddCommand(listCmd)
	invoicesCmd.AddCommand(exportCmd)
	BillingCmd.AddCommand(invoicesCmd)
}
