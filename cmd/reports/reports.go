package reports

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// ReportsCmd represents the reports command
var ReportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Analytics reports",
	Long:  "Analytics reports computed by the console backend.",
}

var columns = []export.Column{
	{Key: "label", Label: "Metric"},
	{Key: "value", Label: "Value"},
	{Key: "unit", Label: "Unit"},
}

var showCmd = &cobra.Command{
	Use:   "show <type>",
	Short: "Show an analytics report",
	Long: fmt.Sprintf(`Show an analytics report.

Report types: %s

Example:
  kioskctl reports show kiosk-usage`, strings.Join(typeNames(), ", ")),
	Args:      cobra.ExactArgs(1),
	ValidArgs: typeNames(),
	RunE:      runShow,
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List report types",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, t := range models.ReportTypes() {
			fmt.Printf("%-12s %s\n", t, t.Title())
		}
		return nil
	},
}

func typeNames() []string {
	var names []string
	for _, t := range models.ReportTypes() {
		names = append(names, t.String())
	}
	return names
}

func runShow(cmd *cobra.Command, args []string) error {
	reportType, err := models.ParseReportType(args[0])
	if err != nil {
		return fmt.Errorf("unknown report type %q (valid: %s)", args[0], strings.Join(typeNames(), ", "))
	}

	report, err := api.NewClient().Report(cmd.Context(), reportType)
	if err != nil {
		return fmt.Errorf("failed to load %s report: %w", reportType, err)
	}

	switch config.GetOutputFormat() {
	case "table", "text":
		fmt.Fprintf(os.Stdout, "%s\nGenerated %s\n\n", report.Title, report.GeneratedAt.Local().Format("2006-01-02 15:04"))
	case "csv":
	default:
		return format.Print(report)
	}
	return format.Print(format.NewList(columns, metricRows(report.Metrics), nil))
}

func metricRows(metrics []models.Metric) []models.Row {
	rows := make([]models.Row, len(metrics))
	for i, m := range metrics {
		rows[i] = models.Row{"label": m.Label, "value": m.Value, "unit": m.Unit}
	}
	return rows
}

func init() {
	ReportsCmd.AddCommand(showCmd)
	ReportsCmd.AddCommand(typesCmd)
}
