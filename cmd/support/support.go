package support

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
)

// SupportCmd represents the support command
var SupportCmd = &cobra.Command{
	Use:   "support",
	Short: "Support desk commands",
	Long:  "Support desk commands for kioskctl: tickets raised by hotels.",
}

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "Support ticket commands",
}

var columns = []export.Column{
	{Key: "id", Label: "Ticket"},
	{Key: "icon", Label: ""},
	{Key: "category", Label: "Category"},
	{Key: "subject", Label: "Subject"},
	{Key: "hotel_id", Label: "Hotel"},
	{Key: "priority", Label: "Priority"},
	{Key: "status", Label: "Status"},
	{Key: "created_at", Label: "Opened"},
}

// ticket adds the category glyph to a ticket row
type ticket struct {
	models.Ticket
}

func (t ticket) Field(key string) (interface{}, bool) {
	if key == "icon" {
		return icon(t.Category), true
	}
	return t.Ticket.Field(key)
}

func icon(category string) string {
	c, err := models.ParseTicketCategory(category)
	if err != nil {
		return models.CategoryOther.Glyph()
	}
	return c.Glyph()
}

var listFlags *cli.ListFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List support tickets",
	Long: `List support tickets.

Examples:
  kioskctl support tickets list --filter status=open,in_progress --sort priority
  kioskctl support tickets list --filter category=hardware`,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a support ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var closeCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Close a support ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runClose,
}

func runList(cmd *cobra.Command, args []string) error {
	rows, err := cli.Fetch[models.Ticket](cmd.Context(), api.NewClient(), api.ResourceTickets, listFlags)
	if err != nil {
		return err
	}
	wrapped := make([]ticket, len(rows))
	for i, r := range rows {
		wrapped[i] = ticket{r}
	}
	return cli.Render(listFlags, wrapped, columns)
}

func runShow(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	var t models.Ticket
	if err := client.Get(cmd.Context(), api.ResourceTickets, args[0], &t); err != nil {
		return fmt.Errorf("failed to get ticket: %w", err)
	}
	if config.GetOutputFormat() == "table" {
		fmt.Fprintf(os.Stdout, "%s %s\n\n", icon(t.Category), t.Subject)
	}
	return format.Print(&t)
}

func runClose(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Action(cmd.Context(), api.ResourceTickets, args[0], "close", nil); err != nil {
		return fmt.Errorf("failed to close ticket: %w", err)
	}
	format.PrintSuccess("✓ Ticket '%s' closed", args[0])
	return nil
}

func init() {
	listFlags = cli.AddListFlags(listCmd)

	ticketsCmd.AddCommand(listCmd)
	ticketsCmd.AddCommand(showCmd)
	ticketsCmd.AddCommand(closeCmd)
	SupportCmd.AddCommand(ticketsCmd)
}
