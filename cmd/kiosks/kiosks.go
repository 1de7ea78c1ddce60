package kiosks

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// KiosksCmd represents the kiosks command
var KiosksCmd = &cobra.Command{
	Use:     "kiosks",
	Aliases: []string{"fleet"},
	Short:   "Kiosk fleet commands",
	Long: `Kiosk fleet commands for kioskctl.

This command group lists kiosks across hotels, registers new devices,
assigns them to hotels, restarts and decommissions them.`,
}

var columns = []export.Column{
	{Key: "id", Label: "ID"},
	{Key: "serial_number", Label: "Serial"},
	{Key: "name", Label: "Name"},
	{Key: "hotel", Label: "Hotel"},
	{Key: "indicator", Label: ""},
	{Key: "status", Label: "Status"},
	{Key: "firmware", Label: "Firmware"},
	{Key: "last_seen", Label: "Last Seen"},
}

// row is a kiosk joined with the name of its hotel
type row struct {
	models.Kiosk
	HotelName string `json:"hotel"`
}

// Field adds the hotel name and status glyph to the kiosk fields
func (r row) Field(key string) (interface{}, bool) {
	switch key {
	case "hotel":
		return r.HotelName, true
	case "indicator":
		status, err := models.ParseKioskStatus(r.Status)
		if err != nil {
			return "?", true
		}
		return status.Glyph(), true
	}
	return r.Kiosk.Field(key)
}

// SearchFields also matches the hotel name
func (r row) SearchFields() []string {
	return append(r.Kiosk.SearchFields(), "hotel")
}

func join(kiosks []models.Kiosk, hotels models.HotelIndex) []row {
	rows := make([]row, len(kiosks))
	for i, k := range kiosks {
		rows[i] = row{Kiosk: k, HotelName: hotels.Name(k.HotelID)}
	}
	return rows
}

var (
	listFlags *cli.ListFlags
	watch     time.Duration
)

// listCmd lists kiosks
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List kiosks",
	Long: `List kiosks with their hotel and status.

Examples:
  kioskctl kiosks list --filter status=offline,maintenance
  kioskctl kiosks list --search "harbor view" --sort last_seen:desc
  kioskctl kiosks list --watch 10s`,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show kiosk details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var registerCmd = &cobra.Command{
	Use:   "register <serial-number>",
	Short: "Register a new kiosk",
	Args:  cobra.ExactArgs(1),
	RunE:  runRegister,
}

var assignCmd = &cobra.Command{
	Use:   "assign <kiosk-id> <hotel-id>",
	Short: "Assign a kiosk to a hotel",
	Args:  cobra.ExactArgs(2),
	RunE:  runAssign,
}

var restartCmd = &cobra.Command{
	Use:   "restart <id>",
	Short: "Restart a kiosk",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestart,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Decommission a kiosk",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func load(ctx context.Context, client *api.Client) ([]row, error) {
	kiosks, err := cli.Fetch[models.Kiosk](ctx, client, api.ResourceKiosks, &cli.ListFlags{Filters: serverFilters()})
	if err != nil {
		return nil, err
	}
	hotels, err := client.HotelIndex(ctx)
	if err != nil {
		return nil, err
	}
	return join(kiosks, hotels), nil
}

// serverFilters drops filters on joined columns the API does not know
func serverFilters() []string {
	opts, err := listFlags.Options()
	if err != nil {
		return nil
	}
	opts.Filters.Clear("hotel")
	opts.Filters.Clear("indicator")
	var out []string
	for key, value := range opts.Filters.Flatten() {
		out = append(out, key+"="+value)
	}
	return out
}

func runList(cmd *cobra.Command, args []string) error {
	if _, err := listFlags.Options(); err != nil {
		return err
	}
	client := api.NewClient()

	if watch > 0 {
		return cli.Watch(cmd.Context(), watch,
			func(ctx context.Context) ([]row, error) { return load(ctx, client) },
			func(rows []row) error {
				fmt.Fprint(os.Stdout, "\033[H\033[2J")
				fmt.Fprintf(os.Stdout, "Every %s: kiosks  %s\n\n", watch, time.Now().Format("15:04:05"))
				return cli.RenderTo(os.Stdout, config.GetOutputFormat(), listFlags, rows, columns)
			})
	}

	rows, err := load(cmd.Context(), client)
	if err != nil {
		return err
	}
	return cli.Render(listFlags, rows, columns)
}

func runShow(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	var kiosk models.Kiosk
	if err := client.Get(cmd.Context(), api.ResourceKiosks, args[0], &kiosk); err != nil {
		return fmt.Errorf("failed to get kiosk: %w", err)
	}
	return format.Print(&kiosk)
}

func runRegister(cmd *cobra.Command, args []string) error {
	serial := args[0]
	name, _ := cmd.Flags().GetString("name")
	hotelID, _ := cmd.Flags().GetString("hotel")
	firmware, _ := cmd.Flags().GetString("firmware")

	if err := utils.ValidateSerial(serial); err != nil {
		return err
	}
	if name == "" {
		name = serial
	}

	client := api.NewClient()
	var created models.Kiosk
	kiosk := models.Kiosk{SerialNumber: serial, Name: name, HotelID: hotelID, Firmware: firmware}
	if err := client.Create(cmd.Context(), api.ResourceKiosks, kiosk, &created); err != nil {
		return fmt.Errorf("failed to register kiosk: %w", err)
	}

	format.PrintSuccess("✓ Kiosk '%s' registered as %s", serial, created.ID)
	return format.Print(&created)
}

func runAssign(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.AssignKiosk(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("failed to assign kiosk: %w", err)
	}
	format.PrintSuccess("✓ Kiosk '%s' assigned to hotel '%s'", args[0], args[1])
	return nil
}

func runRestart(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Action(cmd.Context(), api.ResourceKiosks, args[0], "restart", nil); err != nil {
		return fmt.Errorf("failed to restart kiosk: %w", err)
	}
	format.PrintSuccess("✓ Restart sent to kiosk '%s'", args[0])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Delete(cmd.Context(), api.ResourceKiosks, args[0]); err != nil {
		return fmt.Errorf("failed to delete kiosk: %w", err)
	}
	format.PrintSuccess("✓ Kiosk '%s' decommissioned", args[0])
	return nil
}

func init() {
	listFlags = cli.AddListFlags(listCmd)
	listCmd.Flags().DurationVar(&watch, "watch", 0, "refresh the list at this interval until interrupted")

	registerCmd.Flags().String("name", "", "Display name (defaults to the serial number)")
	registerCmd.Flags().String("hotel", "", "Hotel id to assign the kiosk to")
	registerCmd.Flags().String("firmware", "", "Installed firmware version")

	KiosksCmd.AddCommand(listCmd)
	KiosksCmd.AddCommand(showCmd)
	KiosksCmd.AddCommand(registerCmd)
	KiosksCmd.AddCommand(assignCmd)
	KiosksCmd.AddCommand(restartCmd)
	KiosksCmd.AddCommand(deleteCmd)
}
