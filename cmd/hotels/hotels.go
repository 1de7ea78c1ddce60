package hotels

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// HotelsCmd represents the hotels command
var HotelsCmd = &cobra.Command{
	Use:   "hotels",
	Short: "Hotel management commands",
	Long: `Hotel management commands for kioskctl.

This command group lists the hotels of the current tenant and creates,
suspends, reactivates and deletes them.`,
}

var columns = []export.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "city", Label: "City"},
	{Key: "country", Label: "Country"},
	{Key: "status", Label: "Status"},
	{Key: "plan", Label: "Plan"},
	{Key: "rooms", Label: "Rooms"},
	{Key: "kiosk_count", Label: "Kiosks"},
}

var listFlags *cli.ListFlags

// listCmd lists hotels
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List hotels",
	Long: `List hotels with search, filters, sorting and pagination.

Examples:
  kioskctl hotels list --filter status=active --sort rooms:desc
  kioskctl hotels list --search lisbon --export hotels.csv`,
	RunE: runList,
}

// showCmd shows one hotel
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show hotel details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// createCmd creates a hotel
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new hotel",
	Long:  "Onboard a new hotel. It starts in the pending state until activated.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreate,
}

var suspendCmd = &cobra.Command{
	Use:   "suspend <id>",
	Short: "Suspend a hotel",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuspend,
}

var activateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Activate a hotel",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a hotel",
	Long:  "Delete a hotel. Its kiosks become unassigned.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	rows, err := cli.Fetch[models.Hotel](cmd.Context(), client, api.ResourceHotels, listFlags)
	if err != nil {
		return err
	}
	return cli.Render(listFlags, rows, columns)
}

func runShow(cmd *cobra.Command, args []string) error {
	client := api.NewClient()

	var hotel models.Hotel
	if err := client.Get(cmd.Context(), api.ResourceHotels, args[0], &hotel); err != nil {
		return fmt.Errorf("failed to get hotel: %w", err)
	}
	return format.Print(&hotel)
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(args[0])
	city, _ := cmd.Flags().GetString("city")
	country, _ := cmd.Flags().GetString("country")
	plan, _ := cmd.Flags().GetString("plan")
	rooms, _ := cmd.Flags().GetInt("rooms")

	errs := utils.NewMultiError()
	errs.Add(utils.ValidateName(name, "name"))
	errs.Add(utils.ValidateRequired(city, "city"))
	errs.Add(utils.ValidateOneOf(plan, "plan", "starter", "standard", "enterprise"))
	if rooms < 0 {
		errs.Add(utils.NewValidationError("rooms", "rooms cannot be negative"))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	client := api.NewClient()
	hotel := models.Hotel{Name: name, City: city, Country: strings.ToUpper(country), Plan: plan, Rooms: rooms}

	var created models.Hotel
	if err := client.Create(cmd.Context(), api.ResourceHotels, hotel, &created); err != nil {
		return fmt.Errorf("failed to create hotel: %w", err)
	}

	format.PrintSuccess("✓ Hotel '%s' created successfully", created.Name)
	return format.Print(&created)
}

func runSuspend(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Suspend(cmd.Context(), api.ResourceHotels, args[0]); err != nil {
		return fmt.Errorf("failed to suspend hotel: %w", err)
	}
	format.PrintSuccess("✓ Hotel '%s' suspended", args[0])
	return nil
}

func runActivate(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Activate(cmd.Context(), api.ResourceHotels, args[0]); err != nil {
		return fmt.Errorf("failed to activate hotel: %w", err)
	}
	format.PrintSuccess("✓ Hotel '%s' activated", args[0])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Delete(cmd.Context(), api.ResourceHotels, args[0]); err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	format.PrintSuccess("✓ Hotel '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listFlags = cli.AddListFlags(listCmd)

	createCmd.Flags().String("city", "", "City")
	createCmd.Flags().String("country", "", "ISO country code")
	createCmd.Flags().String("plan", "standard", "Subscription plan (starter, standard, enterprise)")
	createCmd.Flags().Int("rooms", 0, "Number of rooms")

	HotelsCmd.AddCommand(listCmd)
	HotelsCmd.AddCommand(showCmd)
	HotelsCmd.AddCommand(createCmd)
	HotelsCmd.AddCommand(suspendCmd)
	HotelsCmd.AddCommand(activateCmd)
	HotelsCmd.AddCommand(deleteCmd)
}
