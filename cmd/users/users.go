package users

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

// UsersCmd represents the users command
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "User management commands",
	Long: `User management commands for kioskctl.

This command group lists console users and creates, suspends,
reactivates and deletes them.`,
}

var columns = []export.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "role", Label: "Role"},
	{Key: "hotel_id", Label: "Hotel"},
	{Key: "status", Label: "Status"},
	{Key: "last_login_at", Label: "Last Login"},
}

var listFlags *cli.ListFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runList,
}

// createCmd creates a new user
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new user",
	Long: `Create a new console user.

The password must be at least 8 characters and is entered twice, with
--password and --confirm-password.`,
	RunE: runCreate,
}

var suspendCmd = &cobra.Command{
	Use:   "suspend <id>",
	Short: "Suspend a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuspend,
}

var activateCmd = &cobra.Command{
	Use:   "activate <id>",
	Short: "Activate a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivate,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runList(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	rows, err := cli.Fetch[models.User](cmd.Context(), client, api.ResourceUsers, listFlags)
	if err != nil {
		return err
	}
	return cli.Render(listFlags, rows, columns)
}

// validateCreate checks a new user before anything is sent
func validateCreate(req models.CreateUserRequest, confirm string) error {
	errs := utils.NewMultiError()
	errs.Add(utils.ValidateRequired(req.Name, "name"))
	errs.Add(utils.ValidateEmail(req.Email))
	errs.Add(utils.ValidatePasswordConfirmation(req.Password, confirm))
	errs.Add(utils.ValidateRequired(req.Role, "role"))
	return errs.ErrorOrNil()
}

func runCreate(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	confirm, _ := cmd.Flags().GetString("confirm-password")
	role, _ := cmd.Flags().GetString("role")
	hotelID, _ := cmd.Flags().GetString("hotel")

	req := models.CreateUserRequest{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: password,
		Role:     role,
		HotelID:  hotelID,
	}
	if err := validateCreate(req, confirm); err != nil {
		return err
	}

	client := api.NewClient()
	var created models.User
	if err := client.Create(cmd.Context(), api.ResourceUsers, req, &created); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	format.PrintSuccess("✓ User '%s' created successfully", created.Email)
	return format.Print(&created)
}

func runSuspend(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Suspend(cmd.Context(), api.ResourceUsers, args[0]); err != nil {
		return fmt.Errorf("failed to suspend user: %w", err)
	}
	format.PrintSuccess("✓ User '%s' suspended", args[0])
	return nil
}

func runActivate(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Activate(cmd.Context(), api.ResourceUsers, args[0]); err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}
	format.PrintSuccess("✓ User '%s' activated", args[0])
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	if err := client.Delete(cmd.Context(), api.ResourceUsers, args[0]); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	format.PrintSuccess("✓ User '%s' deleted successfully", args[0])
	return nil
}

func init() {
	listFlags = cli.AddListFlags(listCmd)

	createCmd.Flags().String("name", "", "Full name")
	createCmd.Flags().StringP("email", "e", "", "Email address")
	createCmd.Flags().StringP("password", "p", "", "Password (at least 8 characters)")
	createCmd.Flags().String("confirm-password", "", "Password again")
	createCmd.Flags().String("role", "", "Role name")
	createCmd.Flags().String("hotel", "", "Hotel id for hotel-scoped users")

	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(createCmd)
	UsersCmd.AddCommand(suspendCmd)
	UsersCmd.AddCommand(activateCmd)
	UsersCmd.AddCommand(deleteCmd)
}
