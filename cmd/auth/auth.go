package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// AuthCmd represents the auth command
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long: `Authentication commands for kioskctl.

This command group includes login, logout and session status.`,
}

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login to the console",
	Long:  "Authenticate with the console using email and password",
	RunE:  runLogin,
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout from the console",
	Long:  "End the current console session",
	RunE:  runLogout,
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show authentication status",
	Long:  "Display the current session, server and tenant",
	RunE:  runStatus,
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	errs := utils.NewMultiError()
	errs.Add(utils.ValidateEmail(email))
	errs.Add(utils.ValidateRequired(password, "password"))
	if err := errs.ErrorOrNil(); err != nil {
		return err
	}

	client := api.NewClient()

	format.PrintInfo("Logging in as %s...", email)
	response, err := client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	name := email
	if response.User != nil && response.User.Name != "" {
		name = response.User.Name
	}
	format.PrintSuccess("✓ Successfully logged in as %s (tenant %s)", name, client.TenantID)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	if cfg.Auth.SessionToken == "" {
		return fmt.Errorf("not logged in")
	}

	client := api.NewClient()
	if err := client.Logout(cmd.Context()); err != nil {
		// The local session is dropped even when the server already forgot it.
		if !utils.IsAuthError(err) {
			return fmt.Errorf("logout failed: %w", err)
		}
	}
	if err := config.ClearAuth(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	format.PrintSuccess("✓ Successfully logged out %s", cfg.Auth.Email)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	if cfg.Auth.SessionToken == "" {
		fmt.Println("Status: Not logged in")
		fmt.Printf("Server: %s\n", cfg.Server.URL)
		return nil
	}

	fmt.Printf("Status: Logged in as %s\n", cfg.Auth.Email)
	fmt.Printf("Server: %s\n", cfg.Server.URL)
	if tenant := config.TenantID(); tenant != "" {
		fmt.Printf("Tenant: %s\n", tenant)
	}
	fmt.Println("Session: Active")
	return nil
}

func init() {
	loginCmd.Flags().StringP("email", "e", "", "Email address")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}
