package roles

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/config"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/notify"
	"github.com/hostkiosk/kioskctl/internal/permissions"
)

// RolesCmd represents the roles command
var RolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Role and permission management commands",
	Long: `Role and permission management commands for kioskctl.

A role grants actions (view, create, edit, delete, export) on the modules
of either the admin console or a hotel panel. Edits are applied in order:
--preset, then --enable-all, then --disable-all, then each --toggle.`,
}

var columns = []export.Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "scope", Label: "Scope"},
	{Key: "description", Label: "Description"},
	{Key: "user_count", Label: "Users"},
}

var listFlags *cli.ListFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles",
	RunE:  runList,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a role and its permission matrix",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// createCmd creates a new role
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new role",
	Long: `Create a new role starting from an empty matrix.

Examples:
  kioskctl roles create "Night Auditor" --scope hotel --preset read-only
  kioskctl roles create "Billing Clerk" --enable-all billing --toggle reports:view`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

// editCmd edits an existing role
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a role's permission matrix",
	Long: `Edit a role's permission matrix.

Examples:
  kioskctl roles edit r-002 --toggle billing:export
  kioskctl roles edit r-003 --preset operator --disable-all settings --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

// edits holds the matrix edit flags shared by create and edit
type edits struct {
	preset      string
	description string
	enableAll   []string
	disableAll  []string
	toggles     []string
	dryRun      bool
}

func addEditFlags(cmd *cobra.Command) *edits {
	e := &edits{}
	cmd.Flags().StringVar(&e.preset, "preset", "", "apply a preset: read-only, operator, full-admin")
	cmd.Flags().StringVar(&e.description, "description", "", "role description")
	cmd.Flags().StringArrayVar(&e.enableAll, "enable-all", nil, "grant every action on a module (repeatable)")
	cmd.Flags().StringArrayVar(&e.disableAll, "disable-all", nil, "revoke every action on a module (repeatable)")
	cmd.Flags().StringArrayVar(&e.toggles, "toggle", nil, "flip one grant, as module:action (repeatable)")
	cmd.Flags().BoolVar(&e.dryRun, "dry-run", false, "show the resulting matrix without saving")
	return e
}

var (
	createEdits *edits
	editEdits   *edits
	scopeFlag   string
)

// apply runs the edits against the editor in their documented order
func (e *edits) apply(editor *permissions.Editor) error {
	if e.description != "" {
		if err := editor.SetDescription(e.description); err != nil {
			return err
		}
	}
	if e.preset != "" {
		preset, err := permissions.ParsePreset(e.preset)
		if err != nil {
			return err
		}
		if err := editor.ApplyPreset(preset); err != nil {
			return err
		}
	}
	for _, module := range e.enableAll {
		if err := editor.SetAllForModule(module, permissions.Actions); err != nil {
			return err
		}
	}
	for _, module := range e.disableAll {
		if err := editor.SetAllForModule(module, nil); err != nil {
			return err
		}
	}
	for _, grant := range e.toggles {
		module, action, err := permissions.ParseGrant(grant)
		if err != nil {
			return err
		}
		if err := editor.Toggle(module, action); err != nil {
			return err
		}
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	rows, err := cli.Fetch[models.Role](cmd.Context(), client, api.ResourceRoles, listFlags)
	if err != nil {
		return err
	}
	return cli.Render(listFlags, rows, columns)
}

// printRole prints the role heading and its matrix. Structured formats
// get the API shape instead of the grid.
func printRole(role models.Role, perms permissions.Map, scope permissions.Scope) error {
	switch config.GetOutputFormat() {
	case "table", "text":
	default:
		role.Permissions = perms.ToAPIShape()
		return format.Print(role)
	}

	fmt.Fprintf(os.Stdout, "%s (%s console)\n", role.Name, scope)
	if role.Description != "" {
		fmt.Fprintln(os.Stdout, role.Description)
	}
	fmt.Fprintln(os.Stdout)
	format.PermissionGrid(os.Stdout, perms, scope.Modules(), config.Get().Format.Colors)
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	client := api.NewClient()
	editor, err := permissions.LoadRoleEditor(cmd.Context(), client, notify.Default(), args[0])
	if err != nil {
		return cli.Reported(err)
	}
	return printRole(editor.Role(), editor.Permissions(), editor.Scope())
}

func save(ctx context.Context, editor *permissions.Editor, e *edits) error {
	if err := e.apply(editor); err != nil {
		return err
	}
	if e.dryRun {
		format.PrintInfo("Dry run: changes were not saved")
		return printRole(editor.Role(), editor.Permissions(), editor.Scope())
	}
	saved, err := editor.Save(ctx)
	if err != nil {
		return cli.Reported(err)
	}
	return printRole(saved, editor.Permissions(), editor.Scope())
}

func runCreate(cmd *cobra.Command, args []string) error {
	scope, err := permissions.ParseScope(scopeFlag)
	if err != nil {
		return err
	}
	editor := permissions.NewRoleEditor(api.NewClient(), notify.Default(), scope, args[0])
	return save(cmd.Context(), editor, createEdits)
}

func runEdit(cmd *cobra.Command, args []string) error {
	editor, err := permissions.LoadRoleEditor(cmd.Context(), api.NewClient(), notify.Default(), args[0])
	if err != nil {
		return cli.Reported(err)
	}
	return save(cmd.Context(), editor, editEdits)
}

func init() {
	listFlags = cli.AddListFlags(listCmd)

	createEdits = addEditFlags(createCmd)
	createCmd.Flags().StringVar(&scopeFlag, "scope", string(permissions.ScopeAdmin), "console the role applies to: admin or hotel")
	editEdits = addEditFlags(editCmd)

	RolesCmd.AddCommand(listCmd)
	RolesCmd.AddCommand(showCmd)
	RolesCmd.AddCommand(createCmd)
	RolesCmd.AddCommand(editCmd)
}
