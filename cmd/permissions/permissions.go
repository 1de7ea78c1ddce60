package permissions

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostkiosk/kioskctl/internal/api"
	"github.com/hostkiosk/kioskctl/internal/cli"
	"github.com/hostkiosk/kioskctl/internal/export"
	"github.com/hostkiosk/kioskctl/internal/format"
	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/permissions"
)

// PermissionsCmd represents the permissions command
var PermissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Permission catalogue commands",
	Long: `Permission catalogue commands for kioskctl.

This command group lists the modules of each console scope, the
permission presets, and checks whether a role grants an action.`,
}

// modulesCmd lists the modules of a scope
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List permission modules",
	Long:  "List the modules a role of the given scope can be granted actions on",
	RunE:  runModules,
}

// presetsCmd lists permission presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List permission presets",
	RunE:  runPresets,
}

// checkCmd tests a single grant on a role
var checkCmd = &cobra.Command{
	Use:   "check <role-id> <module:action>",
	Short: "Check whether a role grants an action",
	Long: `Check whether a role grants an action.

Example:
  kioskctl permissions check r-002 billing:export`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

var scopeFlag string

func runModules(cmd *cobra.Command, args []string) error {
	scope, err := permissions.ParseScope(scopeFlag)
	if err != nil {
		return err
	}

	rows := make([]models.Row, 0, len(scope.Modules()))
	for _, m := range scope.Modules() {
		rows = append(rows, models.Row{"module": m, "scope": string(scope)})
	}
	cols := []export.Column{{Key: "module", Label: "Module"}, {Key: "scope", Label: "Scope"}}
	return format.Print(format.NewList(cols, rows, nil))
}

func runPresets(cmd *cobra.Command, args []string) error {
	var rows []models.Row
	for _, p := range permissions.Presets() {
		actions := make([]string, 0, len(p.Actions()))
		for _, a := range p.Actions() {
			actions = append(actions, string(a))
		}
		rows = append(rows, models.Row{"preset": string(p), "actions": strings.Join(actions, ", ")})
	}
	cols := []export.Column{{Key: "preset", Label: "Preset"}, {Key: "actions", Label: "Actions"}}
	return format.Print(format.NewList(cols, rows, nil))
}

func runCheck(cmd *cobra.Command, args []string) error {
	module, action, err := permissions.ParseGrant(args[1])
	if err != nil {
		return err
	}

	role, err := api.NewClient().GetRole(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get role: %w", err)
	}

	scope, err := permissions.ParseScope(role.Scope)
	if err != nil {
		return err
	}
	if !scope.HasModule(module) {
		return fmt.Errorf("module %q is not part of the %s scope", module, scope)
	}

	if permissions.FromAPIShape(role.Permissions).Allows(module, action) {
		format.PrintSuccess("✓ Role '%s' may %s %s", role.Name, action, module)
		return nil
	}
	format.PrintWarning("Role '%s' may not %s %s", role.Name, action, module)
	return cli.Reported(fmt.Errorf("%s:%s denied", module, action))
}

func init() {
	modulesCmd.Flags().StringVar(&scopeFlag, "scope", string(permissions.ScopeAdmin), "role scope (admin or hotel)")

	PermissionsCmd.AddCommand(modulesCmd)
	PermissionsCmd.AddCommand(presetsCmd)
	PermissionsCmd.AddCommand(checkCmd)
}
