package format

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/hostkiosk/kioskctl/internal/permissions"
)

const (
	granted = "✓"
	denied  = "·"
)

// PermissionGrid renders a permission matrix with one row per module and
// one column per action
func PermissionGrid(w io.Writer, perms permissions.Map, modules []string, useColors bool) {
	headers := []string{"Module"}
	for _, a := range permissions.Actions {
		headers = append(headers, string(a))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	(&TableFormatter{useColors: useColors}).configureTable(table, len(headers))
	table.SetAlignment(tablewriter.ALIGN_CENTER)

	for _, module := range modules {
		row := []string{moduleLabel(module)}
		for _, a := range permissions.Actions {
			row = append(row, tick(perms.Allows(module, a), useColors))
		}
		table.Append(row)
	}
	table.Render()
}

func tick(ok, useColors bool) string {
	switch {
	case ok && useColors:
		return color.GreenString(granted)
	case ok:
		return granted
	case useColors:
		return color.HiBlackString(denied)
	}
	return denied
}

func moduleLabel(module string) string {
	if module == "" {
		return module
	}
	return strings.ToUpper(module[:1]) + module[1:]
}
