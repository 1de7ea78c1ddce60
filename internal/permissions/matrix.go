// Package permissions holds the role permission matrix: a mapping from
// console module to the set of actions a role may perform on it.
package permissions

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hostkiosk/kioskctl/internal/models"
)

// Action is one permission verb
type Action string

const (
	View   Action = "view"
	Create Action = "create"
	Edit   Action = "edit"
	Delete Action = "delete"
	Export Action = "export"
)

// Actions is the fixed action enumeration in display order
var Actions = []Action{View, Create, Edit, Delete, Export}

// ParseAction resolves an action name. "add" is accepted for create.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "view", "read":
		return View, nil
	case "create", "add":
		return Create, nil
	case "edit", "update":
		return Edit, nil
	case "delete", "remove":
		return Delete, nil
	case "export":
		return Export, nil
	}
	return "", fmt.Errorf("unknown action %q: expected one of view, create, edit, delete, export", s)
}

// Set is an unordered set of actions
type Set map[Action]struct{}

// NewSet builds a set from actions
func NewSet(actions ...Action) Set {
	s := make(Set, len(actions))
	for _, a := range actions {
		s[a] = struct{}{}
	}
	return s
}

// Has reports membership
func (s Set) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

// Sorted returns the members in enumeration order
func (s Set) Sorted() []Action {
	out := make([]Action, 0, len(s))
	for _, a := range Actions {
		if s.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Map is a role's permissions: module key to allowed actions
type Map map[string]Set

// Clone returns a deep copy
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, s := range m {
		out[k] = NewSet(s.Sorted()...)
	}
	return out
}

// Allows reports whether action is granted on module
func (m Map) Allows(module string, action Action) bool {
	return m[module].Has(action)
}

// Toggle flips action for module. An absent module starts empty.
func (m Map) Toggle(module string, action Action) {
	s, ok := m[module]
	if !ok {
		s = Set{}
		m[module] = s
	}
	if s.Has(action) {
		delete(s, action)
		return
	}
	s[action] = struct{}{}
}

// SetAllForModule replaces the module's action set wholesale
func (m Map) SetAllForModule(module string, actions []Action) {
	m[module] = NewSet(actions...)
}

// EnableAll grants every action on module
func (m Map) EnableAll(module string) {
	m.SetAllForModule(module, Actions)
}

// DisableAll revokes every action on module
func (m Map) DisableAll(module string) {
	m.SetAllForModule(module, nil)
}

// Modules returns the module keys present in the map, sorted
func (m Map) Modules() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two maps. A module with an empty set equals an absent one.
func (m Map) Equal(other Map) bool {
	for _, pair := range [][2]Map{{m, other}, {other, m}} {
		for k, s := range pair[0] {
			o := pair[1][k]
			if len(s) != len(o) {
				return false
			}
			for a := range s {
				if !o.Has(a) {
					return false
				}
			}
		}
	}
	return true
}

// ToAPIShape converts the map to per-module boolean flags
func (m Map) ToAPIShape() map[string]models.PermissionFlags {
	out := make(map[string]models.PermissionFlags, len(m))
	for module, s := range m {
		out[module] = models.PermissionFlags{
			View:   s.Has(View),
			Create: s.Has(Create),
			Edit:   s.Has(Edit),
			Delete: s.Has(Delete),
			Export: s.Has(Export),
		}
	}
	return out
}

// FromAPIShape is the exact inverse of ToAPIShape
func FromAPIShape(flags map[string]models.PermissionFlags) Map {
	out := make(Map, len(flags))
	for module, f := range flags {
		s := Set{}
		if f.View {
			s[View] = struct{}{}
		}
		if f.Create {
			s[Create] = struct{}{}
		}
		if f.Edit {
			s[Edit] = struct{}{}
		}
		if f.Delete {
			s[Delete] = struct{}{}
		}
		if f.Export {
			s[Export] = struct{}{}
		}
		out[module] = s
	}
	return out
}

// ParseGrant parses "module:action" as used by --toggle
func ParseGrant(expr string) (string, Action, error) {
	module, action, ok := strings.Cut(expr, ":")
	module = strings.TrimSpace(module)
	if !ok || module == "" {
		return "", "", fmt.Errorf("invalid grant %q: expected module:action", expr)
	}
	a, err := ParseAction(action)
	if err != nil {
		return "", "", err
	}
	return module, a, nil
}
