package permissions

import (
	"fmt"
	"strings"
)

// Scope selects which console a role applies to
type Scope string

const (
	ScopeAdmin Scope = "admin"
	ScopeHotel Scope = "hotel"
)

var scopeModules = map[Scope][]string{
	ScopeAdmin: {"hotels", "kiosks", "users", "roles", "billing", "support", "audit", "reports", "settings"},
	ScopeHotel: {"kiosks", "bookings", "guests", "reports", "staff", "settings"},
}

// ParseScope resolves a scope name
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeAdmin:
		return ScopeAdmin, nil
	case ScopeHotel:
		return ScopeHotel, nil
	}
	return "", fmt.Errorf("unknown scope %q: expected admin or hotel", s)
}

// Modules lists the modules of a scope in display order
func (s Scope) Modules() []string {
	return append([]string(nil), scopeModules[s]...)
}

// HasModule reports whether module belongs to the scope
func (s Scope) HasModule(module string) bool {
	for _, m := range scopeModules[s] {
		if m == module {
			return true
		}
	}
	return false
}

// Preset is a named action set applied to every module of a scope
type Preset string

const (
	PresetReadOnly  Preset = "read-only"
	PresetOperator  Preset = "operator"
	PresetFullAdmin Preset = "full-admin"
)

// One policy table for both the admin and the hotel role editors.
var presetActions = map[Preset][]Action{
	PresetReadOnly:  {View},
	PresetOperator:  {View, Edit},
	PresetFullAdmin: Actions,
}

// Presets lists every preset from narrowest to widest
func Presets() []Preset {
	return []Preset{PresetReadOnly, PresetOperator, PresetFullAdmin}
}

// ParsePreset resolves a preset name
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presetActions[p]; !ok {
		return "", fmt.Errorf("unknown preset %q: expected read-only, operator or full-admin", s)
	}
	return p, nil
}

// Actions returns the preset's action set
func (p Preset) Actions() []Action {
	return append([]Action(nil), presetActions[p]...)
}

// ApplyPreset sets every listed module to the preset's action set
func (m Map) ApplyPreset(p Preset, modules []string) {
	actions := p.Actions()
	for _, module := range modules {
		m.SetAllForModule(module, actions)
	}
}

// Empty returns a map with every module of scope present and no actions
func Empty(scope Scope) Map {
	m := Map{}
	for _, module := range scope.Modules() {
		m[module] = Set{}
	}
	return m
}
