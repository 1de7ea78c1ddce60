package permissions

import (
	"reflect"
	"testing"

	"github.com/hostkiosk/kioskctl/internal/models"
)

func TestToggleFlipsMembership(t *testing.T) {
	m := Map{}
	m.Toggle("hotels", View)
	if !m.Allows("hotels", View) {
		t.Fatalf("expected view granted on absent module after toggle")
	}
	m.Toggle("hotels", View)
	if m.Allows("hotels", View) {
		t.Fatalf("expected view revoked after second toggle")
	}
	if _, ok := m["hotels"]; !ok {
		t.Fatalf("module should remain with an empty set")
	}
}

func TestSetAllForModuleReplaces(t *testing.T) {
	m := Map{"kiosks": NewSet(View, Delete)}
	m.SetAllForModule("kiosks", []Action{Edit})
	if got := m["kiosks"].Sorted(); !reflect.DeepEqual(got, []Action{Edit}) {
		t.Fatalf("expected [edit], got %v", got)
	}
	m.EnableAll("kiosks")
	if got := m["kiosks"].Sorted(); !reflect.DeepEqual(got, Actions) {
		t.Fatalf("expected all actions, got %v", got)
	}
	m.DisableAll("kiosks")
	if len(m["kiosks"]) != 0 {
		t.Fatalf("expected no actions, got %v", m["kiosks"].Sorted())
	}
}

func TestAPIShapeRoundTrip(t *testing.T) {
	maps := []Map{
		{},
		{"hotels": NewSet()},
		{"hotels": NewSet(View), "billing": NewSet(View, Export)},
		{"users": NewSet(Actions...), "audit": NewSet(Delete, Create)},
	}
	for _, m := range maps {
		back := FromAPIShape(m.ToAPIShape())
		if !reflect.DeepEqual(back, m) {
			t.Fatalf("round trip changed map: %v -> %v", m, back)
		}
		if !back.Equal(m) {
			t.Fatalf("Equal disagrees with DeepEqual for %v", m)
		}
	}
}

func TestToAPIShapeFlags(t *testing.T) {
	shape := Map{"billing": NewSet(View, Export)}.ToAPIShape()
	want := map[string]models.PermissionFlags{"billing": {View: true, Export: true}}
	if !reflect.DeepEqual(shape, want) {
		t.Fatalf("expected %v, got %v", want, shape)
	}
}

func TestReadOnlyPresetLeavesOnlyView(t *testing.T) {
	m := Map{
		"hotels":  NewSet(Actions...),
		"kiosks":  NewSet(Create, Delete),
		"reports": NewSet(),
	}
	modules := ScopeAdmin.Modules()
	m.ApplyPreset(PresetReadOnly, modules)
	for _, module := range modules {
		if got := m[module].Sorted(); !reflect.DeepEqual(got, []Action{View}) {
			t.Fatalf("%s: expected [view], got %v", module, got)
		}
		for _, a := range []Action{Create, Edit, Delete, Export} {
			if m.Allows(module, a) {
				t.Fatalf("%s retains %s", module, a)
			}
		}
	}
}

func TestFullAdminPreset(t *testing.T) {
	m := Empty(ScopeHotel)
	m.ApplyPreset(PresetFullAdmin, ScopeHotel.Modules())
	for _, module := range ScopeHotel.Modules() {
		if !reflect.DeepEqual(m[module].Sorted(), Actions) {
			t.Fatalf("%s: expected every action", module)
		}
	}
}

func TestEqualTreatsEmptyAsAbsent(t *testing.T) {
	if !(Map{"hotels": NewSet()}).Equal(Map{}) {
		t.Fatalf("empty set should equal absent module")
	}
	if (Map{"hotels": NewSet(View)}).Equal(Map{"hotels": NewSet(Edit)}) {
		t.Fatalf("different sets must not be equal")
	}
}

func TestParseActionAndGrant(t *testing.T) {
	if a, err := ParseAction("add"); err != nil || a != Create {
		t.Fatalf("expected add to alias create, got %v %v", a, err)
	}
	if _, err := ParseAction("launch"); err == nil {
		t.Fatalf("expected error for unknown action")
	}
	module, action, err := ParseGrant("billing:export")
	if err != nil || module != "billing" || action != Export {
		t.Fatalf("unexpected grant %s %s %v", module, action, err)
	}
	if _, _, err := ParseGrant("billing"); err == nil {
		t.Fatalf("expected error for missing action")
	}
}

func TestParsePresetAndScope(t *testing.T) {
	if p, err := ParsePreset("Read-Only"); err != nil || p != PresetReadOnly {
		t.Fatalf("unexpected preset %v %v", p, err)
	}
	if _, err := ParsePreset("god-mode"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
	if s, err := ParseScope("hotel"); err != nil || s != ScopeHotel {
		t.Fatalf("unexpected scope %v %v", s, err)
	}
	if ScopeHotel.HasModule("billing") {
		t.Fatalf("billing is an admin-only module")
	}
}

func TestPresetsWidenInOrder(t *testing.T) {
	presets := Presets()
	for i := 1; i < len(presets); i++ {
		if len(presets[i].Actions()) <= len(presets[i-1].Actions()) {
			t.Fatalf("preset %s is not wider than %s", presets[i], presets[i-1])
		}
	}
	if presets[0] != PresetReadOnly || presets[len(presets)-1] != PresetFullAdmin {
		t.Fatalf("unexpected preset order %v", presets)
	}
}
