package permissions

import (
	"context"
	"errors"
	"fmt"

	"github.com/hostkiosk/kioskctl/internal/models"
	"github.com/hostkiosk/kioskctl/internal/notify"
	"github.com/hostkiosk/kioskctl/internal/utils"
)

// State is the lifecycle of a role editor
type State int

const (
	StateLoading State = iota
	StateReady
	StateSaving
	StateDone
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateSaving:
		return "saving"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrNotEditable is returned for edits attempted outside the ready state
var ErrNotEditable = errors.New("role editor is not ready for edits")

// RoleStore loads and persists roles. The API client implements it.
type RoleStore interface {
	GetRole(ctx context.Context, id string) (models.Role, error)
	SaveRole(ctx context.Context, role models.Role) (models.Role, error)
}

// Notifier receives the outcome of editor actions
type Notifier interface {
	Success(title, message string) notify.Toast
	Error(title, message string) notify.Toast
}

// Editor edits one role's permission matrix. No autosave: unsaved edits
// are lost when the editor is dropped.
type Editor struct {
	store    RoleStore
	notifier Notifier
	state    State
	scope    Scope
	role     models.Role
	perms    Map
}

// NewRoleEditor starts a new role with an empty matrix, ready immediately
func NewRoleEditor(store RoleStore, notifier Notifier, scope Scope, name string) *Editor {
	return &Editor{
		store:    store,
		notifier: notifier,
		state:    StateReady,
		scope:    scope,
		role:     models.Role{Name: name, Scope: string(scope)},
		perms:    Empty(scope),
	}
}

// LoadRoleEditor fetches an existing role and moves from loading to ready
func LoadRoleEditor(ctx context.Context, store RoleStore, notifier Notifier, id string) (*Editor, error) {
	e := &Editor{store: store, notifier: notifier, state: StateLoading}
	role, err := store.GetRole(ctx, id)
	if err != nil {
		notifier.Error("Failed to load role", err.Error())
		return nil, fmt.Errorf("failed to load role %s: %w", id, err)
	}
	scope, err := ParseScope(role.Scope)
	if err != nil {
		verr := utils.NewValidationError("scope", err.Error())
		notifier.Error("Failed to load role", verr.Error())
		return nil, fmt.Errorf("role %s: %w", id, verr)
	}
	e.scope = scope
	e.role = role
	e.perms = Empty(scope)
	for module, set := range FromAPIShape(role.Permissions) {
		e.perms[module] = set
	}
	e.state = StateReady
	return e, nil
}

// State returns the current lifecycle state
func (e *Editor) State() State {
	return e.state
}

// Scope returns the console the role applies to
func (e *Editor) Scope() Scope {
	return e.scope
}

// Role returns the role metadata being edited
func (e *Editor) Role() models.Role {
	return e.role
}

// Permissions returns a copy of the working matrix
func (e *Editor) Permissions() Map {
	return e.perms.Clone()
}

// SetDescription updates the role description
func (e *Editor) SetDescription(desc string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.role.Description = desc
	return nil
}

func (e *Editor) editable(module string) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	if !e.scope.HasModule(module) {
		return utils.NewValidationError("module", fmt.Sprintf("module %q is not part of the %s console", module, e.scope))
	}
	return nil
}

// Toggle flips one action on one module
func (e *Editor) Toggle(module string, action Action) error {
	if err := e.editable(module); err != nil {
		return err
	}
	e.perms.Toggle(module, action)
	return nil
}

// SetAllForModule replaces the module's actions
func (e *Editor) SetAllForModule(module string, actions []Action) error {
	if err := e.editable(module); err != nil {
		return err
	}
	e.perms.SetAllForModule(module, actions)
	return nil
}

// ApplyPreset applies a preset to every module of the role's scope
func (e *Editor) ApplyPreset(p Preset) error {
	if e.state != StateReady {
		return ErrNotEditable
	}
	e.perms.ApplyPreset(p, e.scope.Modules())
	return nil
}

// Save submits the matrix. Failure returns to ready with an error toast;
// success moves to done.
func (e *Editor) Save(ctx context.Context) (models.Role, error) {
	if e.state != StateReady {
		return models.Role{}, ErrNotEditable
	}
	if err := utils.ValidateRequired(e.role.Name, "name"); err != nil {
		e.notifier.Error("Validation failed", err.Error())
		return models.Role{}, err
	}

	e.state = StateSaving
	role := e.role
	role.Permissions = e.perms.ToAPIShape()

	saved, err := e.store.SaveRole(ctx, role)
	if err != nil {
		e.state = StateReady
		e.notifier.Error("Failed to save role", err.Error())
		return models.Role{}, fmt.Errorf("failed to save role: %w", err)
	}

	e.state = StateDone
	e.role = saved
	e.notifier.Success("Role saved", fmt.Sprintf("Role '%s' saved successfully", saved.Name))
	return saved, nil
}
