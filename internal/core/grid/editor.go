package grid

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotEditing  = errors.New("grid: no row is being edited")
	ErrFieldLocked = errors.New("grid: field is not editable")
)

// Editor holds the inline edit state of a table. Only one row is edited at
// a time: starting another edit replaces the draft wholesale and silently
// drops unsaved changes.
type Editor struct {
	editingID string
	active    bool
	draft     Record
}

// Start puts row into edit mode with a private draft copy.
func (e *Editor) Start(row Record) {
	e.editingID = row.ID()
	e.active = true
	e.draft = row.Clone()
}

// Editing returns the id of the row being edited.
func (e *Editor) Editing() (string, bool) {
	return e.editingID, e.active
}

// IsEditing reports whether id is the row in edit mode.
func (e *Editor) IsEditing(id string) bool {
	return e.active && e.editingID == id
}

// Set writes value into the draft when policy allows the field at now.
func (e *Editor) Set(field string, value any, policy EditPolicy, now time.Time) error {
	if !e.active {
		return ErrNotEditing
	}
	switch field {
	case KeyID, KeyOwner, KeyCreatedAt:
		return fmt.Errorf("%w: %s", ErrFieldLocked, field)
	}
	createdAt, ok := e.draft.CreatedAt()
	if !ok || !policy.CanEdit(field, createdAt, now) {
		return fmt.Errorf("%w: %s", ErrFieldLocked, field)
	}
	e.draft[field] = value
	return nil
}

// Draft returns a copy of the current draft, or nil when not editing.
func (e *Editor) Draft() Record {
	if !e.active {
		return nil
	}
	return e.draft.Clone()
}

// Cancel leaves edit mode, discarding the draft.
func (e *Editor) Cancel() {
	e.editingID = ""
	e.active = false
	e.draft = nil
}
