package grid

import (
	"math"
	"slices"
	"time"
)

// EditPolicy decides which fields of a row may change, based on the row's
// age. Normal fields are writable only inside Window; late-editable fields
// are writable only after it. A field is never writable in both windows.
type EditPolicy struct {
	Window       time.Duration
	DeleteWindow time.Duration
	LateEditable []string
}

// DefaultPolicy is the three-day edit window and one-day delete window used
// by campaign data tables.
func DefaultPolicy() EditPolicy {
	return EditPolicy{
		Window:       72 * time.Hour,
		DeleteWindow: 24 * time.Hour,
		LateEditable: []string{"paused_date", "total_count", "deduction", "approved_count"},
	}
}

// Aged reports whether the row has left the normal edit window.
func (p EditPolicy) Aged(createdAt, now time.Time) bool {
	return now.Sub(createdAt) > p.Window
}

// IsLateEditable reports whether field belongs to the late-editable list.
func (p EditPolicy) IsLateEditable(field string) bool {
	return slices.Contains(p.LateEditable, field)
}

// CanEdit reports whether field is writable for a row created at createdAt.
func (p EditPolicy) CanEdit(field string, createdAt, now time.Time) bool {
	return p.IsLateEditable(field) == p.Aged(createdAt, now)
}

// EditableFields filters fields down to the ones currently writable.
func (p EditPolicy) EditableFields(fields []string, createdAt, now time.Time) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if p.CanEdit(f, createdAt, now) {
			out = append(out, f)
		}
	}
	return out
}

// CanDelete reports whether the row is still inside the delete window.
func (p EditPolicy) CanDelete(createdAt, now time.Time) bool {
	return now.Sub(createdAt) < p.DeleteWindow
}

// DeleteHoursLeft returns the whole hours, rounded up, before the delete
// action disappears. Zero once the window has closed.
func (p EditPolicy) DeleteHoursLeft(createdAt, now time.Time) int {
	left := p.DeleteWindow - now.Sub(createdAt)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Hours()))
}
