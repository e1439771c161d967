package configs

import (
	"time"

	"adpanel/internal/core/grid"
)

// Grid holds the edit and delete windows of campaign data rows.
type Grid struct {
	EditWindow   time.Duration `env:"EDIT_WINDOW" envDefault:"72h"`
	DeleteWindow time.Duration `env:"DELETE_WINDOW" envDefault:"24h"`
	LateEditable []string      `env:"LATE_EDITABLE" envDefault:"paused_date,total_count,deduction,approved_count" envSeparator:","`
}

// Policy converts the section into a grid.EditPolicy.
func (c Grid) Policy() grid.EditPolicy {
	return grid.EditPolicy{
		Window:       c.EditWindow,
		DeleteWindow: c.DeleteWindow,
		LateEditable: c.LateEditable,
	}
}
