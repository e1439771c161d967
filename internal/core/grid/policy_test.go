package grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanEditDualWindow(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	aged := now.Add(-4 * 24 * time.Hour)
	assert.True(t, p.CanEdit("paused_date", aged, now))
	assert.True(t, p.CanEdit("approved_count", aged, now))
	assert.False(t, p.CanEdit("campaign_name", aged, now))

	fresh := now.Add(-24 * time.Hour)
	assert.False(t, p.CanEdit("paused_date", fresh, now))
	assert.False(t, p.CanEdit("approved_count", fresh, now))
	assert.True(t, p.CanEdit("campaign_name", fresh, now))
}

func TestCanEditIsExclusive(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	fields := []string{"campaign_name", "geo", "paused_date", "deduction"}
	ages := []time.Duration{0, time.Hour, 72 * time.Hour, 72*time.Hour + time.Second, 30 * 24 * time.Hour}

	for _, f := range fields {
		for _, age := range ages {
			created := now.Add(-age)
			inNormal := !p.Aged(created, now) && p.CanEdit(f, created, now)
			inLate := p.Aged(created, now) && p.CanEdit(f, created, now)
			assert.False(t, inNormal && inLate, "field %s age %s", f, age)
		}
		fresh, old := now, now.Add(-31*24*time.Hour)
		assert.NotEqual(t, p.CanEdit(f, fresh, now), p.CanEdit(f, old, now), "field %s must be writable in exactly one window", f)
	}
}

func TestEditWindowBoundaryIsInclusive(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	atEdge := now.Add(-72 * time.Hour)

	assert.True(t, p.CanEdit("geo", atEdge, now))
	assert.False(t, p.CanEdit("geo", atEdge.Add(-time.Second), now))
}

func TestCanDeleteBoundaries(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.True(t, p.CanDelete(now.Add(-(23*time.Hour+59*time.Minute)), now))
	assert.False(t, p.CanDelete(now.Add(-(24*time.Hour+time.Minute)), now))
	assert.False(t, p.CanDelete(now.Add(-24*time.Hour), now))
}

func TestDeleteHoursLeft(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, p.DeleteHoursLeft(now, now))
	assert.Equal(t, 1, p.DeleteHoursLeft(now.Add(-(23*time.Hour+59*time.Minute)), now))
	assert.Equal(t, 5, p.DeleteHoursLeft(now.Add(-(19*time.Hour+30*time.Minute)), now))
	assert.Equal(t, 0, p.DeleteHoursLeft(now.Add(-25*time.Hour), now))
}

func TestEditableFields(t *testing.T) {
	p := DefaultPolicy()
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	fields := []string{"geo", "paused_date", "deduction"}

	assert.Equal(t, []string{"geo"}, p.EditableFields(fields, now.Add(-time.Hour), now))
	assert.Equal(t, []string{"paused_date", "deduction"}, p.EditableFields(fields, now.Add(-100*time.Hour), now))
}
