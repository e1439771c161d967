package panel

import (
	"strconv"
	"sync"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/core/idpool"
)

// KeyAssignedID is the identifier field drawn from the id pool.
const KeyAssignedID = "assigned_id"

// IDPicker offers the ids a user may pick when creating an identifier
// record. Feed it the identifier panel's rows via Config.AfterRefresh.
type IDPicker struct {
	session domain.Session
	owner   int64

	mu   sync.Mutex
	pool *idpool.Pool
}

// NewIDPicker builds a picker over the ranges of s for records owned by
// owner. A zero owner means s itself.
func NewIDPicker(s domain.Session, owner int64) *IDPicker {
	if owner == 0 {
		owner = s.ID
	}
	return &IDPicker{
		session: s,
		owner:   owner,
		pool:    idpool.NewPool(s.Ranges, nil),
	}
}

// Reset recomputes the pool from the owner's records in rows.
func (p *IDPicker) Reset(rows []grid.Record) {
	var used []string
	for _, row := range rows {
		if owner := row.String(grid.KeyOwner); owner != "" && owner != strconv.FormatInt(p.owner, 10) {
			continue
		}
		if id := row.String(KeyAssignedID); id != "" {
			used = append(used, id)
		}
	}
	pool := idpool.NewPool(p.session.Ranges, used)

	p.mu.Lock()
	p.pool = pool
	p.mu.Unlock()
}

// Options returns the ids offered by the creation form.
func (p *IDPicker) Options() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.IDs()
}

// ForEdit returns the only id offered when editing row.
func (p *IDPicker) ForEdit(row grid.Record) []string {
	return idpool.ForEdit(row.String(KeyAssignedID)).IDs()
}

// Created drops id from the pool ahead of the next refresh. It reports
// whether id was on offer.
func (p *IDPicker) Created(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pool.Take(id)
}
