// Package panel is the tabular view every dashboard screen is built from: a
// record set fetched from a remote collection, scoped and filtered locally,
// with single-row inline editing and time-gated row actions.
package panel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
)

var (
	ErrRowNotFound  = errors.New("panel: row not found")
	ErrNotOwner     = errors.New("panel: row belongs to another user")
	ErrDeleteClosed = errors.New("panel: delete window has closed")
)

// Source is the remote collection behind a panel.
type Source interface {
	List(ctx context.Context) ([]grid.Record, error)
	Create(ctx context.Context, rec grid.Record) (grid.Record, error)
	Update(ctx context.Context, id string, rec grid.Record) (grid.Record, error)
	Delete(ctx context.Context, id string) error
}

// Alerter surfaces a failed user action. The panel never retries.
type Alerter interface {
	Alert(action string, err error)
}

// AlertFunc adapts a function to Alerter.
type AlertFunc func(action string, err error)

// Alert calls f.
func (f AlertFunc) Alert(action string, err error) { f(action, err) }

// Config describes one panel.
type Config struct {
	Columns []grid.Column
	// Editable lists the fields offered in edit mode. Defaults to the
	// column keys.
	Editable []string
	// DateField is scoped by the date range. Empty disables scoping.
	DateField string
	// Range is the initial date range. Nil means the current month.
	Range   *grid.DateRange
	Policy  grid.EditPolicy
	Session domain.Session
	Alerter Alerter
	Logger  *slog.Logger
	Now     func() time.Time
	// AfterRefresh receives every freshly fetched record set.
	AfterRefresh func(rows []grid.Record)
}

// Panel holds an independent in-memory copy of its record set. Refreshes
// are serialised, so polling and signal-driven refreshes may overlap freely.
type Panel struct {
	source Source
	cfg    Config
	logger *slog.Logger
	now    func() time.Time

	fetchMu sync.Mutex

	mu      sync.RWMutex
	rows    []grid.Record
	loading bool
	query   grid.Query
	editor  grid.Editor
}

// New creates a panel over source. Nothing is fetched until Refresh.
func New(source Source, cfg Config) *Panel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Editable) == 0 {
		for _, c := range cfg.Columns {
			cfg.Editable = append(cfg.Editable, c.Key)
		}
	}
	q := grid.Query{DateField: cfg.DateField, Filters: map[string][]string{}}
	if cfg.DateField != "" {
		r := cfg.Range
		if r == nil {
			month := grid.CurrentMonth(now())
			r = &month
		}
		q.Range = r
	}
	return &Panel{source: source, cfg: cfg, logger: logger, now: now, query: q}
}

// Refresh re-fetches the whole record set. On failure the previous rows
// stay in place.
func (p *Panel) Refresh(ctx context.Context) error {
	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()

	p.setLoading(true)
	rows, err := p.source.List(ctx)
	p.setLoading(false)
	if err != nil {
		return p.fail("refresh", err)
	}

	p.mu.Lock()
	p.rows = rows
	p.mu.Unlock()

	if p.cfg.AfterRefresh != nil {
		p.cfg.AfterRefresh(slices.Clone(rows))
	}
	return nil
}

func (p *Panel) setLoading(v bool) {
	p.mu.Lock()
	p.loading = v
	p.mu.Unlock()
}

// Loading reports whether a fetch is in flight.
func (p *Panel) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Rows returns the full fetched record set.
func (p *Panel) Rows() []grid.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Clone(p.rows)
}

// Columns returns the column descriptors.
func (p *Panel) Columns() []grid.Column {
	return slices.Clone(p.cfg.Columns)
}

// View returns the rows left after date scoping, column filters and search.
func (p *Panel) View() []grid.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return grid.Apply(p.rows, p.cfg.Columns, p.query)
}

// Options returns the filter choices of every column, taken from the
// date-scoped rows.
func (p *Panel) Options() map[string][]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return grid.Options(p.rows, p.cfg.Columns, p.query)
}

// SetSearch sets the global search term.
func (p *Panel) SetSearch(term string) {
	p.mu.Lock()
	p.query.Search = term
	p.mu.Unlock()
}

// SetFilter selects values on a column. No values clears the filter.
func (p *Panel) SetFilter(key string, values ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(values) == 0 {
		delete(p.query.Filters, key)
		return
	}
	p.query.Filters[key] = slices.Clone(values)
}

// ClearFilters drops every column filter and the search term.
func (p *Panel) ClearFilters() {
	p.mu.Lock()
	p.query.Filters = map[string][]string{}
	p.query.Search = ""
	p.mu.Unlock()
}

// SetRange replaces the date range. Nil shows every date.
func (p *Panel) SetRange(r *grid.DateRange) {
	p.mu.Lock()
	p.query.Range = r
	p.mu.Unlock()
}

// Range returns the active date range, nil when unscoped.
func (p *Panel) Range() *grid.DateRange {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query.Range
}

// StartEdit puts the row with id into edit mode. Any unsaved draft of
// another row is discarded.
func (p *Panel) StartEdit(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	row, err := p.rowLocked(id)
	if err != nil {
		return err
	}
	if !p.writable(row) {
		return ErrNotOwner
	}
	p.editor.Start(row)
	return nil
}

// Editing returns the id of the row in edit mode.
func (p *Panel) Editing() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.editor.Editing()
}

// Draft returns the pending edit of the row in edit mode.
func (p *Panel) Draft() grid.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.editor.Draft()
}

// SetField writes value into the draft if the field is currently editable.
func (p *Panel) SetField(field string, value any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !slices.Contains(p.cfg.Editable, field) {
		return fmt.Errorf("%w: %s", grid.ErrFieldLocked, field)
	}
	return p.editor.Set(field, value, p.cfg.Policy, p.now())
}

// EditableFields lists the fields of row id that are writable right now.
func (p *Panel) EditableFields(id string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	row, err := p.rowLocked(id)
	if err != nil || !p.writable(row) {
		return nil
	}
	createdAt, ok := row.CreatedAt()
	if !ok {
		return nil
	}
	return p.cfg.Policy.EditableFields(p.cfg.Editable, createdAt, p.now())
}

// Save sends the full draft and, on success, leaves edit mode and
// re-fetches. On failure the draft is kept so the user can retry.
func (p *Panel) Save(ctx context.Context) error {
	p.mu.RLock()
	id, editing := p.editor.Editing()
	draft := p.editor.Draft()
	p.mu.RUnlock()
	if !editing {
		return p.fail("save", grid.ErrNotEditing)
	}
	if _, err := p.source.Update(ctx, id, draft); err != nil {
		return p.fail("save", err)
	}

	p.mu.Lock()
	if p.editor.IsEditing(id) {
		p.editor.Cancel()
	}
	p.mu.Unlock()
	return p.Refresh(ctx)
}

// CancelEdit leaves edit mode without saving.
func (p *Panel) CancelEdit() {
	p.mu.Lock()
	p.editor.Cancel()
	p.mu.Unlock()
}

// CanDelete reports whether the delete action is offered for row id.
func (p *Panel) CanDelete(id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	row, err := p.rowLocked(id)
	if err != nil {
		return false
	}
	return p.deletable(row)
}

// DeleteHoursLeft returns the hours before the delete action disappears.
func (p *Panel) DeleteHoursLeft(id string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	row, err := p.rowLocked(id)
	if err != nil {
		return 0
	}
	createdAt, ok := row.CreatedAt()
	if !ok {
		return 0
	}
	return p.cfg.Policy.DeleteHoursLeft(createdAt, p.now())
}

// Delete removes row id while its delete window is open, then re-fetches.
func (p *Panel) Delete(ctx context.Context, id string) error {
	p.mu.RLock()
	row, err := p.rowLocked(id)
	if err == nil && !p.deletable(row) {
		err = ErrDeleteClosed
		if !p.writable(row) {
			err = ErrNotOwner
		}
	}
	p.mu.RUnlock()
	if err != nil {
		return p.fail("delete", err)
	}
	if err := p.source.Delete(ctx, id); err != nil {
		return p.fail("delete", err)
	}

	p.mu.Lock()
	if p.editor.IsEditing(id) {
		p.editor.Cancel()
	}
	p.mu.Unlock()
	return p.Refresh(ctx)
}

// Copy submits a duplicate of row id owned by the session user, then
// re-fetches.
func (p *Panel) Copy(ctx context.Context, id string) (grid.Record, error) {
	p.mu.RLock()
	row, err := p.rowLocked(id)
	p.mu.RUnlock()
	if err != nil {
		return nil, p.fail("copy", err)
	}
	created, err := p.source.Create(ctx, grid.CopyRow(row, p.cfg.Session.ID, p.now()))
	if err != nil {
		return nil, p.fail("copy", err)
	}
	return created, p.Refresh(ctx)
}

// Create submits a new record, then re-fetches.
func (p *Panel) Create(ctx context.Context, rec grid.Record) (grid.Record, error) {
	created, err := p.source.Create(ctx, rec)
	if err != nil {
		return nil, p.fail("create", err)
	}
	return created, p.Refresh(ctx)
}

// Poll refreshes every interval until ctx is done. Failures are alerted
// and polling goes on. A non-positive interval disables polling.
func (p *Panel) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = p.Refresh(ctx)
		}
	}
}

// OnServerChangeSignal re-fetches on any server event. The event name is
// only logged.
func (p *Panel) OnServerChangeSignal(ctx context.Context, name domain.EventName) {
	p.logger.Debug("server change signal", slog.String("event", string(name)))
	_ = p.Refresh(ctx)
}

func (p *Panel) rowLocked(id string) (grid.Record, error) {
	for _, row := range p.rows {
		if row.ID() == id {
			return row, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRowNotFound, id)
}

// writable reports whether the session owns row. Rows without an owner
// field are shared lists and always writable.
func (p *Panel) writable(row grid.Record) bool {
	owner := row.String(grid.KeyOwner)
	if owner == "" {
		return true
	}
	id, err := strconv.ParseInt(owner, 10, 64)
	if err != nil {
		return false
	}
	return p.cfg.Session.CanWrite(id)
}

func (p *Panel) deletable(row grid.Record) bool {
	if !p.writable(row) {
		return false
	}
	createdAt, ok := row.CreatedAt()
	return ok && p.cfg.Policy.CanDelete(createdAt, p.now())
}

func (p *Panel) fail(action string, err error) error {
	p.logger.Warn("panel action failed", slog.String("action", action), slog.Any("error", err))
	if p.cfg.Alerter != nil {
		p.cfg.Alerter.Alert(action, err)
	}
	return err
}
