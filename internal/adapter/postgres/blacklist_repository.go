package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
)

// BlacklistRepository implements port.BlacklistRepository using pgxpool.
type BlacklistRepository struct {
	pool *pgxpool.Pool
}

// NewBlacklistRepository returns a new repository instance.
func NewBlacklistRepository(pool *pgxpool.Pool) *BlacklistRepository {
	return &BlacklistRepository{pool: pool}
}

// List returns every blocked pid, newest first.
func (r *BlacklistRepository) List(ctx context.Context) ([]domain.BlacklistEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT pid, created_at FROM blacklist ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BlacklistEntry, error) {
		var e domain.BlacklistEntry
		err := row.Scan(&e.PID, &e.Date)
		return e, err
	})
}

// Add blocks entry.PID and fills its date.
func (r *BlacklistRepository) Add(ctx context.Context, entry *domain.BlacklistEntry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO blacklist (pid) VALUES ($1) RETURNING created_at`, entry.PID,
	).Scan(&entry.Date)
	return mapErr(err)
}

// Remove unblocks pid.
func (r *BlacklistRepository) Remove(ctx context.Context, pid string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM blacklist WHERE pid = $1`, pid))
}

// Contains reports whether pid is blocked.
func (r *BlacklistRepository) Contains(ctx context.Context, pid string) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blacklist WHERE pid = $1)`, pid).Scan(&found)
	return found, err
}
