package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
)

// LookupRepository implements port.LookupRepository using pgxpool.
type LookupRepository struct {
	pool *pgxpool.Pool
}

// NewLookupRepository returns a new repository instance.
func NewLookupRepository(pool *pgxpool.Pool) *LookupRepository {
	return &LookupRepository{pool: pool}
}

// List returns the values of list in insertion order.
func (r *LookupRepository) List(ctx context.Context, list string) ([]domain.LookupEntry, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, list, value FROM lookups WHERE list = $1 ORDER BY id`, list)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[domain.LookupEntry])
}

// Add appends entry and fills its id.
func (r *LookupRepository) Add(ctx context.Context, entry *domain.LookupEntry) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO lookups (list, value) VALUES ($1, $2) RETURNING id`, entry.List, entry.Value,
	).Scan(&entry.ID)
	return mapErr(err)
}

// Rename changes the value of one entry.
func (r *LookupRepository) Rename(ctx context.Context, list string, id int64, value string) error {
	return affected(r.pool.Exec(ctx, `UPDATE lookups SET value = $3 WHERE list = $1 AND id = $2`, list, id, value))
}
