package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
)

// IdentifierRepository implements port.IdentifierRepository using pgxpool.
type IdentifierRepository struct {
	pool *pgxpool.Pool
}

// NewIdentifierRepository returns a new repository instance.
func NewIdentifierRepository(pool *pgxpool.Pool) *IdentifierRepository {
	return &IdentifierRepository{pool: pool}
}

const identifierColumns = `id, kind, name, assigned_id, geo, note, target, owner_user_id, created_at`

func scanIdentifier(row pgx.Row) (domain.Identifier, error) {
	var rec domain.Identifier
	err := row.Scan(&rec.ID, &rec.Kind, &rec.Name, &rec.AssignedID, &rec.Geo, &rec.Note,
		&rec.Target, &rec.OwnerUserID, &rec.CreatedAt)
	return rec, err
}

// List returns the records of kind owned by any of owners, newest first.
func (r *IdentifierRepository) List(ctx context.Context, kind string, owners []int64) ([]domain.Identifier, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+identifierColumns+`
        FROM identifiers
        WHERE kind = $1 AND owner_user_id = ANY($2)
        ORDER BY created_at DESC, id DESC`, kind, owners)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Identifier, error) {
		return scanIdentifier(row)
	})
}

// Get returns one record.
func (r *IdentifierRepository) Get(ctx context.Context, kind string, id int64) (*domain.Identifier, error) {
	rec, err := scanIdentifier(r.pool.QueryRow(ctx,
		`SELECT `+identifierColumns+` FROM identifiers WHERE kind = $1 AND id = $2`, kind, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &rec, nil
}

// UsedIDs returns the assigned ids already taken by owner.
func (r *IdentifierRepository) UsedIDs(ctx context.Context, kind string, owner int64) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT assigned_id FROM identifiers WHERE kind = $1 AND owner_user_id = $2`, kind, owner)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Create inserts rec and fills its id and creation time.
func (r *IdentifierRepository) Create(ctx context.Context, rec *domain.Identifier) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO identifiers (kind, name, assigned_id, geo, note, target, owner_user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`,
		rec.Kind, rec.Name, rec.AssignedID, rec.Geo, rec.Note, rec.Target, rec.OwnerUserID,
	).Scan(&rec.ID, &rec.CreatedAt)
	return mapErr(err)
}

// Update writes the mutable fields of rec. The assigned id is left alone.
func (r *IdentifierRepository) Update(ctx context.Context, rec *domain.Identifier) error {
	return affected(r.pool.Exec(ctx, `
        UPDATE identifiers SET name = $3, geo = $4, note = $5, target = $6
        WHERE kind = $1 AND id = $2`,
		rec.Kind, rec.ID, rec.Name, rec.Geo, rec.Note, rec.Target))
}

// Delete removes one record.
func (r *IdentifierRepository) Delete(ctx context.Context, kind string, id int64) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM identifiers WHERE kind = $1 AND id = $2`, kind, id))
}
