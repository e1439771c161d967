package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, password_hash, role, assigned_subadmins, ranges, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AssignedSubadmins, &u.Ranges, &u.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &u, nil
}

// GetByUsername returns the account with the given username.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// GetByID returns the account with the given id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

// UpdatePassword replaces the stored password hash.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return affected(r.pool.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash))
}

// ListByIDs returns directory entries for ids, ordered by username.
func (r *UserRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.DirectoryEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, username, role FROM users WHERE id = ANY($1) ORDER BY username`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DirectoryEntry, error) {
		var e domain.DirectoryEntry
		err := row.Scan(&e.ID, &e.Username, &e.Role)
		return e, err
	})
}
