package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
)

// LinkRequestRepository implements port.LinkRequestRepository using pgxpool.
type LinkRequestRepository struct {
	pool *pgxpool.Pool
}

// NewLinkRequestRepository returns a new repository instance.
func NewLinkRequestRepository(pool *pgxpool.Pool) *LinkRequestRepository {
	return &LinkRequestRepository{pool: pool}
}

const linkRequestColumns = `id, advertiser_name, publisher_name, publisher_user_id, campaign_name,
    payout, os, pid, pub_id, geo, status, created_at, updated_at`

func scanLinkRequest(row pgx.Row) (domain.LinkRequest, error) {
	var l domain.LinkRequest
	err := row.Scan(&l.ID, &l.AdvertiserName, &l.PublisherName, &l.PublisherUserID,
		&l.CampaignName, &l.Payout, &l.OS, &l.PID, &l.PubID, &l.Geo, &l.Status,
		&l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *LinkRequestRepository) list(ctx context.Context, where string, arg any) ([]domain.LinkRequest, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+linkRequestColumns+` FROM link_requests WHERE `+where+`
        ORDER BY created_at DESC`, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LinkRequest, error) {
		return scanLinkRequest(row)
	})
}

// Create inserts req. ID, CreatedAt and UpdatedAt must be set by the caller.
func (r *LinkRequestRepository) Create(ctx context.Context, req *domain.LinkRequest) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO link_requests (`+linkRequestColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		req.ID, req.AdvertiserName, req.PublisherName, req.PublisherUserID, req.CampaignName,
		req.Payout, req.OS, req.PID, req.PubID, req.Geo, req.Status, req.CreatedAt, req.UpdatedAt)
	return mapErr(err)
}

// Get returns one request.
func (r *LinkRequestRepository) Get(ctx context.Context, id uuid.UUID) (*domain.LinkRequest, error) {
	l, err := scanLinkRequest(r.pool.QueryRow(ctx,
		`SELECT `+linkRequestColumns+` FROM link_requests WHERE id = $1`, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &l, nil
}

// ListByPublisher returns the requests a publisher created.
func (r *LinkRequestRepository) ListByPublisher(ctx context.Context, publisherUserID int64) ([]domain.LinkRequest, error) {
	return r.list(ctx, `publisher_user_id = $1`, publisherUserID)
}

// ListByAdvertisers returns the requests addressed to any of the names.
func (r *LinkRequestRepository) ListByAdvertisers(ctx context.Context, advertiserNames []string) ([]domain.LinkRequest, error) {
	return r.list(ctx, `advertiser_name = ANY($1)`, advertiserNames)
}

// UpdateStatus moves the request to status.
func (r *LinkRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LinkStatus, at time.Time) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE link_requests SET status = $2, updated_at = $3 WHERE id = $1`, id, status, at))
}
