package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, kind, owner_user_id, campaign_name, geo, city, os, payable_event,
    mmp_tracker, pid, pub_id, adv_payout, pub_payout, shared_date, paused_date,
    total_count, deduction, approved_count, created_at`

func scanCampaign(row pgx.Row) (domain.CampaignRow, error) {
	var c domain.CampaignRow
	err := row.Scan(
		&c.ID, &c.Kind, &c.OwnerUserID, &c.CampaignName, &c.Geo, &c.City, &c.OS,
		&c.PayableEvent, &c.MMPTracker, &c.PID, &c.PubID, &c.AdvPayout, &c.PubPayout,
		&c.SharedDate, &c.PausedDate, &c.TotalCount, &c.Deduction, &c.ApprovedCount,
		&c.CreatedAt,
	)
	return c, err
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// List returns the rows matching f, newest first.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]domain.CampaignRow, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+`
        FROM campaign_rows
        WHERE kind = $1
          AND owner_user_id = ANY($2)
          AND ($3::timestamptz IS NULL OR created_at >= $3)
          AND ($4::timestamptz IS NULL OR created_at < $4)
        ORDER BY created_at DESC, id DESC`,
		f.Kind, f.Owners, nullTime(f.From), nullTime(f.To))
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRow, error) {
		return scanCampaign(row)
	})
}

// Get returns one row.
func (r *CampaignRepository) Get(ctx context.Context, kind string, id int64) (*domain.CampaignRow, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaign_rows WHERE kind = $1 AND id = $2`, kind, id))
	if err != nil {
		return nil, mapErr(err)
	}
	return &c, nil
}

// Create inserts row and fills its id. A zero CreatedAt defaults to now().
func (r *CampaignRepository) Create(ctx context.Context, row *domain.CampaignRow) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO campaign_rows (kind, owner_user_id, campaign_name, geo, city, os,
            payable_event, mmp_tracker, pid, pub_id, adv_payout, pub_payout, shared_date,
            paused_date, total_count, deduction, approved_count, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
            COALESCE($18::timestamptz, now()))
        RETURNING id, created_at`,
		row.Kind, row.OwnerUserID, row.CampaignName, row.Geo, row.City, row.OS,
		row.PayableEvent, row.MMPTracker, row.PID, row.PubID, row.AdvPayout, row.PubPayout,
		row.SharedDate, row.PausedDate, row.TotalCount, row.Deduction, row.ApprovedCount,
		nullTime(row.CreatedAt),
	).Scan(&row.ID, &row.CreatedAt)
	return mapErr(err)
}

// Update writes every editable field of row.
func (r *CampaignRepository) Update(ctx context.Context, row *domain.CampaignRow) error {
	return affected(r.pool.Exec(ctx, `
        UPDATE campaign_rows SET campaign_name = $3, geo = $4, city = $5, os = $6,
            payable_event = $7, mmp_tracker = $8, pid = $9, pub_id = $10, adv_payout = $11,
            pub_payout = $12, shared_date = $13, paused_date = $14, total_count = $15,
            deduction = $16, approved_count = $17
        WHERE kind = $1 AND id = $2`,
		row.Kind, row.ID, row.CampaignName, row.Geo, row.City, row.OS,
		row.PayableEvent, row.MMPTracker, row.PID, row.PubID, row.AdvPayout,
		row.PubPayout, row.SharedDate, row.PausedDate, row.TotalCount,
		row.Deduction, row.ApprovedCount))
}

// Delete removes one row.
func (r *CampaignRepository) Delete(ctx context.Context, kind string, id int64) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM campaign_rows WHERE kind = $1 AND id = $2`, kind, id))
}
