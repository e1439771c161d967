package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpanel/internal/core/domain"
)

// UserRepository stores dashboard accounts.
type UserRepository interface {
	// GetByUsername returns ErrNotFound for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// ListByIDs returns the directory entries of the given ids, ordered by
	// username.
	ListByIDs(ctx context.Context, ids []int64) ([]domain.DirectoryEntry, error)
}

// IdentifierRepository stores advertiser-ID and publisher-ID records.
// Create returns ErrDuplicate when (kind, owner, assigned_id) exists.
type IdentifierRepository interface {
	List(ctx context.Context, kind string, owners []int64) ([]domain.Identifier, error)
	Get(ctx context.Context, kind string, id int64) (*domain.Identifier, error)
	UsedIDs(ctx context.Context, kind string, owner int64) ([]string, error)
	Create(ctx context.Context, rec *domain.Identifier) error
	Update(ctx context.Context, rec *domain.Identifier) error
	Delete(ctx context.Context, kind string, id int64) error
}

// CampaignFilter selects campaign rows. A zero From or To leaves that side
// of the created_at interval open.
type CampaignFilter struct {
	Kind   string
	Owners []int64
	From   time.Time
	To     time.Time
}

// CampaignRepository stores advertiser and publisher campaign data.
type CampaignRepository interface {
	List(ctx context.Context, f CampaignFilter) ([]domain.CampaignRow, error)
	Get(ctx context.Context, kind string, id int64) (*domain.CampaignRow, error)
	Create(ctx context.Context, row *domain.CampaignRow) error
	Update(ctx context.Context, row *domain.CampaignRow) error
	Delete(ctx context.Context, kind string, id int64) error
}

// BlacklistRepository stores blocked PIDs.
type BlacklistRepository interface {
	List(ctx context.Context) ([]domain.BlacklistEntry, error)
	Add(ctx context.Context, entry *domain.BlacklistEntry) error
	Remove(ctx context.Context, pid string) error
	Contains(ctx context.Context, pid string) (bool, error)
}

// LinkRequestRepository stores campaign-link requests.
type LinkRequestRepository interface {
	Create(ctx context.Context, req *domain.LinkRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.LinkRequest, error)
	ListByPublisher(ctx context.Context, publisherUserID int64) ([]domain.LinkRequest, error)
	ListByAdvertisers(ctx context.Context, advertiserNames []string) ([]domain.LinkRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.LinkStatus, at time.Time) error
}

// LookupRepository stores the flat lookup lists. Add and Rename return
// ErrDuplicate when the value already exists in the list.
type LookupRepository interface {
	List(ctx context.Context, list string) ([]domain.LookupEntry, error)
	Add(ctx context.Context, entry *domain.LookupEntry) error
	Rename(ctx context.Context, list string, id int64, value string) error
}

// EventPublisher delivers change signals to connected dashboards.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
