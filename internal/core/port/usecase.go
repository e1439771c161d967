package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adpanel/internal/core/domain"
)

// AuthUseCase authenticates users and manages their accounts.
type AuthUseCase interface {
	// Login checks the credentials and returns the session profile. Unknown
	// users and wrong passwords both yield ErrUnauthenticated.
	Login(ctx context.Context, username, password string) (domain.Session, error)
	// Profile reloads the stored profile behind s.
	Profile(ctx context.Context, s domain.Session) (domain.Session, error)
	ChangePassword(ctx context.Context, s domain.Session, req PasswordChange) error
	// Directory lists the sub-admins a manager is assigned, or the caller
	// alone for other roles.
	Directory(ctx context.Context, s domain.Session) ([]domain.DirectoryEntry, error)
}

// IdentifierUseCase manages advertiser-ID and publisher-ID records.
type IdentifierUseCase interface {
	List(ctx context.Context, s domain.Session, kind string) ([]domain.Identifier, error)
	// Available returns the ids that may still be assigned to owner (zero
	// means the caller).
	Available(ctx context.Context, s domain.Session, kind string, owner int64) ([]string, error)
	Create(ctx context.Context, s domain.Session, kind string, in IdentifierInput) (*domain.Identifier, error)
	Update(ctx context.Context, s domain.Session, kind string, id int64, in IdentifierInput) (*domain.Identifier, error)
	Delete(ctx context.Context, s domain.Session, kind string, id int64) error
}

// CampaignUseCase manages campaign data rows under the edit policy.
type CampaignUseCase interface {
	List(ctx context.Context, s domain.Session, kind string, from, to time.Time) ([]domain.CampaignRow, error)
	Create(ctx context.Context, s domain.Session, kind string, row domain.CampaignRow) (*domain.CampaignRow, error)
	Update(ctx context.Context, s domain.Session, kind string, id int64, row domain.CampaignRow) (*domain.CampaignRow, error)
	Delete(ctx context.Context, s domain.Session, kind string, id int64) error
	Copy(ctx context.Context, s domain.Session, kind string, id int64) (*domain.CampaignRow, error)
}

// BlacklistUseCase manages blocked PIDs.
type BlacklistUseCase interface {
	List(ctx context.Context, s domain.Session) ([]domain.BlacklistEntry, error)
	Add(ctx context.Context, s domain.Session, pid string) (*domain.BlacklistEntry, error)
	Remove(ctx context.Context, s domain.Session, pid string) error
}

// LinkRequestUseCase manages campaign-link requests.
type LinkRequestUseCase interface {
	Create(ctx context.Context, s domain.Session, in LinkRequestInput) (*domain.LinkRequest, error)
	List(ctx context.Context, s domain.Session) ([]domain.LinkRequest, error)
	SetStatus(ctx context.Context, s domain.Session, id uuid.UUID, status domain.LinkStatus) (*domain.LinkRequest, error)
}

// LookupUseCase manages the flat lookup lists.
type LookupUseCase interface {
	List(ctx context.Context, list string) ([]domain.LookupEntry, error)
	Add(ctx context.Context, s domain.Session, list, value string) (*domain.LookupEntry, error)
	Rename(ctx context.Context, s domain.Session, list string, id int64, value string) (*domain.LookupEntry, error)
}

// PasswordChange is the body of a password change request.
type PasswordChange struct {
	Current string `json:"current_password"`
	Next    string `json:"new_password"`
	Confirm string `json:"confirm_password"`
}

// IdentifierInput carries the writable fields of an identifier record.
// OwnerUserID lets a manager assign the record to a sub-admin; zero means
// the caller.
type IdentifierInput struct {
	Name        string `json:"name"`
	AssignedID  string `json:"assigned_id"`
	Geo         string `json:"geo"`
	Note        string `json:"note"`
	Target      string `json:"target"`
	OwnerUserID int64  `json:"owner_user_id,omitempty"`
}

// LinkRequestInput is what a publisher submits to request a campaign link.
type LinkRequestInput struct {
	AdvertiserName string `json:"advertiser_name"`
	CampaignName   string `json:"campaign_name"`
	Payout         string `json:"payout"`
	OS             string `json:"os"`
	PID            string `json:"pid"`
	PubID          string `json:"pub_id"`
	Geo            string `json:"geo"`
}
