package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// LinkRequestUseCase implements port.LinkRequestUseCase. Publishers create
// and read requests; advertisers read and move their status. Every change
// is announced through the event publisher.
type LinkRequestUseCase struct {
	repo      port.LinkRequestRepository
	blacklist port.BlacklistRepository
	users     port.UserRepository
	events    port.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewLinkRequestUseCase creates the usecase.
func NewLinkRequestUseCase(
	repo port.LinkRequestRepository,
	blacklist port.BlacklistRepository,
	users port.UserRepository,
	events port.EventPublisher,
	logger *slog.Logger,
) *LinkRequestUseCase {
	return &LinkRequestUseCase{
		repo:      repo,
		blacklist: blacklist,
		users:     users,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}
}

// Create files a new request in the waiting state.
func (u *LinkRequestUseCase) Create(ctx context.Context, s domain.Session, in port.LinkRequestInput) (*domain.LinkRequest, error) {
	if s.Role.Side() != domain.SidePublisher || s.Role.IsManager() {
		return nil, port.ErrForbidden
	}
	if err := required(
		[2]string{"advertiser_name", in.AdvertiserName},
		[2]string{"campaign_name", in.CampaignName},
		[2]string{"pid", in.PID},
	); err != nil {
		return nil, err
	}
	pid := strings.TrimSpace(in.PID)
	blocked, err := u.blacklist.Contains(ctx, pid)
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, fmt.Errorf("%w: %s", port.ErrBlacklisted, pid)
	}
	now := u.now().UTC()
	req := &domain.LinkRequest{
		ID:              uuid.New(),
		AdvertiserName:  strings.TrimSpace(in.AdvertiserName),
		PublisherName:   s.Username,
		PublisherUserID: s.ID,
		CampaignName:    strings.TrimSpace(in.CampaignName),
		Payout:          in.Payout,
		OS:              in.OS,
		PID:             pid,
		PubID:           in.PubID,
		Geo:             in.Geo,
		Status:          domain.LinkWaiting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = u.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	u.publish(ctx, domain.EventRequestAdded, req)
	return req, nil
}

// List returns the requests visible to s.
func (u *LinkRequestUseCase) List(ctx context.Context, s domain.Session) ([]domain.LinkRequest, error) {
	switch s.Role.Side() {
	case domain.SidePublisher:
		out := make([]domain.LinkRequest, 0)
		for _, owner := range s.OwnerScope() {
			reqs, err := u.repo.ListByPublisher(ctx, owner)
			if err != nil {
				return nil, err
			}
			out = append(out, reqs...)
		}
		return out, nil
	case domain.SideAdvertiser:
		names := []string{s.Username}
		if s.Role.IsManager() && len(s.AssignedSubadmins) > 0 {
			entries, err := u.users.ListByIDs(ctx, s.AssignedSubadmins)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				names = append(names, e.Username)
			}
		}
		return u.repo.ListByAdvertisers(ctx, names)
	}
	return nil, port.ErrForbidden
}

// SetStatus moves a request addressed to s to status.
func (u *LinkRequestUseCase) SetStatus(ctx context.Context, s domain.Session, id uuid.UUID, status domain.LinkStatus) (*domain.LinkRequest, error) {
	if s.Role != domain.RoleAdvertiser {
		return nil, port.ErrForbidden
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", port.ErrValidation, status)
	}
	req, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.AdvertiserName != s.Username {
		return nil, port.ErrForbidden
	}
	now := u.now().UTC()
	if err = u.repo.UpdateStatus(ctx, id, status, now); err != nil {
		return nil, err
	}
	req.Status = status
	req.UpdatedAt = now
	u.publish(ctx, domain.EventResponseUpdated, req)
	return req, nil
}

// publish announces a change. Delivery is best effort: a failure is logged
// and the write still succeeds.
func (u *LinkRequestUseCase) publish(ctx context.Context, name domain.EventName, req *domain.LinkRequest) {
	event := domain.Event{
		Name: name,
		At:   u.now().UTC(),
		Data: map[string]string{"id": req.ID.String(), "status": string(req.Status)},
	}
	if err := u.events.Publish(ctx, event); err != nil {
		u.logger.Warn("publish event failed",
			slog.String("event", string(name)),
			slog.Any("error", err),
		)
	}
}
