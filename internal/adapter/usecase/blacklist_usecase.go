package usecase

import (
	"context"
	"strings"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// BlacklistUseCase implements port.BlacklistUseCase. Both sides read the
// list; only the advertiser side changes it.
type BlacklistUseCase struct {
	repo port.BlacklistRepository
}

// NewBlacklistUseCase creates the usecase.
func NewBlacklistUseCase(repo port.BlacklistRepository) *BlacklistUseCase {
	return &BlacklistUseCase{repo: repo}
}

// List returns every blocked pid.
func (u *BlacklistUseCase) List(ctx context.Context, _ domain.Session) ([]domain.BlacklistEntry, error) {
	return u.repo.List(ctx)
}

// Add blocks pid.
func (u *BlacklistUseCase) Add(ctx context.Context, s domain.Session, pid string) (*domain.BlacklistEntry, error) {
	if s.Role.Side() != domain.SideAdvertiser {
		return nil, port.ErrForbidden
	}
	if err := required([2]string{"pid", pid}); err != nil {
		return nil, err
	}
	entry := &domain.BlacklistEntry{PID: strings.TrimSpace(pid)}
	if err := u.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove unblocks pid.
func (u *BlacklistUseCase) Remove(ctx context.Context, s domain.Session, pid string) error {
	if s.Role.Side() != domain.SideAdvertiser {
		return port.ErrForbidden
	}
	return u.repo.Remove(ctx, pid)
}
