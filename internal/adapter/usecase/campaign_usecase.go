package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase. Every write is checked
// against the edit policy using the row's stored creation time.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	policy grid.EditPolicy
	now    func() time.Time
}

// NewCampaignUseCase creates the usecase with the given edit policy.
func NewCampaignUseCase(repo port.CampaignRepository, policy grid.EditPolicy) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, policy: policy, now: time.Now}
}

// List returns the rows visible to s created in [from, to).
func (u *CampaignUseCase) List(ctx context.Context, s domain.Session, kind string, from, to time.Time) ([]domain.CampaignRow, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, fmt.Errorf("%w: from must be before to", port.ErrValidation)
	}
	return u.repo.List(ctx, port.CampaignFilter{
		Kind:   kind,
		Owners: s.OwnerScope(),
		From:   from,
		To:     to,
	})
}

// Create stores row as a new row owned by s.
func (u *CampaignUseCase) Create(ctx context.Context, s domain.Session, kind string, row domain.CampaignRow) (*domain.CampaignRow, error) {
	if err := u.requireWriter(s, kind); err != nil {
		return nil, err
	}
	if err := required([2]string{"campaign_name", row.CampaignName}); err != nil {
		return nil, err
	}
	row.ID = 0
	row.Kind = kind
	row.OwnerUserID = s.ID
	row.CampaignName = strings.TrimSpace(row.CampaignName)
	row.CreatedAt = u.now().UTC()
	if err := u.repo.Create(ctx, &row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Update writes next over the stored row. Each changed field must be
// editable at the current age of the row.
func (u *CampaignUseCase) Update(ctx context.Context, s domain.Session, kind string, id int64, next domain.CampaignRow) (*domain.CampaignRow, error) {
	if err := required([2]string{"campaign_name", next.CampaignName}); err != nil {
		return nil, err
	}
	current, err := u.owned(ctx, s, kind, id)
	if err != nil {
		return nil, err
	}
	now := u.now()
	for _, field := range current.ChangedFields(next) {
		if !u.policy.CanEdit(field, current.CreatedAt, now) {
			return nil, fmt.Errorf("%w: %s", port.ErrEditWindowClosed, field)
		}
	}
	next.ID = current.ID
	next.Kind = current.Kind
	next.OwnerUserID = current.OwnerUserID
	next.CreatedAt = current.CreatedAt
	if err = u.repo.Update(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes a row while it is inside the delete window.
func (u *CampaignUseCase) Delete(ctx context.Context, s domain.Session, kind string, id int64) error {
	current, err := u.owned(ctx, s, kind, id)
	if err != nil {
		return err
	}
	if !u.policy.CanDelete(current.CreatedAt, u.now()) {
		return port.ErrDeleteWindowClosed
	}
	return u.repo.Delete(ctx, kind, id)
}

// Copy duplicates a visible row as a fresh row owned by s.
func (u *CampaignUseCase) Copy(ctx context.Context, s domain.Session, kind string, id int64) (*domain.CampaignRow, error) {
	if err := u.requireWriter(s, kind); err != nil {
		return nil, err
	}
	src, err := u.repo.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !s.CanRead(src.OwnerUserID) {
		return nil, port.ErrNotFound
	}
	dup := *src
	dup.ID = 0
	dup.OwnerUserID = s.ID
	dup.CreatedAt = u.now().UTC()
	if err = u.repo.Create(ctx, &dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

// requireWriter allows the side's non-manager role only; managers read
// campaign data but never write it.
func (u *CampaignUseCase) requireWriter(s domain.Session, kind string) error {
	if err := requireSide(s, kind); err != nil {
		return err
	}
	if s.Role.IsManager() {
		return port.ErrForbidden
	}
	return nil
}

func (u *CampaignUseCase) owned(ctx context.Context, s domain.Session, kind string, id int64) (*domain.CampaignRow, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	row, err := u.repo.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !s.CanWrite(row.OwnerUserID) {
		return nil, port.ErrForbidden
	}
	return row, nil
}
