package usecase

import (
	"context"
	"fmt"
	"strings"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/idpool"
	"adpanel/internal/core/port"
)

// IdentifierUseCase implements port.IdentifierUseCase. New records must take
// their assigned id from the available pool of the owner.
type IdentifierUseCase struct {
	repo port.IdentifierRepository
}

// NewIdentifierUseCase creates the usecase.
func NewIdentifierUseCase(repo port.IdentifierRepository) *IdentifierUseCase {
	return &IdentifierUseCase{repo: repo}
}

// List returns the records visible to s.
func (u *IdentifierUseCase) List(ctx context.Context, s domain.Session, kind string) ([]domain.Identifier, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, kind, s.OwnerScope())
}

// Available returns the pool of ids owner may still be assigned.
func (u *IdentifierUseCase) Available(ctx context.Context, s domain.Session, kind string, owner int64) ([]string, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	owner, err := resolveOwner(s, owner)
	if err != nil {
		return nil, err
	}
	pool, err := u.pool(ctx, s, kind, owner)
	if err != nil {
		return nil, err
	}
	return pool.IDs(), nil
}

// Create stores a new record after checking its id against the pool.
func (u *IdentifierUseCase) Create(ctx context.Context, s domain.Session, kind string, in port.IdentifierInput) (*domain.Identifier, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	if err := required([2]string{"name", in.Name}, [2]string{"assigned_id", in.AssignedID}); err != nil {
		return nil, err
	}
	owner, err := resolveOwner(s, in.OwnerUserID)
	if err != nil {
		return nil, err
	}
	pool, err := u.pool(ctx, s, kind, owner)
	if err != nil {
		return nil, err
	}
	assigned := strings.TrimSpace(in.AssignedID)
	if !pool.Contains(assigned) {
		return nil, fmt.Errorf("%w: assigned id %q is not available", port.ErrValidation, assigned)
	}
	rec := &domain.Identifier{
		Kind:        kind,
		Name:        strings.TrimSpace(in.Name),
		AssignedID:  assigned,
		Geo:         in.Geo,
		Note:        in.Note,
		Target:      in.Target,
		OwnerUserID: owner,
	}
	if err = u.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Update changes the descriptive fields of a record owned by s. The assigned
// id is immutable.
func (u *IdentifierUseCase) Update(ctx context.Context, s domain.Session, kind string, id int64, in port.IdentifierInput) (*domain.Identifier, error) {
	if err := requireSide(s, kind); err != nil {
		return nil, err
	}
	if err := required([2]string{"name", in.Name}); err != nil {
		return nil, err
	}
	rec, err := u.owned(ctx, s, kind, id)
	if err != nil {
		return nil, err
	}
	if in.AssignedID != "" && !idpool.ForEdit(rec.AssignedID).Contains(strings.TrimSpace(in.AssignedID)) {
		return nil, fmt.Errorf("%w: assigned id cannot change", port.ErrValidation)
	}
	rec.Name = strings.TrimSpace(in.Name)
	rec.Geo = in.Geo
	rec.Note = in.Note
	rec.Target = in.Target
	if err = u.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a record owned by s.
func (u *IdentifierUseCase) Delete(ctx context.Context, s domain.Session, kind string, id int64) error {
	if err := requireSide(s, kind); err != nil {
		return err
	}
	if _, err := u.owned(ctx, s, kind, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, kind, id)
}

func (u *IdentifierUseCase) pool(ctx context.Context, s domain.Session, kind string, owner int64) (*idpool.Pool, error) {
	used, err := u.repo.UsedIDs(ctx, kind, owner)
	if err != nil {
		return nil, err
	}
	return idpool.NewPool(s.Ranges, used), nil
}

func (u *IdentifierUseCase) owned(ctx context.Context, s domain.Session, kind string, id int64) (*domain.Identifier, error) {
	rec, err := u.repo.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !s.CanWrite(rec.OwnerUserID) {
		return nil, port.ErrForbidden
	}
	return rec, nil
}

// resolveOwner maps zero to the caller and lets managers act for the
// sub-admins assigned to them.
func resolveOwner(s domain.Session, owner int64) (int64, error) {
	if owner == 0 {
		return s.ID, nil
	}
	if !s.CanRead(owner) {
		return 0, port.ErrForbidden
	}
	return owner, nil
}
