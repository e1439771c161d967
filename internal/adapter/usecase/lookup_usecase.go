package usecase

import (
	"context"
	"fmt"
	"strings"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// LookupUseCase implements port.LookupUseCase.
type LookupUseCase struct {
	repo port.LookupRepository
}

// NewLookupUseCase creates the usecase.
func NewLookupUseCase(repo port.LookupRepository) *LookupUseCase {
	return &LookupUseCase{repo: repo}
}

func checkList(list string) error {
	if !domain.ValidLookupList(list) {
		return fmt.Errorf("%w: unknown list %q", port.ErrValidation, list)
	}
	return nil
}

// List returns the entries of list.
func (u *LookupUseCase) List(ctx context.Context, list string) ([]domain.LookupEntry, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, list)
}

// Add appends value to list.
func (u *LookupUseCase) Add(ctx context.Context, _ domain.Session, list, value string) (*domain.LookupEntry, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}
	if err := required([2]string{"value", value}); err != nil {
		return nil, err
	}
	entry := &domain.LookupEntry{List: list, Value: strings.TrimSpace(value)}
	if err := u.repo.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Rename changes the value of one entry.
func (u *LookupUseCase) Rename(ctx context.Context, _ domain.Session, list string, id int64, value string) (*domain.LookupEntry, error) {
	if err := checkList(list); err != nil {
		return nil, err
	}
	if err := required([2]string{"value", value}); err != nil {
		return nil, err
	}
	entry := &domain.LookupEntry{ID: id, List: list, Value: strings.TrimSpace(value)}
	if err := u.repo.Rename(ctx, list, id, entry.Value); err != nil {
		return nil, err
	}
	return entry, nil
}
