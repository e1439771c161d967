package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
)

// MinPasswordLength is the shortest password ChangePassword accepts.
const MinPasswordLength = 6

// AuthUseCase implements port.AuthUseCase over a UserRepository.
type AuthUseCase struct {
	users port.UserRepository
	cost  int
}

// NewAuthUseCase creates the usecase with bcrypt's default cost.
func NewAuthUseCase(users port.UserRepository) *AuthUseCase {
	return &AuthUseCase{users: users, cost: bcrypt.DefaultCost}
}

// HashPassword hashes a plain password for storage.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login checks username and password.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (domain.Session, error) {
	if err := required([2]string{"username", username}, [2]string{"password", password}); err != nil {
		return domain.Session{}, err
	}
	user, err := u.users.GetByUsername(ctx, username)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Session{}, port.ErrUnauthenticated
	}
	if err != nil {
		return domain.Session{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, port.ErrUnauthenticated
	}
	return user.Session(), nil
}

// Profile reloads the account behind s so role, ranges and assignments
// reflect the stored state.
func (u *AuthUseCase) Profile(ctx context.Context, s domain.Session) (domain.Session, error) {
	user, err := u.users.GetByID(ctx, s.ID)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Session{}, port.ErrUnauthenticated
	}
	if err != nil {
		return domain.Session{}, err
	}
	return user.Session(), nil
}

// ChangePassword replaces the caller's password after checking the
// current one.
func (u *AuthUseCase) ChangePassword(ctx context.Context, s domain.Session, req port.PasswordChange) error {
	if err := required(
		[2]string{"current_password", req.Current},
		[2]string{"new_password", req.Next},
		[2]string{"confirm_password", req.Confirm},
	); err != nil {
		return err
	}
	if req.Next != req.Confirm {
		return fmt.Errorf("%w: passwords do not match", port.ErrValidation)
	}
	if len(req.Next) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", port.ErrValidation, MinPasswordLength)
	}
	user, err := u.users.GetByID(ctx, s.ID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Current)) != nil {
		return fmt.Errorf("%w: current password is incorrect", port.ErrValidation)
	}
	hash, err := HashPassword(req.Next, u.cost)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, s.ID, hash)
}

// Directory lists the sub-admins visible to s.
func (u *AuthUseCase) Directory(ctx context.Context, s domain.Session) ([]domain.DirectoryEntry, error) {
	if !s.Role.IsManager() {
		return []domain.DirectoryEntry{{ID: s.ID, Username: s.Username, Role: s.Role}}, nil
	}
	if len(s.AssignedSubadmins) == 0 {
		return []domain.DirectoryEntry{}, nil
	}
	return u.users.ListByIDs(ctx, s.AssignedSubadmins)
}
