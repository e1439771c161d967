package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/port"
	"adpanel/internal/core/port/mocks"
)

func TestLookupAdd(t *testing.T) {
	repo := mocks.NewMockLookupRepository(t)
	svc := NewLookupUseCase(repo)

	repo.EXPECT().Add(mock.Anything, &domain.LookupEntry{List: "geos", Value: "IN"}).
		Run(func(_ context.Context, e *domain.LookupEntry) { e.ID = 1 }).
		Return(nil).Once()
	repo.EXPECT().Add(mock.Anything, &domain.LookupEntry{List: "geos", Value: "US"}).
		Return(port.ErrDuplicate).Once()

	entry, err := svc.Add(context.Background(), publisher, "geos", " IN ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.ID)

	_, err = svc.Add(context.Background(), publisher, "geos", "US")
	assert.ErrorIs(t, err, port.ErrDuplicate)

	_, err = svc.Add(context.Background(), publisher, "colours", "red")
	assert.ErrorIs(t, err, port.ErrValidation)

	_, err = svc.Add(context.Background(), publisher, "geos", "  ")
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestLookupRename(t *testing.T) {
	repo := mocks.NewMockLookupRepository(t)
	svc := NewLookupUseCase(repo)
	repo.EXPECT().Rename(mock.Anything, "pids", int64(3), "pid_9").Return(nil).Once()

	entry, err := svc.Rename(context.Background(), publisher, "pids", 3, "pid_9")
	require.NoError(t, err)
	assert.Equal(t, domain.LookupEntry{ID: 3, List: "pids", Value: "pid_9"}, *entry)
}

func TestBlacklistAdvertiserSideOnly(t *testing.T) {
	repo := mocks.NewMockBlacklistRepository(t)
	svc := NewBlacklistUseCase(repo)
	repo.EXPECT().Add(mock.Anything, &domain.BlacklistEntry{PID: "pid_1"}).Return(nil).Once()
	repo.EXPECT().Remove(mock.Anything, "pid_1").Return(nil).Once()

	_, err := svc.Add(context.Background(), publisher, "pid_1")
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = svc.Add(context.Background(), advertiser, "pid_1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Remove(context.Background(), publisher, "pid_1"), port.ErrForbidden)
	assert.NoError(t, svc.Remove(context.Background(), advertiser, "pid_1"))
}
