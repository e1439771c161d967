package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/core/port"
	"adpanel/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newCampaignUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewCampaignUseCase(repo, grid.DefaultPolicy())
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func campaignRow(age time.Duration) *domain.CampaignRow {
	return &domain.CampaignRow{
		ID:           42,
		Kind:         "advertiser",
		OwnerUserID:  10,
		CampaignName: "Spring",
		Geo:          "US",
		TotalCount:   100,
		CreatedAt:    fixedNow.Add(-age),
	}
}

func TestCampaignListScopesOwners(t *testing.T) {
	svc, repo := newCampaignUseCase(t)
	mgr := domain.Session{ID: 1, Role: domain.RoleAdvertiserManager, AssignedSubadmins: []int64{10, 11}}
	month := grid.CurrentMonth(fixedNow)

	repo.EXPECT().List(mock.Anything, port.CampaignFilter{
		Kind:   "advertiser",
		Owners: []int64{1, 10, 11},
		From:   month.From,
		To:     month.To,
	}).Return([]domain.CampaignRow{*campaignRow(time.Hour)}, nil).Once()

	rows, err := svc.List(context.Background(), mgr, "advertiser", month.From, month.To)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.List(context.Background(), mgr, "advertiser", month.To, month.From)
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestCampaignUpdateHonoursEditWindow(t *testing.T) {
	tests := []struct {
		name    string
		age     time.Duration
		change  func(*domain.CampaignRow)
		wantErr error
	}{
		{
			name:   "fresh row normal field",
			age:    24 * time.Hour,
			change: func(r *domain.CampaignRow) { r.Geo = "CA" },
		},
		{
			name:    "fresh row late field",
			age:     24 * time.Hour,
			change:  func(r *domain.CampaignRow) { r.TotalCount = 120 },
			wantErr: port.ErrEditWindowClosed,
		},
		{
			name:   "aged row late field",
			age:    96 * time.Hour,
			change: func(r *domain.CampaignRow) { r.ApprovedCount = 80 },
		},
		{
			name:    "aged row normal field",
			age:     96 * time.Hour,
			change:  func(r *domain.CampaignRow) { r.CampaignName = "Summer" },
			wantErr: port.ErrEditWindowClosed,
		},
		{
			name: "aged row paused date",
			age:  96 * time.Hour,
			change: func(r *domain.CampaignRow) {
				d := fixedNow
				r.PausedDate = &d
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCampaignUseCase(t)
			stored := campaignRow(tt.age)
			repo.EXPECT().Get(mock.Anything, "advertiser", int64(42)).Return(stored, nil).Once()
			if tt.wantErr == nil {
				repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.CampaignRow")).Return(nil).Once()
			}

			next := *stored
			next.ID = 0
			next.CreatedAt = time.Time{}
			tt.change(&next)

			got, err := svc.Update(context.Background(), advertiser, "advertiser", 42, next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(42), got.ID)
			assert.Equal(t, stored.CreatedAt, got.CreatedAt)
		})
	}
}

func TestCampaignUpdateRejectsBlankName(t *testing.T) {
	svc, _ := newCampaignUseCase(t)

	// A replacement without a name would blank every field still in the
	// normal window; nothing is read or written.
	for _, name := range []string{"", "   "} {
		next := *campaignRow(time.Hour)
		next.CampaignName = name
		_, err := svc.Update(context.Background(), advertiser, "advertiser", 42, next)
		assert.ErrorIs(t, err, port.ErrValidation)
	}
	_, err := svc.Update(context.Background(), advertiser, "advertiser", 42, domain.CampaignRow{})
	assert.ErrorIs(t, err, port.ErrValidation)
}

func TestCampaignDeleteWindow(t *testing.T) {
	tests := []struct {
		name    string
		age     time.Duration
		wantErr error
	}{
		{"just inside", 23*time.Hour + 59*time.Minute, nil},
		{"just outside", 24*time.Hour + time.Minute, port.ErrDeleteWindowClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newCampaignUseCase(t)
			repo.EXPECT().Get(mock.Anything, "advertiser", int64(42)).Return(campaignRow(tt.age), nil).Once()
			if tt.wantErr == nil {
				repo.EXPECT().Delete(mock.Anything, "advertiser", int64(42)).Return(nil).Once()
			}
			err := svc.Delete(context.Background(), advertiser, "advertiser", 42)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCampaignCopy(t *testing.T) {
	svc, repo := newCampaignUseCase(t)
	src := campaignRow(200 * time.Hour)

	repo.EXPECT().Get(mock.Anything, "advertiser", int64(42)).Return(src, nil).Once()
	repo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.CampaignRow")).
		Run(func(_ context.Context, row *domain.CampaignRow) { row.ID = 43 }).
		Return(nil).Once()

	dup, err := svc.Copy(context.Background(), advertiser, "advertiser", 42)
	require.NoError(t, err)
	assert.Equal(t, int64(43), dup.ID)
	assert.Equal(t, advertiser.ID, dup.OwnerUserID)
	assert.Equal(t, fixedNow, dup.CreatedAt)
	assert.Equal(t, src.Record(), dup.Record())
}

func TestCampaignManagersCannotWrite(t *testing.T) {
	svc, _ := newCampaignUseCase(t)
	mgr := domain.Session{ID: 1, Role: domain.RoleAdvertiserManager, AssignedSubadmins: []int64{10}}

	_, err := svc.Create(context.Background(), mgr, "advertiser", domain.CampaignRow{CampaignName: "x"})
	assert.ErrorIs(t, err, port.ErrForbidden)

	_, err = svc.Copy(context.Background(), mgr, "advertiser", 42)
	assert.ErrorIs(t, err, port.ErrForbidden)
}
