package panel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpanel/internal/core/domain"
	"adpanel/internal/core/grid"
	"adpanel/internal/panel"
	"adpanel/internal/panel/mocks"
)

func TestIDPickerFollowsPanelRefresh(t *testing.T) {
	s := domain.Session{
		ID:     7,
		Role:   domain.RoleAdvertiser,
		Ranges: []domain.IDRange{{Start: "100", End: "104"}, {Start: "x", End: "9"}, {Start: "9", End: "3"}},
	}
	picker := panel.NewIDPicker(s, 0)
	assert.Equal(t, []string{"100", "101", "102", "103", "104"}, picker.Options())

	src := mocks.NewMockSource(t)
	src.EXPECT().List(mock.Anything).Return([]grid.Record{
		{"id": 1, "owner_user_id": 7, "assigned_id": "101"},
		{"id": 2, "owner_user_id": 7, "assigned_id": "104"},
		{"id": 3, "owner_user_id": 8, "assigned_id": "100"},
	}, nil).Once()
	p := panel.New(src, panel.Config{Session: s, AfterRefresh: picker.Reset})
	require.NoError(t, p.Refresh(context.Background()))

	assert.Equal(t, []string{"100", "102", "103"}, picker.Options())

	assert.True(t, picker.Created("102"))
	assert.False(t, picker.Created("102"))
	assert.Equal(t, []string{"100", "103"}, picker.Options())

	assert.Equal(t, []string{"104"}, picker.ForEdit(p.Rows()[1]))
}

func TestIDPickerForAssignedOwner(t *testing.T) {
	manager := domain.Session{
		ID:                2,
		Role:              domain.RoleAdvertiserManager,
		AssignedSubadmins: []int64{8},
		Ranges:            []domain.IDRange{{Start: "1", End: "3"}},
	}
	picker := panel.NewIDPicker(manager, 8)
	picker.Reset([]grid.Record{
		{"owner_user_id": 8, "assigned_id": "2"},
		{"owner_user_id": 2, "assigned_id": "1"},
	})
	assert.Equal(t, []string{"1", "3"}, picker.Options())
}
