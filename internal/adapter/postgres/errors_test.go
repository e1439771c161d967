package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"adpanel/internal/core/port"
)

func TestMapErr(t *testing.T) {
	other := errors.New("boom")
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, port.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), port.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, port.ErrDuplicate},
		{"other pg error", &pgconn.PgError{Code: "23503"}, nil},
		{"other", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.in)
			if tt.want == nil && tt.in != nil {
				assert.Equal(t, tt.in, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
	assert.NoError(t, mapErr(nil))
}

func TestAffected(t *testing.T) {
	assert.ErrorIs(t, affected(pgconn.NewCommandTag("UPDATE 0"), nil), port.ErrNotFound)
	assert.NoError(t, affected(pgconn.NewCommandTag("DELETE 1"), nil))
	assert.ErrorIs(t, affected(pgconn.CommandTag{}, &pgconn.PgError{Code: "23505"}), port.ErrDuplicate)
}
