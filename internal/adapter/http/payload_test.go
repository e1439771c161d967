package httpadapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntDecoding(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: `120`, want: 120},
		{in: `"120"`, want: 120},
		{in: `"120.0"`, want: 120},
		{in: `-3e2`, want: -300},
		{in: `""`, want: 0},
		{in: `null`, want: 0},
		{in: `"9223372036854775807"`, want: 9223372036854775807},
		{in: `1.5`, wantErr: true},
		{in: `"1e30"`, wantErr: true},
		{in: `"99999999999999999999"`, wantErr: true},
		{in: `"-1e19"`, wantErr: true},
		{in: `"NaN"`, wantErr: true},
		{in: `"Inf"`, wantErr: true},
		{in: `"abc"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n flexInt
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int64(n))
		})
	}
}
