//go:build unit

package money

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New(-1)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	m, err := New(1999)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), m.Minor())
	assert.Equal(t, "19.99", m.String())
}

func TestMoney_Percent(t *testing.T) {
	tests := []struct {
		name  string
		minor int64
		pct   string
		want  int64
	}{
		{"ten percent of a hundred dollars", 10000, "10", 1000},
		{"rounds half up", 1005, "10", 101},
		{"rounds down below half", 1004, "10", 100},
		{"fractional percent", 999, "12.5", 125},
		{"zero percent", 10000, "0", 0},
		{"full amount", 4321, "100", 4321},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromMinor(tt.minor).Percent(decimal.RequireFromString(tt.pct))
			assert.Equal(t, tt.want, got.Minor())
		})
	}
}

func TestMoney_SubFloorsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), FromMinor(500).Sub(FromMinor(800)).Minor())
	assert.Equal(t, int64(300), FromMinor(800).Sub(FromMinor(500)).Minor())
}

func TestMoney_Min(t *testing.T) {
	assert.Equal(t, int64(100), FromMinor(500).Min(FromMinor(100)).Minor())
	assert.Equal(t, int64(100), FromMinor(100).Min(FromMinor(500)).Minor())
}

func TestMoney_Mul(t *testing.T) {
	tests := []struct {
		name    string
		minor   int64
		qty     int
		want    int64
		wantErr error
	}{
		{name: "simple", minor: 900, qty: 3, want: 2700},
		{name: "zero quantity", minor: 900, qty: 0, want: 0},
		{name: "largest exact product", minor: math.MaxInt64 / 2, qty: 2, want: math.MaxInt64 - 1},
		{name: "overflow", minor: 5_000_000_000_000_000_000, qty: 2, wantErr: ErrAmountOverflow},
		{name: "overflow by one", minor: math.MaxInt64/2 + 1, qty: 2, wantErr: ErrAmountOverflow},
		{name: "negative quantity", minor: 100, qty: -1, wantErr: ErrNegativeAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromMinor(tt.minor).Mul(tt.qty)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minor())
		})
	}
}
