//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"checkout-engine/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgErrCodeSerializationFailure}, want: true},
		{name: "deadlock wrapped", err: fmt.Errorf("update: %w", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}), want: true},
		{name: "lost version check", err: infra.WrapRepoErr("stale", infra.ErrVersionConflict, infra.KindConflict), want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "not found", err: infra.WrapRepoErr("missing", nil, infra.KindNotFound), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestCalculateBackoff(t *testing.T) {
	base := 10 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		floor := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+1)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(7)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(7))
	}
}
