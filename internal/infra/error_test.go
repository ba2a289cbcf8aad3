//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"checkout-engine/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, nil, infra.KindNotFound},
		{"unique violation", &pgconn.PgError{Code: infra.PgUniqueViolation}, nil, infra.KindDuplicateKey},
		{"check violation", &pgconn.PgError{Code: infra.PgCheckViolation}, nil, infra.KindConstraintViolated},
		{"serialization failure", &pgconn.PgError{Code: infra.PgSerializationFailure}, nil, infra.KindConflict},
		{"deadlock", &pgconn.PgError{Code: infra.PgDeadlockDetected}, nil, infra.KindConflict},
		{"unknown", errors.New("boom"), nil, infra.KindDBFailure},
		{"explicit kind wins", errors.New("boom"), []infra.RepositoryErrorKind{infra.KindConflict}, infra.KindConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
