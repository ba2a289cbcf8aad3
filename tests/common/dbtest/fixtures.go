//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"checkout-engine/internal/domain/catalog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedVariant inserts a catalog row; the service itself never writes variants.
func SeedVariant(t *testing.T, db DBLike, v *catalog.Variant) {
	t.Helper()

	attrs, err := json.Marshal(v.Attributes())
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO variants (id, product_id, sku, attributes, active) VALUES ($1, $2, $3, $4, $5)",
		v.ID(), v.ProductID(), v.SKU(), attrs, v.Active())
	require.NoError(t, err)
}

func CountAuditEntries(t *testing.T, db DBLike, entityType, entityID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM audit_entries WHERE entity_type = $1 AND entity_id = $2",
		entityType, entityID).Scan(&n)
	require.NoError(t, err)
	return n
}

// AuditSeqsAfter lists committed sequence numbers of one entity type above after.
func AuditSeqsAfter(t *testing.T, db DBLike, entityType string, after int64) []int64 {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT seq FROM audit_entries WHERE entity_type = $1 AND seq > $2 ORDER BY seq",
		entityType, after)
	require.NoError(t, err)
	defer rows.Close()

	var seqs []int64
	for rows.Next() {
		var seq int64
		require.NoError(t, rows.Scan(&seq))
		seqs = append(seqs, seq)
	}
	require.NoError(t, rows.Err())
	return seqs
}

// ExpireHold backdates a hold so the next sweep at the server clock claims it.
func ExpireHold(t *testing.T, db DBLike, reservationID string) {
	t.Helper()

	tag, err := db.Exec(context.Background(),
		"UPDATE reservations SET expires_at = now() - interval '1 second' WHERE id = $1 AND status = 'held'",
		reservationID)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rule_store_version (id, version) VALUES (1, 0)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
