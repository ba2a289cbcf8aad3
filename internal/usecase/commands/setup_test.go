//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/infra/memstore"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/metrics"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"
	"checkout-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	store    *memstore.Store
	clock    *clock.MockClock
	ledger   commands.LedgerCommands
	rules    commands.RuleCommands
	checkout commands.CheckoutCommands
	pricing  queries.PricingQueries
	variant  *catalog.Variant
	key      inventory.Key
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := metrics.NewNop()
	clk := clock.NewMockClock(t0)
	store := memstore.New()

	variant := builder.NewVariantBuilder().BuildDomain()
	store.SeedVariant(variant)

	ledger := commands.NewLedgerCommands(store, clk, cfg, m, logger)
	pq := queries.NewPricingQueries(store, store, queries.NopQuoteCache{}, clk, cfg, m, logger)
	return &harness{
		store:    store,
		clock:    clk,
		ledger:   ledger,
		rules:    commands.NewRuleCommands(store, clk, logger),
		checkout: commands.NewCheckoutCommands(store, ledger, pq, clk, logger),
		pricing:  pq,
		variant:  variant,
		key:      inventory.Key{VariantID: variant.ID(), LocationID: uuid.New()},
	}
}

func (h *harness) stock(t *testing.T, qty int) {
	t.Helper()
	_, err := h.ledger.AdjustStock(context.Background(), commands.AdjustStockInput{Key: h.key, Delta: qty, Note: "seed"})
	require.NoError(t, err)
}

func (h *harness) record(t *testing.T) *queries.RecordView {
	t.Helper()
	v, err := h.store.FindRecord(context.Background(), h.key)
	require.NoError(t, err)
	return v
}

// priceBook stores a book pricing the harness variant at unitAmount.
func (h *harness) priceBook(t *testing.T, unitAmount int64) *builder.PriceBookBuilder {
	t.Helper()
	b := builder.NewPriceBookBuilder(h.variant.ID(), unitAmount)
	_, err := h.rules.UpsertRule(context.Background(), b.Document())
	require.NoError(t, err)
	return b
}
