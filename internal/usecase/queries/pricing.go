package queries

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/config"
	"checkout-engine/internal/pkg/metrics"
	"checkout-engine/internal/usecase/shared"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type VariantReadStore interface {
	FindVariant(ctx context.Context, id uuid.UUID) (*catalog.Variant, error)
}

type RuleSnapshotReadStore interface {
	CurrentVersion(ctx context.Context) (int64, error)
	// LoadActiveSnapshot reads the version and every rule whose window
	// contains at in a single consistent read.
	LoadActiveSnapshot(ctx context.Context, at time.Time) (pricing.Snapshot, error)
}

// CachedQuote is a resolved quote plus the interval in which every instant
// resolves to the same price.
type CachedQuote struct {
	Quote pricing.Quote `json:"quote"`
	From  time.Time     `json:"from"`
	Until *time.Time    `json:"until,omitempty"`
}

func (c CachedQuote) Covers(at time.Time) bool {
	if !c.From.IsZero() && at.Before(c.From) {
		return false
	}
	return c.Until == nil || at.Before(*c.Until)
}

// QuoteCache stores quotes under keys that embed the rule-store version and
// the variant's pricing inputs, so entries never need explicit invalidation.
type QuoteCache interface {
	Get(ctx context.Context, key string) (*CachedQuote, bool, error)
	Set(ctx context.Context, key string, q *CachedQuote, ttl time.Duration) error
}

type NopQuoteCache struct{}

func (NopQuoteCache) Get(context.Context, string) (*CachedQuote, bool, error) {
	return nil, false, nil
}

func (NopQuoteCache) Set(context.Context, string, *CachedQuote, time.Duration) error {
	return nil
}

type PricingQueries interface {
	PriceAsOf(ctx context.Context, variantID uuid.UUID, at time.Time, quantity int) (*pricing.Quote, error)
	ActiveRulesAt(ctx context.Context, variantID uuid.UUID, at time.Time, quantity int) (*ActiveRulesView, error)
}

type pricingQueriesImpl struct {
	variants VariantReadStore
	rules    RuleSnapshotReadStore
	cache    QuoteCache
	cacheTTL time.Duration
	group    singleflight.Group
	clock    clock.Clock
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewPricingQueries(
	variants VariantReadStore,
	rules RuleSnapshotReadStore,
	cache QuoteCache,
	clk clock.Clock,
	cfg config.Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) PricingQueries {
	if cache == nil {
		cache = NopQuoteCache{}
	}
	return &pricingQueriesImpl{
		variants: variants,
		rules:    rules,
		cache:    cache,
		cacheTTL: cfg.Pricing.QuoteCacheTTL,
		clock:    clk,
		metrics:  m,
		logger:   logger,
	}
}

// quoteKey leaves the instant out; a cached entry carries the interval it
// is valid for instead.
func quoteKey(v *catalog.Variant, quantity int, version int64) string {
	return fmt.Sprintf("quote:%s:%016x:%d:%d", v.ID(), variantFingerprint(v), quantity, version)
}

// variantFingerprint hashes everything about a variant that rule targeting
// can read.
func variantFingerprint(v *catalog.Variant) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(v.ProductID().String())
	if v.Active() {
		_, _ = d.WriteString("|active")
	}
	attrs := v.Attributes()
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		_, _ = d.WriteString("|" + k + "=" + attrs[k])
	}
	return d.Sum64()
}

// PriceAsOf resolves the unit price of a variant at an instant. A zero at
// means now.
func (q *pricingQueriesImpl) PriceAsOf(ctx context.Context, variantID uuid.UUID, at time.Time, quantity int) (*pricing.Quote, error) {
	start := time.Now()
	defer q.metrics.ObserveQuote(start)

	if at.IsZero() {
		at = q.clock.Now()
	}
	at = at.UTC()
	if quantity <= 0 {
		return nil, shared.Classify(pricing.ErrInvalidQuantity)
	}

	variant, err := q.variants.FindVariant(ctx, variantID)
	if err != nil {
		return nil, shared.Classify(shared.NotFoundAs(err, catalog.ErrVariantNotFound))
	}
	version, err := q.rules.CurrentVersion(ctx)
	if err != nil {
		return nil, shared.Classify(err)
	}
	key := quoteKey(variant, quantity, version)

	if cached, ok, cerr := q.cache.Get(ctx, key); cerr != nil {
		q.logger.WarnContext(ctx, "quote cache read failed", slog.Any("error", cerr))
	} else if ok && cached.Covers(at) {
		q.metrics.QuoteCache(true)
		quote := cached.Quote
		quote.At = at
		return &quote, nil
	}
	q.metrics.QuoteCache(false)

	// the shared resolution outlives any single caller's cancellation
	flight := q.group.DoChan(fmt.Sprintf("%s@%d", key, at.UnixNano()), func() (any, error) {
		return q.resolve(context.WithoutCancel(ctx), variant, at, quantity, key, version)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		quote := *res.Val.(*pricing.Quote)
		return &quote, nil
	}
}

func (q *pricingQueriesImpl) resolve(ctx context.Context, variant *catalog.Variant, at time.Time, quantity int, key string, version int64) (*pricing.Quote, error) {
	snapshot, err := q.rules.LoadActiveSnapshot(ctx, at)
	if err != nil {
		return nil, shared.Classify(err)
	}

	quote, err := pricing.PriceAsOf(snapshot, variant, at, quantity)
	if err != nil {
		q.logger.InfoContext(ctx, "price resolution failed",
			slog.String("variant_id", variant.ID().String()),
			slog.Time("at", at),
			slog.Int64("snapshot_version", snapshot.Version),
			slog.Any("error", err))
		return nil, shared.Classify(err)
	}

	// a rule write between the version read and the snapshot read would
	// store this quote under a stale key
	if snapshot.Version == version {
		entry := &CachedQuote{Quote: quote, From: snapshot.StableFrom, Until: snapshot.StableUntil}
		if serr := q.cache.Set(ctx, key, entry, q.cacheTTL); serr != nil {
			q.logger.WarnContext(ctx, "quote cache write failed", slog.Any("error", serr))
		}
	}
	return &quote, nil
}

func (q *pricingQueriesImpl) ActiveRulesAt(ctx context.Context, variantID uuid.UUID, at time.Time, quantity int) (*ActiveRulesView, error) {
	if at.IsZero() {
		at = q.clock.Now()
	}
	at = at.UTC()
	if quantity <= 0 {
		quantity = 1
	}

	variant, err := q.variants.FindVariant(ctx, variantID)
	if err != nil {
		return nil, shared.Classify(shared.NotFoundAs(err, catalog.ErrVariantNotFound))
	}
	snapshot, err := q.rules.LoadActiveSnapshot(ctx, at)
	if err != nil {
		return nil, shared.Classify(err)
	}

	set := snapshot.ActiveRulesAt(variant, at, quantity)
	view := &ActiveRulesView{
		VariantID:       variantID,
		At:              at,
		SnapshotVersion: snapshot.Version,
		Discounts:       make([]pricing.Document, 0, len(set.Discounts)),
	}
	if set.PriceBook != nil {
		doc := pricing.ToDocument(set.PriceBook)
		view.PriceBook = &doc
	}
	for _, d := range set.Discounts {
		view.Discounts = append(view.Discounts, pricing.ToDocument(d))
	}
	return view, nil
}
