package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/pkg/errs"
	"checkout-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// QuoteSource prices a variant as of an instant.
type QuoteSource interface {
	PriceAsOf(ctx context.Context, variantID uuid.UUID, at time.Time, quantity int) (*pricing.Quote, error)
}

type CheckoutLineInput struct {
	Key      inventory.Key
	Quantity int
	At       time.Time
}

type PricedReservation struct {
	Reservation *reservation.Reservation
	Quote       pricing.Quote
}

type CheckoutCommands interface {
	CheckoutLine(ctx context.Context, in CheckoutLineInput) (*PricedReservation, error)
}

type checkoutCommandsImpl struct {
	uow    shared.UnitOfWork
	ledger LedgerCommands
	quotes QuoteSource
	clock  clock.Clock
	logger *slog.Logger
}

func NewCheckoutCommands(
	uow shared.UnitOfWork,
	ledger LedgerCommands,
	quotes QuoteSource,
	clk clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:    uow,
		ledger: ledger,
		quotes: quotes,
		clock:  clk,
		logger: logger,
	}
}

// CheckoutLine holds stock, prices it with the same instant, and freezes the
// quote onto the hold. Any failure after the hold releases it again.
func (uc *checkoutCommandsImpl) CheckoutLine(ctx context.Context, in CheckoutLineInput) (*PricedReservation, error) {
	now := in.At
	if now.IsZero() {
		now = uc.clock.Now()
	}
	now = now.UTC()

	held, err := uc.ledger.Reserve(ctx, ReserveInput{Key: in.Key, Quantity: in.Quantity, At: now})
	if err != nil {
		return nil, err
	}

	priced, quote, err := uc.price(ctx, held, now)
	if err != nil {
		return nil, uc.releaseAfterFailure(ctx, held, now, err)
	}

	return &PricedReservation{Reservation: priced, Quote: *quote}, nil
}

func (uc *checkoutCommandsImpl) price(ctx context.Context, held *reservation.Reservation, now time.Time) (*reservation.Reservation, *pricing.Quote, error) {
	quote, err := uc.quotes.PriceAsOf(ctx, held.Key().VariantID, now, held.Quantity())
	if err != nil {
		return nil, nil, err
	}
	frozen := toPricing(quote, now)

	var priced *reservation.Reservation
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, derr := tx.Reservations().Lock(ctx, held.ID())
		if derr != nil {
			return shared.NotFoundAs(derr, reservation.ErrReservationNotFound)
		}
		before := r.Snapshot()
		if derr = r.FreezePrice(frozen, now); derr != nil {
			return derr
		}
		if derr = tx.Reservations().Update(ctx, r); derr != nil {
			return derr
		}
		priced = r
		return newAuditBatch(ctx, now).
			add(audit.EntityReservation, r.ID().String(), before, r.Snapshot(), audit.ReasonReservationPriced, ruleList(quote)).
			flush(tx)
	})
	if err != nil {
		return nil, nil, shared.Classify(err)
	}
	return priced, quote, nil
}

func (uc *checkoutCommandsImpl) releaseAfterFailure(ctx context.Context, held *reservation.Reservation, now time.Time, cause error) error {
	uc.logger.WarnContext(ctx, "pricing failed after reserve, releasing hold",
		slog.String("reservation_id", held.ID().String()),
		slog.Any("error", cause))

	_, relErr := uc.ledger.Release(ctx, ReleaseInput{
		ReservationID: held.ID(),
		Reason:        audit.ReasonPricingFailed,
		At:            now,
	})
	if relErr != nil {
		// the sweep reclaims the hold once it lapses
		uc.logger.ErrorContext(ctx, "failed to release hold after pricing failure",
			slog.String("reservation_id", held.ID().String()),
			slog.Any("error", relErr))
		return errs.WithSecondary(shared.Classify(cause), relErr)
	}
	return shared.Classify(cause)
}

func toPricing(q *pricing.Quote, now time.Time) reservation.Pricing {
	applied := make([]reservation.AppliedRule, 0, len(q.AppliedRules))
	for _, r := range q.AppliedRules {
		applied = append(applied, reservation.AppliedRule{
			RuleID:   r.RuleID,
			Kind:     string(r.Kind),
			Priority: r.Priority,
			Amount:   r.Amount,
		})
	}
	return reservation.Pricing{
		UnitAmount:      q.UnitAmount,
		Currency:        q.Currency,
		PriceBookID:     q.PriceBookID,
		AppliedRules:    applied,
		SnapshotVersion: q.SnapshotVersion,
		PricedAt:        now,
	}
}

func ruleList(q *pricing.Quote) string {
	ids := make([]string, 0, len(q.AppliedRules)+1)
	ids = append(ids, "book="+q.PriceBookID.String())
	for _, id := range q.RuleIDs() {
		ids = append(ids, id.String())
	}
	return strings.Join(ids, ",")
}
