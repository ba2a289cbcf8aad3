package shared

import (
	"fmt"

	"checkout-engine/internal/domain/audit"
	"checkout-engine/internal/domain/catalog"
	"checkout-engine/internal/domain/inventory"
	"checkout-engine/internal/domain/money"
	"checkout-engine/internal/domain/pricing"
	"checkout-engine/internal/domain/reservation"
	"checkout-engine/internal/infra"
	"checkout-engine/internal/pkg/errs"
)

// Classify marks domain and repository failures with their category so
// transports can map them without knowing every sentinel.
func Classify(err error) error {
	if err == nil || errs.Category(err) != nil {
		return err
	}
	switch {
	case errs.Is(err, inventory.ErrInsufficientStock),
		errs.Is(err, inventory.ErrOverReceipt):
		return errs.Mark(err, errs.ErrCapacity)

	case errs.Is(err, pricing.ErrNoPriceBook),
		errs.Is(err, pricing.ErrInvalidWindow),
		errs.Is(err, pricing.ErrInvalidRule),
		errs.Is(err, pricing.ErrRuleClosed),
		errs.Is(err, pricing.ErrKindChanged):
		return errs.Mark(err, errs.ErrConfiguration)

	case errs.Is(err, inventory.ErrInvalidTransition),
		errs.Is(err, reservation.ErrAlreadyPriced),
		errs.Is(err, catalog.ErrVariantInactive):
		return errs.Mark(err, errs.ErrState)

	case errs.Is(err, inventory.ErrRecordNotFound),
		errs.Is(err, inventory.ErrShipmentNotFound),
		errs.Is(err, reservation.ErrReservationNotFound),
		errs.Is(err, catalog.ErrVariantNotFound),
		errs.Is(err, pricing.ErrRuleNotFound),
		infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)

	case errs.Is(err, inventory.ErrInvalidQuantity),
		errs.Is(err, inventory.ErrBelowReserved),
		errs.Is(err, pricing.ErrInvalidQuantity),
		errs.Is(err, money.ErrAmountOverflow),
		errs.Is(err, reservation.ErrEmptyOrderRef),
		errs.Is(err, reservation.ErrOrderRefTooLong),
		errs.Is(err, audit.ErrEmptyEntity):
		return errs.Mark(err, errs.ErrValidation)

	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrConcurrency)
	}
	return err
}

// NotFoundAs replaces a repository not-found error with a domain sentinel.
// Both stay in the unwrap chain, so errors.Is matches either.
func NotFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(fmt.Errorf("%w: %w", sentinel, err), sentinel)
	}
	return err
}
