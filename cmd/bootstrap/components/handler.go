package components

import (
	"checkout-engine/internal/handler"
	"checkout-engine/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewReservationHandler,
		api.NewInventoryHandler,
		api.NewPricingHandler,
		api.NewAuditHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	checkout *api.CheckoutHandler,
	reservation *api.ReservationHandler,
	inventory *api.InventoryHandler,
	pricing *api.PricingHandler,
	audit *api.AuditHandler,
) handler.Handlers {
	return handler.Handlers{
		Checkout:    checkout,
		Reservation: reservation,
		Inventory:   inventory,
		Pricing:     pricing,
		Audit:       audit,
	}
}
