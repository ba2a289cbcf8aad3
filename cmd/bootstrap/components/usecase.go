package components

import (
	"checkout-engine/internal/pkg/clock"
	"checkout-engine/internal/usecase/commands"
	"checkout-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewLedgerCommands,
		commands.NewRuleCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewInventoryQueries,
		queries.NewAuditQueries,
		queries.NewPricingQueries,
		NewQuoteSource,
	),
)

// NewQuoteSource lets checkout price lines through the same cached read path
// the quote endpoint uses.
func NewQuoteSource(q queries.PricingQueries) commands.QuoteSource {
	return q
}
