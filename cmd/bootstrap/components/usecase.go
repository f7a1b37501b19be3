package components

import (
	"courtbook/internal/integrations/payos"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewPayOSClient,
		fx.As(new(payos.Gateway)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCourtQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		queries.NewWalletQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentRouter,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSlotCommands,
		commands.NewFeedbackCommands,
		commands.NewPlaymateCommands,
	),
)

func NewPayOSClient(cfg config.Config) *payos.Client {
	return payos.NewClient(cfg.PayOS)
}
