package components

import (
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCourtHandler,
		api.NewBookingHandler,
		api.NewFeedbackHandler,
		api.NewPlaymateHandler,
		api.NewWalletHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	court *api.CourtHandler,
	booking *api.BookingHandler,
	feedback *api.FeedbackHandler,
	playmate *api.PlaymateHandler,
	wallet *api.WalletHandler,
	webhook *api.WebhookHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Court:    court,
		Booking:  booking,
		Feedback: feedback,
		Playmate: playmate,
		Wallet:   wallet,
		Webhook:  webhook,
		Admin:    admin,
	}
}
