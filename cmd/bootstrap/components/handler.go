package components

import (
	"parkme/internal/handler"
	"parkme/internal/handler/api"
	"parkme/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewPricingHandler,
		api.NewAvailabilityHandler,
		middleware.NewAuthMiddleware,
		func(b *api.BookingHandler, p *api.PricingHandler, a *api.AvailabilityHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Pricing: p, Availability: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
