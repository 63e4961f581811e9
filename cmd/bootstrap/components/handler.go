package components

import (
	"rental-engine/internal/handler"
	"rental-engine/internal/handler/api"
	"rental-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Item         *api.ItemHandler
	Location     *api.LocationHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewItemHandler,
		api.NewLocationHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Booking:      p.Booking,
				Availability: p.Availability,
				Item:         p.Item,
				Location:     p.Location,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
