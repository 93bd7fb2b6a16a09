package http

import (
	"net/http"

	libHttp "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/labstack/echo/v4"
)

func NewHttpRouter(
	dispatcher Dispatcher,
	tickets TicketReader,
	eventBus EventBus,
) *echo.Echo {
	e := libHttp.NewEcho()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	handler := Handler{
		dispatcher: dispatcher,
		tickets:    tickets,
		eventBus:   eventBus,
	}

	e.POST("/operations", handler.PostOperation)
	e.GET("/trips", handler.GetTrips)
	e.POST("/tickets/book", handler.PostBook)
	e.POST("/tickets/purchase", handler.PostPurchase)
	e.POST("/tickets/:ticket_id/confirm", handler.PostConfirm)
	e.POST("/tickets/:ticket_id/modify", handler.PostModify)
	e.GET("/tickets/:ticket_id", handler.GetTicket)
	e.GET("/customers/:customer_id/tickets", handler.GetCustomerTickets)
	e.GET("/trips/:trip_id/tickets", handler.GetTripManifest)
	e.POST("/loyalty/:customer_id", handler.PostActivateLoyalty)
	e.POST("/trips/:trip_id/changed", handler.PostTripChanged)
	e.POST("/ops/sweep-expired", handler.PostSweepExpired)

	return e
}
