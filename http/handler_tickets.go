package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h Handler) GetTicket(c echo.Context) error {
	ticket, err := h.tickets.Get(c.Param("ticket_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "ticket not found")
	}

	return c.JSON(http.StatusOK, ticket)
}

func (h Handler) GetCustomerTickets(c echo.Context) error {
	tickets := h.tickets.ListByCustomer(c.Param("customer_id"))

	return c.JSON(http.StatusOK, map[string]any{
		"tickets": tickets,
	})
}

// GetTripManifest lists the tickets currently held against a trip.
func (h Handler) GetTripManifest(c echo.Context) error {
	tickets := h.tickets.ListByTrip(c.Param("trip_id"))

	return c.JSON(http.StatusOK, map[string]any{
		"trip_id": c.Param("trip_id"),
		"tickets": tickets,
	})
}
