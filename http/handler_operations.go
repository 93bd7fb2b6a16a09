package http

import (
	"github.com/labstack/echo/v4"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/booking"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// PostOperation accepts the raw request envelope and lets the dispatcher
// resolve the operation by name.
func (h Handler) PostOperation(c echo.Context) error {
	var req entities.Request
	if err := c.Bind(&req); err != nil {
		return err
	}

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}

func (h Handler) PostBook(c echo.Context) error {
	return h.dispatchAs(c, booking.OpBook)
}

func (h Handler) PostPurchase(c echo.Context) error {
	return h.dispatchAs(c, booking.OpPurchase)
}

func (h Handler) PostConfirm(c echo.Context) error {
	var req entities.Request
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.OperationName = booking.OpConfirm
	req.TicketID = c.Param("ticket_id")

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}

func (h Handler) PostModify(c echo.Context) error {
	var req entities.Request
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.OperationName = booking.OpModify
	req.TicketID = c.Param("ticket_id")

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}

func (h Handler) PostActivateLoyalty(c echo.Context) error {
	req := entities.Request{
		OperationName: booking.OpActivateLoyalty,
		CustomerID:    c.Param("customer_id"),
	}

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}

func (h Handler) PostSweepExpired(c echo.Context) error {
	resp := h.dispatcher.Dispatch(c.Request().Context(), entities.Request{
		OperationName: booking.OpSweepExpired,
	})
	return c.JSON(statusOf(resp), resp)
}

func (h Handler) dispatchAs(c echo.Context, operation string) error {
	var req entities.Request
	if err := c.Bind(&req); err != nil {
		return err
	}
	req.OperationName = operation

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}
