package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/booking"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

func (h Handler) GetTrips(c echo.Context) error {
	req := entities.Request{
		OperationName: booking.OpSearchTrips,
		Filter: entities.TripFilter{
			Origin:      c.QueryParam("origin"),
			Destination: c.QueryParam("destination"),
			Date:        c.QueryParam("date"),
			TimeBand:    c.QueryParam("time_band"),
			FreeText:    c.QueryParam("q"),
		},
	}

	resp := h.dispatcher.Dispatch(c.Request().Context(), req)
	return c.JSON(statusOf(resp), resp)
}

// PostTripChanged publishes a trip-change notice; delivery to ticket holders
// is handled by the messaging consumers.
func (h Handler) PostTripChanged(c echo.Context) error {
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return err
	}

	err := h.eventBus.Publish(c.Request().Context(), entities.TripChanged{
		Header: entities.NewEventHeader(),
		TripID: c.Param("trip_id"),
		Reason: body.Reason,
	})
	if err != nil {
		return err
	}

	return c.NoContent(http.StatusAccepted)
}
