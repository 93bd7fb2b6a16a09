package booking

import (
	"context"
	"fmt"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// SearchTrips filters the read-only trip catalog.
func (h *Handler) SearchTrips(ctx context.Context, req entities.Request) entities.Response {
	trips := h.catalog.Find(ctx, req.Filter)

	resp := entities.OK(fmt.Sprintf("%d trips found", len(trips)))
	resp.Trips = trips
	return resp
}

// SweepExpired is the manual administrative reclamation sweep. The same
// sweep also runs automatically on the reaper's timer.
func (h *Handler) SweepExpired(ctx context.Context, _ entities.Request) entities.Response {
	reclaimed := h.reaper.Sweep(ctx)

	resp := entities.OK(fmt.Sprintf("%d expired bookings reclaimed", len(reclaimed)))
	resp.Tickets = reclaimed
	return resp
}
