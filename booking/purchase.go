package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
)

// Purchase is reserve-then-charge: the seat is taken atomically first, the
// gateway is charged second, and a failed charge releases the reservation.
// That ordering rules out both overselling and phantom unpaid inventory.
func (h *Handler) Purchase(ctx context.Context, req entities.Request) entities.Response {
	trip, koResp := h.resolveTrip(ctx, req)
	if koResp != nil {
		return *koResp
	}

	quote := h.quote(ctx, trip, req)

	draft := entities.Ticket{
		TicketID:   uuid.NewString(),
		CustomerID: req.CustomerID,
		TripID:     trip.TripID,
		Class:      req.Class,
		PriceType:  req.PriceType,
		PaidPrice:  quote.Price,
		Kind:       entities.KindPurchased,
		Status:     entities.StatusBooked,
		CreatedAt:  time.Now().UTC(),
	}

	reserved, err := h.ledger.TryReserve(ctx, trip, draft)
	if errors.Is(err, ledger.ErrCapacityExceeded) {
		return entities.KO(entities.CodeCapacityExceeded, "trip "+trip.TripID+" is sold out")
	}
	if err != nil {
		return internalError(ctx, err)
	}

	err = h.payments.Charge(ctx, req.CustomerID, quote.Price, "purchase trip "+trip.TripID)
	if err != nil {
		if _, releaseErr := h.ledger.Release(ctx, reserved.TicketID); releaseErr != nil {
			log.FromContext(ctx).WithError(releaseErr).Error("could not release reservation after failed charge")
		}
		return entities.KO(entities.CodePaymentFailed, "payment refused, reservation released")
	}

	ticket, err := h.ledger.Finalize(ctx, reserved.TicketID, entities.StatusConfirmed)
	if err != nil {
		return internalError(ctx, err)
	}

	h.publish(ctx, entities.TicketIssued{
		Header: entities.NewEventHeader(),
		Ticket: ticket,
	})

	resp := entities.OK(fmt.Sprintf("ticket purchased at %.2f (%s)", quote.Price, quote.Explanation))
	resp.Ticket = &ticket
	return resp
}
