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

// Book reserves a seat without charging. The ticket stays BOOKED and must be
// confirmed within the holding window or the reaper takes the seat back.
func (h *Handler) Book(ctx context.Context, req entities.Request) entities.Response {
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
		Kind:       entities.KindBooked,
		Status:     entities.StatusBooked,
		CreatedAt:  time.Now().UTC(),
	}

	ticket, err := h.ledger.TryReserve(ctx, trip, draft)
	if errors.Is(err, ledger.ErrCapacityExceeded) {
		return entities.KO(entities.CodeCapacityExceeded, "trip "+trip.TripID+" is sold out")
	}
	if err != nil {
		return internalError(ctx, err)
	}

	h.publish(ctx, entities.TicketIssued{
		Header: entities.NewEventHeader(),
		Ticket: ticket,
	})

	resp := entities.OK(fmt.Sprintf("seat booked at %.2f (%s), confirm within %s", quote.Price, quote.Explanation, ledger.HoldingWindow))
	resp.Ticket = &ticket
	return resp
}

func (h *Handler) publish(ctx context.Context, event any) {
	if err := h.eventBus.Publish(ctx, event); err != nil {
		log.FromContext(ctx).WithError(err).Error("could not publish event")
	}
}

func internalError(ctx context.Context, err error) entities.Response {
	log.FromContext(ctx).WithError(err).Error("command failed unexpectedly")
	return entities.KO(entities.CodeInternalError, "internal error")
}
