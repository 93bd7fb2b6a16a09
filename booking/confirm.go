package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
)

// Confirm charges the stored price of an existing BOOKED ticket and
// finalizes it. The slot was already counted at booking time, so there is no
// new capacity check. A refused charge releases the seat instead of leaving
// it BOOKED indefinitely.
func (h *Handler) Confirm(ctx context.Context, req entities.Request) entities.Response {
	ticket, err := h.ledger.Get(req.TicketID)
	if errors.Is(err, ledger.ErrTicketNotFound) {
		return entities.KO(entities.CodeTicketNotFound, "ticket "+req.TicketID+" not found")
	}
	if err != nil {
		return internalError(ctx, err)
	}

	if ticket.Status != entities.StatusBooked {
		return entities.KO(entities.CodeNotEligible, "ticket "+req.TicketID+" is already confirmed")
	}

	err = h.payments.Charge(ctx, ticket.CustomerID, ticket.PaidPrice, "confirm booking "+ticket.TicketID)
	if err != nil {
		if _, releaseErr := h.ledger.Release(ctx, ticket.TicketID); releaseErr != nil {
			log.FromContext(ctx).WithError(releaseErr).Error("could not release booking after failed charge")
		}
		return entities.KO(entities.CodePaymentFailed, "payment refused, booking released")
	}

	confirmed, err := h.ledger.Finalize(ctx, ticket.TicketID, entities.StatusConfirmed)
	if err != nil {
		// reachable when the reaper reclaims the booking while the charge
		// is in flight; the customer has paid and there is no refund call
		log.FromContext(ctx).WithFields(logrus.Fields{
			"ticket_id":   ticket.TicketID,
			"customer_id": ticket.CustomerID,
			"charged":     ticket.PaidPrice,
		}).WithError(err).Error("customer charged but the booking could not be finalized")
		return entities.KO(entities.CodeInternalError, "internal error")
	}

	h.publish(ctx, entities.TicketConfirmed{
		Header:   entities.NewEventHeader(),
		TicketID: confirmed.TicketID,
		TripID:   confirmed.TripID,
	})

	resp := entities.OK(fmt.Sprintf("booking confirmed, charged %.2f", confirmed.PaidPrice))
	resp.Ticket = &confirmed
	return resp
}
