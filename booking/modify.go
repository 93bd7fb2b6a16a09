package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
)

// Modify replaces a CONFIRMED ticket with one on a target trip/class/fare.
// Ordering is reserve target, charge, release source: the customer never
// ends up with zero valid tickets and the ledger never counts both seats
// past the swap. Any failure before the swap releases only the target
// reservation and leaves the original untouched.
func (h *Handler) Modify(ctx context.Context, req entities.Request) entities.Response {
	original, err := h.ledger.Get(req.TicketID)
	if errors.Is(err, ledger.ErrTicketNotFound) {
		return entities.KO(entities.CodeTicketNotFound, "ticket "+req.TicketID+" not found")
	}
	if err != nil {
		return internalError(ctx, err)
	}

	if original.Status != entities.StatusConfirmed {
		return entities.KO(entities.CodeNotEligible, "only confirmed tickets can be modified")
	}

	req.CustomerID = original.CustomerID
	targetTrip, koResp := h.resolveTrip(ctx, req)
	if koResp != nil {
		return *koResp
	}

	quote := h.quote(ctx, targetTrip, req)

	draft := entities.Ticket{
		TicketID:   uuid.NewString(),
		CustomerID: original.CustomerID,
		TripID:     targetTrip.TripID,
		Class:      req.Class,
		PriceType:  req.PriceType,
		PaidPrice:  quote.Price,
		Kind:       entities.KindModified,
		Status:     entities.StatusBooked,
		CreatedAt:  time.Now().UTC(),
	}

	reserved, err := h.ledger.TryReserve(ctx, targetTrip, draft)
	if errors.Is(err, ledger.ErrCapacityExceeded) {
		return entities.KO(entities.CodeCapacityExceeded, "target trip "+targetTrip.TripID+" is sold out, original ticket unchanged")
	}
	if err != nil {
		return internalError(ctx, err)
	}

	penalty := DefaultPenalty
	if req.PenaltyOverride != nil {
		penalty = *req.PenaltyOverride
	}

	// One charge covers the new fare plus the penalty; from the customer's
	// perspective the modification is paid atomically.
	total := quote.Price + penalty
	err = h.payments.Charge(ctx, original.CustomerID, total, "modify ticket "+original.TicketID)
	if err != nil {
		if _, releaseErr := h.ledger.Release(ctx, reserved.TicketID); releaseErr != nil {
			log.FromContext(ctx).WithError(releaseErr).Error("could not release target reservation after failed charge")
		}
		return entities.KO(entities.CodePaymentFailed, "payment refused, original ticket unchanged")
	}

	// Past this point the customer has been charged; the gateway offers no
	// refund call, so a failed swap can only be logged and rolled back on
	// the seat side.
	if _, err := h.ledger.Release(ctx, original.TicketID); err != nil {
		log.FromContext(ctx).WithFields(logrus.Fields{
			"ticket_id":   original.TicketID,
			"customer_id": original.CustomerID,
			"charged":     total,
		}).WithError(err).Error("customer charged but the original ticket is gone, releasing the target reservation")

		if _, releaseErr := h.ledger.Release(ctx, reserved.TicketID); releaseErr != nil {
			log.FromContext(ctx).WithError(releaseErr).Error("could not release target reservation")
		}
		return entities.KO(entities.CodeInternalError, "internal error")
	}
	ticket, err := h.ledger.Finalize(ctx, reserved.TicketID, entities.StatusConfirmed)
	if err != nil {
		log.FromContext(ctx).WithFields(logrus.Fields{
			"ticket_id":   reserved.TicketID,
			"customer_id": original.CustomerID,
			"charged":     total,
		}).WithError(err).Error("customer charged but the replacement ticket could not be finalized")
		return entities.KO(entities.CodeInternalError, "internal error")
	}

	h.publish(ctx, entities.TicketModified{
		Header:      entities.NewEventHeader(),
		OldTicketID: original.TicketID,
		Ticket:      ticket,
	})

	resp := entities.OK(fmt.Sprintf("ticket replaced, charged %.2f (fare %.2f + penalty %.2f)", total, quote.Price, penalty))
	resp.Ticket = &ticket
	return resp
}
