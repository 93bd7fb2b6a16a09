package http

import (
	"context"
	"net/http"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req entities.Request) entities.Response
}

// TicketReader serves the read-only lookups; mutations only ever reach the
// ledger through dispatched commands.
type TicketReader interface {
	Get(ticketID string) (entities.Ticket, error)
	ListByCustomer(customerID string) []entities.Ticket
	ListByTrip(tripID string) []entities.Ticket
}

type EventBus interface {
	Publish(ctx context.Context, event any) error
}

type Handler struct {
	dispatcher Dispatcher
	tickets    TicketReader
	eventBus   EventBus
}

// statusOf maps an outcome envelope to the HTTP layer; the envelope itself
// is always the body.
func statusOf(resp entities.Response) int {
	switch resp.Code {
	case entities.CodeOK:
		return http.StatusOK
	case entities.CodeTripNotFound, entities.CodeTicketNotFound:
		return http.StatusNotFound
	case entities.CodeCapacityExceeded:
		return http.StatusConflict
	case entities.CodePaymentFailed:
		return http.StatusPaymentRequired
	case entities.CodeNotEligible:
		return http.StatusUnprocessableEntity
	case entities.CodeUnknownOperation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
