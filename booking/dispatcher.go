package booking

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

const (
	OpBook            = "book"
	OpPurchase        = "purchase"
	OpConfirm         = "confirm"
	OpModify          = "modify"
	OpActivateLoyalty = "activate-loyalty"
	OpSearchTrips     = "search-trips"
	OpSweepExpired    = "sweep-expired"
)

// Dispatcher maps an operation name to its command and normalizes every
// failure into the outcome envelope. Unexpected faults are recovered here,
// logged, and reported as InternalError; they never crash the serving task
// and never reach the ledger.
type Dispatcher struct {
	handler *Handler
}

func NewDispatcher(handler *Handler) *Dispatcher {
	if handler == nil {
		panic("handler is nil")
	}
	return &Dispatcher{handler: handler}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req entities.Request) (resp entities.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.FromContext(ctx).WithFields(logrus.Fields{
				"operation": req.OperationName,
				"panic":     r,
			}).Error("recovered panic while dispatching")
			resp = entities.KO(entities.CodeInternalError, "internal error")
		}
	}()

	switch req.OperationName {
	case OpBook:
		return d.handler.Book(ctx, req)
	case OpPurchase:
		return d.handler.Purchase(ctx, req)
	case OpConfirm:
		return d.handler.Confirm(ctx, req)
	case OpModify:
		return d.handler.Modify(ctx, req)
	case OpActivateLoyalty:
		return d.handler.ActivateLoyalty(ctx, req)
	case OpSearchTrips:
		return d.handler.SearchTrips(ctx, req)
	case OpSweepExpired:
		return d.handler.SweepExpired(ctx, req)
	default:
		return entities.KO(entities.CodeUnknownOperation, "unknown operation "+req.OperationName)
	}
}
