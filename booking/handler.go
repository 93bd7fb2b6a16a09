// Package booking holds the ticket lifecycle commands and the request
// dispatcher. Commands are the only callers of the ledger; everything they
// need is injected.
package booking

import (
	"context"
	"time"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/pricing"
)

const (
	// DefaultPenalty is charged on top of the new fare when a ticket is
	// modified, unless the request overrides it.
	DefaultPenalty = 5.00

	// LoyaltyFee is the one-time charge for activating loyalty membership.
	LoyaltyFee = 10.00
)

type TripCatalog interface {
	TripByID(ctx context.Context, tripID string) (entities.Trip, error)
	Find(ctx context.Context, filter entities.TripFilter) []entities.Trip
}

type LoyaltyRegistry interface {
	IsRegistered(ctx context.Context, customerID string) bool
	Register(ctx context.Context, customerID string) error
}

type PromotionSource interface {
	Active(at time.Time) []entities.Promotion
}

// PaymentGateway is the external payment authority. A charge either fully
// succeeds or fully fails; there is no idempotency key, so commands never
// retry blindly.
type PaymentGateway interface {
	Charge(ctx context.Context, customerID string, amount float64, reason string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type Handler struct {
	ledger     *ledger.Ledger
	reaper     *ledger.Reaper
	catalog    TripCatalog
	loyalty    LoyaltyRegistry
	promotions PromotionSource
	payments   PaymentGateway
	eventBus   EventPublisher
}

func NewHandler(
	seatLedger *ledger.Ledger,
	reaper *ledger.Reaper,
	catalog TripCatalog,
	loyalty LoyaltyRegistry,
	promotions PromotionSource,
	payments PaymentGateway,
	eventBus EventPublisher,
) *Handler {
	if seatLedger == nil {
		panic("ledger is nil")
	}
	if reaper == nil {
		panic("reaper is nil")
	}
	if catalog == nil {
		panic("catalog is nil")
	}
	if loyalty == nil {
		panic("loyalty registry is nil")
	}
	if promotions == nil {
		panic("promotion source is nil")
	}
	if payments == nil {
		panic("payment gateway is nil")
	}
	if eventBus == nil {
		panic("event bus is nil")
	}

	return &Handler{
		ledger:     seatLedger,
		reaper:     reaper,
		catalog:    catalog,
		loyalty:    loyalty,
		promotions: promotions,
		payments:   payments,
		eventBus:   eventBus,
	}
}

// resolveTrip loads the trip and validates class and price-type eligibility
// for the requesting customer. The returned response is non-nil when the
// request cannot proceed.
func (h *Handler) resolveTrip(ctx context.Context, req entities.Request) (entities.Trip, *entities.Response) {
	trip, err := h.catalog.TripByID(ctx, req.TripID)
	if err != nil {
		resp := entities.KO(entities.CodeTripNotFound, "trip "+req.TripID+" not found")
		return entities.Trip{}, &resp
	}

	if _, ok := trip.Fares[req.Class]; !ok {
		resp := entities.KO(entities.CodeNotEligible, "class "+string(req.Class)+" is not offered on this trip")
		return entities.Trip{}, &resp
	}

	if resp := h.checkPriceType(ctx, req); resp != nil {
		return entities.Trip{}, resp
	}

	return trip, nil
}

func (h *Handler) checkPriceType(ctx context.Context, req entities.Request) *entities.Response {
	switch req.PriceType {
	case entities.PriceTypeStandard:
		return nil
	case entities.PriceTypeLoyalty:
		if !h.loyalty.IsRegistered(ctx, req.CustomerID) {
			resp := entities.KO(entities.CodeNotEligible, "loyalty fare requires a registered loyalty customer")
			return &resp
		}
		return nil
	default:
		resp := entities.KO(entities.CodeNotEligible, "unknown price type "+string(req.PriceType))
		return &resp
	}
}

// quote asks the selector for the lowest applicable price given the current
// promotion snapshot and the customer's loyalty standing.
func (h *Handler) quote(ctx context.Context, trip entities.Trip, req entities.Request) pricing.Quote {
	now := time.Now()
	return pricing.Best(pricing.Input{
		Trip:       trip,
		Class:      req.Class,
		PriceType:  req.PriceType,
		Loyal:      h.loyalty.IsRegistered(ctx, req.CustomerID),
		Promotions: h.promotions.Active(now),
		Now:        now,
	})
}
