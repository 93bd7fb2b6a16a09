package booking

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/api"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/db"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
)

func TestDispatchRoutesOperations(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	resp := f.dispatcher.Dispatch(ctx, entities.Request{
		OperationName: OpSearchTrips,
		Filter:        entities.TripFilter{Origin: "roma"},
	})
	require.Equal(t, entities.OutcomeOK, resp.Outcome)
	assert.Len(t, resp.Trips, 2)

	resp = f.dispatcher.Dispatch(ctx, entities.Request{
		OperationName: OpPurchase,
		CustomerID:    "customer-1",
		TripID:        f.trip.TripID,
		Class:         entities.ClassEconomy,
		PriceType:     entities.PriceTypeStandard,
	})
	assert.Equal(t, entities.OutcomeOK, resp.Outcome)
}

func TestDispatchUnknownOperation(t *testing.T) {
	f := newFixture(t, 5)

	resp := f.dispatcher.Dispatch(context.Background(), entities.Request{
		OperationName: "teleport",
	})

	assert.Equal(t, entities.OutcomeKO, resp.Outcome)
	assert.Equal(t, entities.CodeUnknownOperation, resp.Code)
}

func TestDispatchRecoversPanics(t *testing.T) {
	store := db.NewJSONTicketStore(filepath.Join(t.TempDir(), "tickets.json"))
	seatLedger := ledger.NewLedger(store)
	bus := &busStub{}

	handler := NewHandler(
		seatLedger,
		ledger.NewReaper(seatLedger, bus, 10*time.Minute, time.Minute),
		panickingCatalog{},
		newLoyaltyStub(),
		promoStub{},
		&api.PaymentsMock{},
		bus,
	)
	dispatcher := NewDispatcher(handler)

	resp := dispatcher.Dispatch(context.Background(), entities.Request{
		OperationName: OpPurchase,
		CustomerID:    "customer-1",
		TripID:        "roma-milano-0800",
		Class:         entities.ClassEconomy,
		PriceType:     entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.OutcomeKO, resp.Outcome)
	assert.Equal(t, entities.CodeInternalError, resp.Code)
	assert.Equal(t, 0, seatLedger.CountByTrip("roma-milano-0800"))
}

func TestDispatchSweepExpired(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	resp := f.dispatcher.Dispatch(ctx, entities.Request{OperationName: OpSweepExpired})

	require.Equal(t, entities.OutcomeOK, resp.Outcome)
	assert.Empty(t, resp.Tickets)
}
