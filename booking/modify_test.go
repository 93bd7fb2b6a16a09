package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

const secondTripID = "roma-milano-1800"

func confirmedTicket(t *testing.T, f *fixture, customerID string, tripID string) entities.Ticket {
	t.Helper()

	resp := f.handler.Purchase(context.Background(), entities.Request{
		CustomerID: customerID,
		TripID:     tripID,
		Class:      entities.ClassEconomy,
		PriceType:  entities.PriceTypeStandard,
	})
	require.Equal(t, entities.OutcomeOK, resp.Outcome)
	require.NotNil(t, resp.Ticket)
	return *resp.Ticket
}

func TestModifyMovesTheTicket(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	original := confirmedTicket(t, f, "customer-1", f.trip.TripID)

	resp := f.handler.Modify(ctx, entities.Request{
		OperationName: OpModify,
		TicketID:      original.TicketID,
		TripID:        secondTripID,
		Class:         entities.ClassPremium,
		PriceType:     entities.PriceTypeStandard,
	})

	require.Equal(t, entities.OutcomeOK, resp.Outcome)
	require.NotNil(t, resp.Ticket)
	assert.Equal(t, secondTripID, resp.Ticket.TripID)
	assert.Equal(t, entities.KindModified, resp.Ticket.Kind)
	assert.Equal(t, entities.StatusConfirmed, resp.Ticket.Status)
	assert.Equal(t, original.CustomerID, resp.Ticket.CustomerID)

	assert.Equal(t, 0, f.ledger.CountByTrip(f.trip.TripID), "source seat must be released")
	assert.Equal(t, 1, f.ledger.CountByTrip(secondTripID))

	_, err := f.ledger.Get(original.TicketID)
	assert.Error(t, err, "the original ticket must be gone after the swap")

	charge := f.payments.Charges[len(f.payments.Charges)-1]
	assert.InDelta(t, resp.Ticket.PaidPrice+DefaultPenalty, charge.Amount, 0.001)
}

func TestModifyPenaltyOverride(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	original := confirmedTicket(t, f, "customer-1", f.trip.TripID)

	penalty := 12.5
	resp := f.handler.Modify(ctx, entities.Request{
		TicketID:        original.TicketID,
		TripID:          secondTripID,
		Class:           entities.ClassEconomy,
		PriceType:       entities.PriceTypeStandard,
		PenaltyOverride: &penalty,
	})

	require.Equal(t, entities.OutcomeOK, resp.Outcome)
	charge := f.payments.Charges[len(f.payments.Charges)-1]
	assert.InDelta(t, resp.Ticket.PaidPrice+penalty, charge.Amount, 0.001)
}

func TestModifyTargetSoldOutLeavesOriginalUntouched(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	original := confirmedTicket(t, f, "customer-1", f.trip.TripID)
	confirmedTicket(t, f, "customer-2", secondTripID)

	resp := f.handler.Modify(ctx, entities.Request{
		TicketID:  original.TicketID,
		TripID:    secondTripID,
		Class:     entities.ClassEconomy,
		PriceType: entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.CodeCapacityExceeded, resp.Code)

	kept, err := f.ledger.Get(original.TicketID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, kept.Status)
	assert.Equal(t, f.trip.TripID, kept.TripID)
	assert.Equal(t, 1, f.ledger.CountByTrip(secondTripID))
}

func TestModifyPaymentFailureLeavesOriginalUntouched(t *testing.T) {
	f := newFixture(t, 1)
	ctx := context.Background()

	original := confirmedTicket(t, f, "customer-1", f.trip.TripID)

	f.payments.FailNext = 1
	resp := f.handler.Modify(ctx, entities.Request{
		TicketID:  original.TicketID,
		TripID:    secondTripID,
		Class:     entities.ClassEconomy,
		PriceType: entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.CodePaymentFailed, resp.Code)

	kept, err := f.ledger.Get(original.TicketID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, kept.Status)
	assert.Equal(t, 0, f.ledger.CountByTrip(secondTripID), "failed target reservation must be released")

	// the target seat is still sellable
	retry := f.handler.Purchase(ctx, entities.Request{
		CustomerID: "customer-2",
		TripID:     secondTripID,
		Class:      entities.ClassEconomy,
		PriceType:  entities.PriceTypeStandard,
	})
	assert.Equal(t, entities.OutcomeOK, retry.Outcome)
}

func TestModifyRequiresConfirmedTicket(t *testing.T) {
	f := newFixture(t, 5)
	ctx := context.Background()

	bookResp := f.handler.Book(ctx, entities.Request{
		CustomerID: "customer-1",
		TripID:     f.trip.TripID,
		Class:      entities.ClassEconomy,
		PriceType:  entities.PriceTypeStandard,
	})
	require.NotNil(t, bookResp.Ticket)

	resp := f.handler.Modify(ctx, entities.Request{
		TicketID:  bookResp.Ticket.TicketID,
		TripID:    secondTripID,
		Class:     entities.ClassEconomy,
		PriceType: entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.CodeNotEligible, resp.Code)
}

func TestModifyReleasesTargetWhenOriginalVanishesMidCharge(t *testing.T) {
	gateway := &releasingGateway{}
	f := newFixtureWithGateway(t, 5, gateway)
	gateway.ledger = f.ledger
	ctx := context.Background()

	original := confirmedTicket(t, f, "customer-1", f.trip.TripID)

	// the original ticket disappears while the modification charge is in
	// flight, as a concurrent modify or reaper sweep would make it
	gateway.releaseID = original.TicketID

	resp := f.handler.Modify(ctx, entities.Request{
		TicketID:  original.TicketID,
		TripID:    secondTripID,
		Class:     entities.ClassEconomy,
		PriceType: entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.CodeInternalError, resp.Code)
	assert.Equal(t, 0, f.ledger.CountByTrip(secondTripID), "target reservation must not linger")
	assert.Equal(t, 0, f.ledger.CountByTrip(f.trip.TripID))
	assert.Equal(t, 2, gateway.charges)
}

func TestModifyUnknownTicket(t *testing.T) {
	f := newFixture(t, 5)

	resp := f.handler.Modify(context.Background(), entities.Request{
		TicketID:  "no-such-ticket",
		TripID:    secondTripID,
		Class:     entities.ClassEconomy,
		PriceType: entities.PriceTypeStandard,
	})

	assert.Equal(t, entities.CodeTicketNotFound, resp.Code)
}
