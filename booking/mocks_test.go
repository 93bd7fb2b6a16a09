package booking

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/api"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/catalog"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/db"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
	"github.com/CiccioCer27/ProgettoTrenical-sub000/ledger"
)

type loyaltyStub struct {
	mu      sync.Mutex
	members map[string]struct{}
}

func newLoyaltyStub(members ...string) *loyaltyStub {
	s := &loyaltyStub{members: map[string]struct{}{}}
	for _, m := range members {
		s.members[m] = struct{}{}
	}
	return s
}

func (s *loyaltyStub) IsRegistered(_ context.Context, customerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.members[customerID]
	return ok
}

func (s *loyaltyStub) Register(_ context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members[customerID] = struct{}{}
	return nil
}

type promoStub struct {
	promotions []entities.Promotion
}

func (s promoStub) Active(at time.Time) []entities.Promotion {
	var active []entities.Promotion
	for _, p := range s.promotions {
		if p.ValidAt(at) {
			active = append(active, p)
		}
	}
	return active
}

type busStub struct {
	mu        sync.Mutex
	published []any
}

func (b *busStub) Publish(_ context.Context, event any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.published = append(b.published, event)
	return nil
}

func (b *busStub) events() []any {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]any(nil), b.published...)
}

// releasingGateway removes a ticket from the ledger while the charge is in
// flight, standing in for a concurrent modification or a reaper sweep
// racing the command.
type releasingGateway struct {
	ledger    *ledger.Ledger
	releaseID string
	charges   int
}

func (g *releasingGateway) Charge(ctx context.Context, _ string, _ float64, _ string) error {
	g.charges++
	if g.releaseID != "" {
		_, _ = g.ledger.Release(ctx, g.releaseID)
		g.releaseID = ""
	}
	return nil
}

// panickingCatalog simulates an unexpected fault inside a command.
type panickingCatalog struct{}

func (panickingCatalog) TripByID(context.Context, string) (entities.Trip, error) {
	panic("catalog exploded")
}

func (panickingCatalog) Find(context.Context, entities.TripFilter) []entities.Trip {
	panic("catalog exploded")
}

type fixture struct {
	handler    *Handler
	dispatcher *Dispatcher
	ledger     *ledger.Ledger
	payments   *api.PaymentsMock
	loyalty    *loyaltyStub
	bus        *busStub
	trip       entities.Trip
}

func newFixture(t *testing.T, capacity int) *fixture {
	t.Helper()

	payments := &api.PaymentsMock{}
	f := newFixtureWithGateway(t, capacity, payments)
	f.payments = payments
	return f
}

func newFixtureWithGateway(t *testing.T, capacity int, gateway PaymentGateway) *fixture {
	t.Helper()

	trip := entities.Trip{
		TripID:      "roma-milano-0800",
		Origin:      "Roma",
		Destination: "Milano",
		Departure:   time.Now().Add(14 * 24 * time.Hour),
		Platform:    4,
		Vehicle:     entities.Vehicle{Name: "Frecciarossa 1000", Capacity: capacity},
		Fares: map[entities.ServiceClass]entities.Fare{
			entities.ClassEconomy: {Standard: 50, Loyalty: 40},
			entities.ClassPremium: {Standard: 90, Loyalty: 72},
		},
	}
	secondTrip := trip
	secondTrip.TripID = "roma-milano-1800"
	secondTrip.Departure = trip.Departure.Add(10 * time.Hour)

	store := db.NewJSONTicketStore(filepath.Join(t.TempDir(), "tickets.json"))
	seatLedger := ledger.NewLedger(store)

	loyalty := newLoyaltyStub()
	bus := &busStub{}
	reaper := ledger.NewReaper(seatLedger, bus, 10*time.Minute, time.Minute)

	handler := NewHandler(
		seatLedger,
		reaper,
		catalog.New([]entities.Trip{trip, secondTrip}),
		loyalty,
		promoStub{},
		gateway,
		bus,
	)

	return &fixture{
		handler:    handler,
		dispatcher: NewDispatcher(handler),
		ledger:     seatLedger,
		loyalty:    loyalty,
		bus:        bus,
		trip:       trip,
	}
}
