// Package ledger is the sole arbiter of trip room. Every seat-affecting
// command goes through TryReserve; nothing else inserts tickets.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

var (
	ErrCapacityExceeded = errors.New("trip is sold out")
	ErrTicketNotFound   = errors.New("ticket not found")
)

// TicketStore is the opaque durability contract: whole-collection load at
// startup, whole-collection replace after every mutation.
type TicketStore interface {
	LoadAll(ctx context.Context) ([]entities.Ticket, error)
	SaveAll(ctx context.Context, tickets []entities.Ticket) error
}

// Ledger keeps the authoritative in-memory set of issued and reserved
// tickets. One reader/writer lock serializes all capacity-affecting writes;
// reads run concurrently with each other but never with a write.
type Ledger struct {
	store TicketStore

	mu      sync.RWMutex
	tickets map[string]entities.Ticket
}

func NewLedger(store TicketStore) *Ledger {
	if store == nil {
		panic("store is nil")
	}
	return &Ledger{
		store:   store,
		tickets: map[string]entities.Ticket{},
	}
}

// Load seeds the in-memory set from the store. Called once at startup,
// before the ledger is shared.
func (l *Ledger) Load(ctx context.Context) error {
	tickets, err := l.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("could not load tickets: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.tickets = make(map[string]entities.Ticket, len(tickets))
	for _, t := range tickets {
		l.tickets[t.TicketID] = t
	}
	return nil
}

// TryReserve counts the tickets held against the trip and inserts the draft
// only when a seat is left, all inside one exclusive critical section. A
// full trip returns ErrCapacityExceeded with no mutation; that is an
// expected outcome, not a fault.
func (l *Ledger) TryReserve(ctx context.Context, trip entities.Trip, draft entities.Ticket) (entities.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	taken := 0
	for _, t := range l.tickets {
		if t.TripID == trip.TripID {
			taken++
		}
	}
	if taken >= trip.Vehicle.Capacity {
		return entities.Ticket{}, ErrCapacityExceeded
	}

	l.tickets[draft.TicketID] = draft
	l.persist(ctx)

	return draft, nil
}

// Release removes a ticket and returns it: rollback after a failed charge,
// the source side of a modification, or holding-window reclamation.
func (l *Ledger) Release(ctx context.Context, ticketID string) (entities.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok {
		return entities.Ticket{}, ErrTicketNotFound
	}

	delete(l.tickets, ticketID)
	l.persist(ctx)

	return ticket, nil
}

// Finalize transitions a ticket in place, BOOKED to CONFIRMED. The seat was
// counted at reservation time, so capacity accounting is untouched.
func (l *Ledger) Finalize(ctx context.Context, ticketID string, status entities.TicketStatus) (entities.Ticket, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ticket, ok := l.tickets[ticketID]
	if !ok {
		return entities.Ticket{}, ErrTicketNotFound
	}

	ticket.Status = status
	l.tickets[ticketID] = ticket
	l.persist(ctx)

	return ticket, nil
}

func (l *Ledger) Get(ticketID string) (entities.Ticket, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ticket, ok := l.tickets[ticketID]
	if !ok {
		return entities.Ticket{}, ErrTicketNotFound
	}
	return ticket, nil
}

func (l *Ledger) ListByTrip(tripID string) []entities.Ticket {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var tickets []entities.Ticket
	for _, t := range l.tickets {
		if t.TripID == tripID {
			tickets = append(tickets, t)
		}
	}
	return tickets
}

func (l *Ledger) ListByCustomer(customerID string) []entities.Ticket {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var tickets []entities.Ticket
	for _, t := range l.tickets {
		if t.CustomerID == customerID {
			tickets = append(tickets, t)
		}
	}
	return tickets
}

func (l *Ledger) CountByTrip(tripID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	count := 0
	for _, t := range l.tickets {
		if t.TripID == tripID {
			count++
		}
	}
	return count
}

// ReclaimExpired removes every BOOKED ticket older than the holding window
// and returns the reclaimed tickets so the caller can publish events for
// them.
func (l *Ledger) ReclaimExpired(ctx context.Context, holdingWindow time.Duration) []entities.Ticket {
	cutoff := time.Now().Add(-holdingWindow)

	l.mu.Lock()
	defer l.mu.Unlock()

	var reclaimed []entities.Ticket
	for id, t := range l.tickets {
		if t.Status == entities.StatusBooked && t.CreatedAt.Before(cutoff) {
			reclaimed = append(reclaimed, t)
			delete(l.tickets, id)
		}
	}
	if len(reclaimed) > 0 {
		l.persist(ctx)
	}
	return reclaimed
}

// persist writes the whole collection through the store. A failed write is
// logged and the in-memory state stands: capacity accounting must stay
// exact even when durability lags. Callers hold the write lock.
func (l *Ledger) persist(ctx context.Context) {
	tickets := make([]entities.Ticket, 0, len(l.tickets))
	for _, t := range l.tickets {
		tickets = append(tickets, t)
	}

	if err := l.store.SaveAll(ctx, tickets); err != nil {
		log.FromContext(ctx).WithError(err).Error("could not persist tickets")
	}
}
