package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewEventHeader() EventHeader {
	return EventHeader{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: uuid.NewString(),
	}
}

// TicketIssued is published after a seat has been reserved and, for
// purchases, paid for.
type TicketIssued struct {
	Header EventHeader `json:"header"`

	Ticket Ticket `json:"ticket"`
}

type TicketConfirmed struct {
	Header EventHeader `json:"header"`

	TicketID string `json:"ticket_id"`
	TripID   string `json:"trip_id"`
}

// TicketModified carries both sides of a modification: the ticket that was
// released and its replacement.
type TicketModified struct {
	Header EventHeader `json:"header"`

	OldTicketID string `json:"old_ticket_id"`
	Ticket      Ticket `json:"ticket"`
}

// TicketReclaimed is published when a booked ticket ran out its holding
// window without confirmation and the seat was returned to the trip.
type TicketReclaimed struct {
	Header EventHeader `json:"header"`

	TicketID string `json:"ticket_id"`
	TripID   string `json:"trip_id"`
}

type LoyaltyActivated struct {
	Header EventHeader `json:"header"`

	CustomerID string `json:"customer_id"`
}

type TripChanged struct {
	Header EventHeader `json:"header"`

	TripID string `json:"trip_id"`
	Reason string `json:"reason"`
}
