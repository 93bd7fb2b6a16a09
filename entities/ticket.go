package entities

import "time"

type TicketStatus string

const (
	StatusBooked    TicketStatus = "BOOKED"
	StatusConfirmed TicketStatus = "CONFIRMED"
)

type AcquisitionKind string

const (
	KindBooked    AcquisitionKind = "booked"
	KindPurchased AcquisitionKind = "purchased"
	KindModified  AcquisitionKind = "modified"
)

// Ticket is a customer's claim on one seat of a trip. PaidPrice is fixed at
// issue time; re-pricing always goes through a modification that issues a
// replacement ticket.
type Ticket struct {
	TicketID   string          `json:"ticket_id" db:"ticket_id"`
	CustomerID string          `json:"customer_id" db:"customer_id"`
	TripID     string          `json:"trip_id" db:"trip_id"`
	Class      ServiceClass    `json:"class" db:"class"`
	PriceType  PriceType       `json:"price_type" db:"price_type"`
	PaidPrice  float64         `json:"paid_price" db:"paid_price"`
	Kind       AcquisitionKind `json:"kind" db:"kind"`
	Status     TicketStatus    `json:"status" db:"status"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}
