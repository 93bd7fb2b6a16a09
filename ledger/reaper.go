package ledger

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

const (
	// HoldingWindow is how long a BOOKED ticket may occupy a seat before it
	// is reclaimed.
	HoldingWindow = 10 * time.Minute

	DefaultSweepInterval = time.Minute
)

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Reaper periodically reclaims booked tickets that were never confirmed
// within the holding window, freeing their seats for sale again.
type Reaper struct {
	ledger        *Ledger
	publisher     EventPublisher
	holdingWindow time.Duration
	interval      time.Duration
}

func NewReaper(ledger *Ledger, publisher EventPublisher, holdingWindow, interval time.Duration) *Reaper {
	if ledger == nil {
		panic("ledger is nil")
	}
	if publisher == nil {
		panic("publisher is nil")
	}
	if holdingWindow <= 0 {
		holdingWindow = HoldingWindow
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Reaper{
		ledger:        ledger,
		publisher:     publisher,
		holdingWindow: holdingWindow,
		interval:      interval,
	}
}

// Run sweeps on a timer until the context is canceled.
func (r *Reaper) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep reclaims expired bookings once. It is also what the manual
// administrative sweep operation calls.
func (r *Reaper) Sweep(ctx context.Context) []entities.Ticket {
	reclaimed := r.ledger.ReclaimExpired(ctx, r.holdingWindow)

	for _, ticket := range reclaimed {
		log.FromContext(ctx).WithFields(logrus.Fields{
			"ticket_id": ticket.TicketID,
			"trip_id":   ticket.TripID,
		}).Info("Reclaimed expired booking")

		err := r.publisher.Publish(ctx, entities.TicketReclaimed{
			Header:   entities.NewEventHeader(),
			TicketID: ticket.TicketID,
			TripID:   ticket.TripID,
		})
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("could not publish TicketReclaimed event")
		}
	}

	return reclaimed
}
