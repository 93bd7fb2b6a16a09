package event

import (
	"context"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// Every domain event lands in the archive once, keyed by its header id.

func (h Handler) ArchiveTicketIssued(ctx context.Context, event *entities.TicketIssued) error {
	return h.archive.Store(ctx, event.Header, "TicketIssued", event)
}

func (h Handler) ArchiveTicketConfirmed(ctx context.Context, event *entities.TicketConfirmed) error {
	return h.archive.Store(ctx, event.Header, "TicketConfirmed", event)
}

func (h Handler) ArchiveTicketModified(ctx context.Context, event *entities.TicketModified) error {
	return h.archive.Store(ctx, event.Header, "TicketModified", event)
}

func (h Handler) ArchiveTicketReclaimed(ctx context.Context, event *entities.TicketReclaimed) error {
	return h.archive.Store(ctx, event.Header, "TicketReclaimed", event)
}

func (h Handler) ArchiveLoyaltyActivated(ctx context.Context, event *entities.LoyaltyActivated) error {
	return h.archive.Store(ctx, event.Header, "LoyaltyActivated", event)
}
