// Package event wires the consumers of the domain events the commands
// publish. Everything here is fan-out: the reservation core never depends on
// it.
package event

import (
	"context"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

type EventArchive interface {
	Store(ctx context.Context, header entities.EventHeader, eventName string, event any) error
}

type Handler struct {
	archive EventArchive
}

func NewHandler(archive EventArchive) Handler {
	if archive == nil {
		panic("archive is nil")
	}
	return Handler{archive: archive}
}
