package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// EventArchive appends every published domain event to the events table,
// keyed by event id so redelivered messages are stored once.
type EventArchive struct {
	db *DB
}

func NewEventArchive(db *DB) EventArchive {
	if db == nil {
		panic("db is nil")
	}
	return EventArchive{db: db}
}

func (a EventArchive) Store(ctx context.Context, header entities.EventHeader, eventName string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	_, err = a.db.Conn.ExecContext(ctx, `
		INSERT INTO
			events (event_id, published_at, event_name, event_payload)
		VALUES
			($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
	`, header.ID, header.PublishedAt, eventName, payload)
	if err != nil {
		return fmt.Errorf("could not archive event: %w", err)
	}

	return nil
}
