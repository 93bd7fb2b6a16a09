package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CiccioCer27/ProgettoTrenical-sub000/entities"
)

// TicketStore is the Postgres implementation of the ledger's durability
// contract: the whole collection is replaced in one transaction on every
// save.
type TicketStore struct {
	db *DB
}

func NewTicketStore(db *DB) TicketStore {
	if db == nil {
		panic("db is nil")
	}
	return TicketStore{db: db}
}

func (s TicketStore) LoadAll(ctx context.Context) ([]entities.Ticket, error) {
	var tickets []entities.Ticket
	err := s.db.Conn.SelectContext(ctx, &tickets, `
		SELECT ticket_id, customer_id, trip_id, class, price_type, paid_price, kind, status, created_at
		FROM tickets
	`)
	if err != nil {
		return nil, fmt.Errorf("could not load tickets: %w", err)
	}
	return tickets, nil
}

func (s TicketStore) SaveAll(ctx context.Context, tickets []entities.Ticket) (err error) {
	tx, err := s.db.Conn.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			rollbackErr := tx.Rollback()
			err = errors.Join(err, rollbackErr)
			return
		}
		err = tx.Commit()
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets`); err != nil {
		return fmt.Errorf("could not clear tickets: %w", err)
	}

	for _, ticket := range tickets {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO
				tickets (ticket_id, customer_id, trip_id, class, price_type, paid_price, kind, status, created_at)
			VALUES
				(:ticket_id, :customer_id, :trip_id, :class, :price_type, :paid_price, :kind, :status, :created_at)
		`, ticket)
		if err != nil {
			return fmt.Errorf("could not save ticket %s: %w", ticket.TicketID, err)
		}
	}

	return nil
}
