// Package db holds the durable stores behind the reservation core: the
// Postgres ticket store and event archive over sqlx, and the JSON file
// repositories for tickets, loyalty members and promotions.
package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type DB struct {
	Conn *sqlx.DB
}

func NewDBConn(connString string) (DB, error) {
	conn, err := sqlx.Open("postgres", connString)
	if err != nil {
		return DB{}, fmt.Errorf("could not open postgres connection: %w", err)
	}

	return DB{Conn: conn}, nil
}

func (db *DB) Close() error {
	return db.Conn.Close()
}

// MigrateSchema creates the tickets and events tables. Outbox tables are
// managed by the watermill-sql publisher's auto-initialization.
func (db *DB) MigrateSchema() {
	db.Conn.MustExec(schema)
}
