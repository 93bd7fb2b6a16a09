package db

var schema = `
CREATE TABLE IF NOT EXISTS tickets (
	ticket_id UUID PRIMARY KEY,
	customer_id VARCHAR(255) NOT NULL,
	trip_id VARCHAR(255) NOT NULL,
	class VARCHAR(32) NOT NULL,
	price_type VARCHAR(32) NOT NULL,
	paid_price NUMERIC(10, 2) NOT NULL,
	kind VARCHAR(32) NOT NULL,
	status VARCHAR(32) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
	event_id UUID PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);
`
