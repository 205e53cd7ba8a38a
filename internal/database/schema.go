package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []struct {
	name string
	ddl  string
}{
	{"users", `CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32),
		role VARCHAR(16) NOT NULL DEFAULT 'USER',
		wallet_balance NUMERIC(14, 2) NOT NULL DEFAULT 0,
		custom_host_fee_percentage NUMERIC(6, 3),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"events", `CREATE TABLE IF NOT EXISTS events (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		host_id INTEGER NOT NULL REFERENCES users(id),
		sold_tickets INTEGER NOT NULL DEFAULT 0,
		max_tickets INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"packages", `CREATE TABLE IF NOT EXISTS packages (
		id SERIAL PRIMARY KEY,
		event_id INTEGER NOT NULL REFERENCES events(id),
		name VARCHAR(255) NOT NULL,
		price NUMERIC(14, 2) NOT NULL CHECK (price >= 0)
	)`},
	{"bookings", `CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		order_id VARCHAR(128) NOT NULL UNIQUE,
		user_id INTEGER NOT NULL REFERENCES users(id),
		event_id INTEGER NOT NULL REFERENCES events(id),
		package_id INTEGER REFERENCES packages(id),
		referrer_id INTEGER REFERENCES users(id),
		ticket_count INTEGER NOT NULL DEFAULT 0,
		total_amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"ticket_data", `CREATE TABLE IF NOT EXISTS ticket_data (
		id SERIAL PRIMARY KEY,
		booking_id INTEGER NOT NULL UNIQUE REFERENCES bookings(id) ON DELETE CASCADE,
		data JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"tickets", `CREATE TABLE IF NOT EXISTS tickets (
		id SERIAL PRIMARY KEY,
		ticket_number VARCHAR(64) NOT NULL UNIQUE,
		qr_code TEXT NOT NULL UNIQUE,
		holder_name VARCHAR(255) NOT NULL,
		holder_age INTEGER NOT NULL,
		holder_phone VARCHAR(32) NOT NULL DEFAULT '',
		price NUMERIC(14, 2) NOT NULL,
		event_id INTEGER NOT NULL REFERENCES events(id),
		package_id INTEGER NOT NULL REFERENCES packages(id),
		booking_id INTEGER NOT NULL REFERENCES bookings(id),
		user_id INTEGER NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"payments", `CREATE TABLE IF NOT EXISTS payments (
		id SERIAL PRIMARY KEY,
		booking_id INTEGER NOT NULL UNIQUE REFERENCES bookings(id),
		amount NUMERIC(14, 2) NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		transaction_id VARCHAR(128),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"platform_settings", `CREATE TABLE IF NOT EXISTS platform_settings (
		key VARCHAR(64) PRIMARY KEY,
		value NUMERIC(10, 4) NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`},
	{"wallet_transactions", `CREATE TABLE IF NOT EXISTS wallet_transactions (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id),
		booking_id INTEGER NOT NULL REFERENCES bookings(id),
		party VARCHAR(16) NOT NULL,
		amount NUMERIC(14, 2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (booking_id, party)
	)`},
}

// Migrate 建立資料表 (冪等)
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, t := range schema {
		if _, err := pool.Exec(ctx, t.ddl); err != nil {
			return fmt.Errorf("creating %s table: %w", t.name, err)
		}
	}
	return nil
}
