package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema crea las tablas si no existen. Las referencias a proveedores y
// usuarios son débiles (ON DELETE SET NULL); los mantenimientos caen en
// cascada con su equipo.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_uq ON users (email) WHERE email <> ''`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS medicines (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		expiry_date DATE NOT NULL,
		batch_number TEXT NOT NULL DEFAULT '',
		supplier_id BIGINT REFERENCES suppliers(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS equipment (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		serial_number TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		supplier_id BIGINT REFERENCES suppliers(id) ON DELETE SET NULL,
		purchase_date DATE,
		purchase_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'OPERATIONAL',
		next_maintenance_date DATE,
		location TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id BIGSERIAL PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		supplier_id BIGINT REFERENCES suppliers(id) ON DELETE SET NULL,
		ordered_by BIGINT REFERENCES users(id) ON DELETE SET NULL,
		item_type TEXT NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
		unit_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		order_date DATE NOT NULL,
		delivery_date DATE,
		status TEXT NOT NULL DEFAULT 'PENDING',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS maintenance_records (
		id BIGSERIAL PRIMARY KEY,
		equipment_id BIGINT NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		technician_id BIGINT REFERENCES users(id) ON DELETE SET NULL,
		performed_by TEXT NOT NULL DEFAULT '',
		maintenance_date DATE NOT NULL,
		type TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		cost NUMERIC(12,2) NOT NULL DEFAULT 0,
		next_scheduled_date DATE,
		status TEXT NOT NULL DEFAULT 'COMPLETED',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS medicines_expiry_idx ON medicines (expiry_date)`,
	`CREATE INDEX IF NOT EXISTS maintenance_equipment_idx ON maintenance_records (equipment_id)`,
}

// Migrate crea el esquema completo de forma idempotente.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
