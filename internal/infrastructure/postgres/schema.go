package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. Se ejecuta al arrancar; en un
// despliegue con migraciones versionadas este paso se vuelve un no-op.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			username      VARCHAR(50) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			is_admin      BOOLEAN NOT NULL DEFAULT TRUE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id         UUID PRIMARY KEY,
			name       VARCHAR(100) NOT NULL,
			contact    VARCHAR(100) NOT NULL DEFAULT '',
			phone      VARCHAR(30) NOT NULL DEFAULT '',
			address    VARCHAR(255) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id          UUID PRIMARY KEY,
			sku         VARCHAR(50) NOT NULL UNIQUE,
			name        VARCHAR(100) NOT NULL,
			description VARCHAR(255) NOT NULL DEFAULT '',
			unit_price  NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS inventory (
			id         UUID PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			quantity   NUMERIC(14,3) NOT NULL DEFAULT 0,
			location   VARCHAR(50) NOT NULL DEFAULT 'MAIN',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_inventory_product ON inventory (product_id)`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
			id          UUID PRIMARY KEY,
			supplier_id UUID NOT NULL REFERENCES suppliers(id),
			status      VARCHAR(20) NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS purchase_order_items (
			id         UUID PRIMARY KEY,
			order_id   UUID NOT NULL REFERENCES purchase_orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			quantity   NUMERIC(14,3) NOT NULL,
			price      NUMERIC(14,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales_orders (
			id            UUID PRIMARY KEY,
			customer_name VARCHAR(100) NOT NULL,
			status        VARCHAR(20) NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales_order_items (
			id         UUID PRIMARY KEY,
			order_id   UUID NOT NULL REFERENCES sales_orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			quantity   NUMERIC(14,3) NOT NULL,
			price      NUMERIC(14,2) NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
