package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// SalesStatusConfirmed estado fijo de una orden de venta al crearse.
	SalesStatusConfirmed = "CONFIRMED"
	// DefaultCustomerName nombre de cliente cuando no se indica uno.
	DefaultCustomerName = "WALK-IN"
)

// SalesOrder cabecera de una orden de venta confirmada.
// Inmutable una vez confirmada la transacción.
type SalesOrder struct {
	ID           string
	CustomerName string
	Status       string
	CreatedAt    time.Time
}

// SalesOrderItem línea de una orden de venta.
type SalesOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}
