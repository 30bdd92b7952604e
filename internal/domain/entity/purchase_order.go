package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado de una orden de compra: se fija a RECEIVED al crearla y no cambia
// (no hay flujo de cancelación ni actualización en el sistema).
const PurchaseStatusReceived = "RECEIVED"

// PurchaseOrder cabecera de una orden de compra recibida de un proveedor.
// Inmutable una vez confirmada la transacción.
type PurchaseOrder struct {
	ID         string
	SupplierID string
	Status     string
	CreatedAt  time.Time
}

// PurchaseOrderItem línea de una orden de compra: producto, cantidad y precio pactado.
type PurchaseOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	Price     decimal.Decimal
}
