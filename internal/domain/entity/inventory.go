package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLocation ubicación por defecto de los registros de inventario.
const DefaultLocation = "MAIN"

// Inventory representa la existencia de un producto en una ubicación.
// El diseño asume una sola fila alcanzable por producto: las búsquedas del
// motor de órdenes ignoran Location (ver decisión en DESIGN.md).
type Inventory struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal // no debe quedar negativa por ventas
	Location  string
	UpdatedAt time.Time
}
