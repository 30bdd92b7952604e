package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryRequest entrada para crear un registro de inventario.
// Location por defecto es MAIN.
type CreateInventoryRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Location  string          `json:"location"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Location  string          `json:"location"`
	UpdatedAt time.Time       `json:"updated_at"`
}
