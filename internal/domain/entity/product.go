package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	UnitPrice   decimal.Decimal // precio unitario, no negativo
	CreatedAt   time.Time
}
