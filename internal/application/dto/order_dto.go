package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de una orden (compra o venta): producto, cantidad y precio.
type OrderItemInput struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID string           `json:"supplier_id"`
	Items      []OrderItemInput `json:"items"`
}

// PurchaseOrderResponse cabecera de la orden de compra persistida.
// Por contrato las líneas no se devuelven en la respuesta.
type PurchaseOrderResponse struct {
	ID         string    `json:"id"`
	SupplierID string    `json:"supplier_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateSalesOrderRequest entrada para crear una orden de venta.
type CreateSalesOrderRequest struct {
	CustomerName string           `json:"customer_name"`
	Items        []OrderItemInput `json:"items"`
}

// SalesOrderResponse cabecera de la orden de venta persistida.
type SalesOrderResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// SalesOrderItemResponse línea de una orden de venta (solo lectura, recibo).
type SalesOrderItemResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SalesOrderDetailResponse cabecera más líneas, para consulta de recibo.
type SalesOrderDetailResponse struct {
	SalesOrderResponse
	Items []SalesOrderItemResponse `json:"items"`
}
