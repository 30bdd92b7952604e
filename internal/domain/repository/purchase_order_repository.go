package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
// Solo inserción: las órdenes son inmutables una vez confirmadas.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseOrderItem) error
}
