package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// SalesOrderRepository define el puerto de persistencia para órdenes de venta.
// Las lecturas existen solo para el recibo (consulta y PDF); no hay update ni delete.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	CreateItem(item *entity.SalesOrderItem) error
	GetByID(id string) (*entity.SalesOrder, error)
	ListItems(orderID string) ([]*entity.SalesOrderItem, error)
}
