package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// InventoryRepository define el puerto para consultar y ajustar existencias.
// Las búsquedas por producto devuelven la primera fila (ignorando Location):
// el sistema asume un único registro alcanzable por producto.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	// GetByProduct devuelve nil, nil si no hay registro para el producto.
	GetByProduct(productID string) (*entity.Inventory, error)
	// GetByProductForUpdate igual que GetByProduct pero bloquea la fila
	// (SELECT FOR UPDATE). Solo tiene sentido dentro de una transacción.
	GetByProductForUpdate(productID string) (*entity.Inventory, error)
	UpdateQuantity(inv *entity.Inventory) error
	List(limit, offset int) ([]*entity.Inventory, error)
}
