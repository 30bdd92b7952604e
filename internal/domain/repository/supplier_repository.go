package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
	// Delete retorna domain.ErrNotFound si el proveedor no existe.
	Delete(id string) error
}
