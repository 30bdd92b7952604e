package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// Delete retorna domain.ErrNotFound si el producto no existe.
	Delete(id string) error
}
