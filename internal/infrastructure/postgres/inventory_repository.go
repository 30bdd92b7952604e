package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL (usable con pool o tx).
// Las búsquedas por producto devuelven la fila de menor id, ignorando
// location: el sistema asume un único registro alcanzable por producto.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create inserta un nuevo registro de inventario.
func (r *InventoryRepo) Create(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (id, product_id, quantity, location, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.ProductID, inv.Quantity, inv.Location, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProduct obtiene el registro de inventario de un producto. Devuelve nil, nil si no hay.
func (r *InventoryRepo) GetByProduct(productID string) (*entity.Inventory, error) {
	return r.getByProduct(productID, "")
}

// GetByProductForUpdate igual que GetByProduct pero bloquea la fila
// (SELECT FOR UPDATE) para serializar ajustes concurrentes dentro de la tx.
func (r *InventoryRepo) GetByProductForUpdate(productID string) (*entity.Inventory, error) {
	return r.getByProduct(productID, " FOR UPDATE")
}

func (r *InventoryRepo) getByProduct(productID, suffix string) (*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, location, updated_at
		FROM inventory WHERE product_id = $1
		ORDER BY id LIMIT 1` + suffix
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Quantity, &inv.Location, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// UpdateQuantity actualiza cantidad y fecha del registro.
func (r *InventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	query := `
		UPDATE inventory SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, inv.ID, inv.Quantity, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

// List lista registros de inventario con paginación, los más recientes primero.
func (r *InventoryRepo) List(limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT id, product_id, quantity, location, updated_at
		FROM inventory ORDER BY updated_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ProductID, &inv.Quantity, &inv.Location, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
