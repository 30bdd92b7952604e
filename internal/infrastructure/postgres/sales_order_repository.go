package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo persistencia de órdenes de venta (inserción y lecturas para el recibo).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

// Create inserta la cabecera de la orden.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, customer_name, status, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerName, order.Status, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	return nil
}

// CreateItem inserta una línea de la orden.
func (r *SalesOrderRepo) CreateItem(item *entity.SalesOrderItem) error {
	query := `
		INSERT INTO sales_order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price,
	)
	if err != nil {
		return fmt.Errorf("insert sales order item: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una orden de venta. Devuelve nil, nil si no existe.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `
		SELECT id, customer_name, status, created_at
		FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerName, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}

// ListItems lista las líneas de una orden en orden de inserción.
func (r *SalesOrderRepo) ListItems(orderID string) ([]*entity.SalesOrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price
		FROM sales_order_items WHERE order_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list sales order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrderItem
	for rows.Next() {
		var item entity.SalesOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan sales order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}
