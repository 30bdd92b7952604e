package orders

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Commit si fn retorna nil, Rollback en caso
// contrario: garantiza el todo-o-nada de la creación de órdenes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseOrderRepository,
		salesRepo repository.SalesOrderRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// ReceiptPDFGenerator genera el PDF de recibo de una orden de venta.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.SalesOrder, lines []ReceiptLine) ([]byte, error)
}

// ReceiptLine línea de recibo: ítem de la orden más su producto.
type ReceiptLine struct {
	Item    *entity.SalesOrderItem
	Product *entity.Product
}
