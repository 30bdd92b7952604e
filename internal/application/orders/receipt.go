package orders

import (
	"context"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ReceiptUseCase consulta de órdenes de venta confirmadas y generación de su
// recibo en PDF. Solo lectura: las órdenes son inmutables.
type ReceiptUseCase struct {
	salesRepo   repository.SalesOrderRepository
	productRepo repository.ProductRepository
	generator   ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando sus dependencias.
func NewReceiptUseCase(
	salesRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{salesRepo: salesRepo, productRepo: productRepo, generator: generator}
}

// GetSalesOrder devuelve cabecera y líneas de una orden de venta.
// Retorna domain.ErrNotFound si la orden no existe.
func (uc *ReceiptUseCase) GetSalesOrder(ctx context.Context, orderID string) (*dto.SalesOrderDetailResponse, error) {
	order, err := uc.salesRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("recibo: obtener orden: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.salesRepo.ListItems(orderID)
	if err != nil {
		return nil, fmt.Errorf("recibo: obtener líneas: %w", err)
	}
	out := &dto.SalesOrderDetailResponse{
		SalesOrderResponse: dto.SalesOrderResponse{
			ID:           order.ID,
			CustomerName: order.CustomerName,
			Status:       order.Status,
			CreatedAt:    order.CreatedAt,
		},
		Items: make([]dto.SalesOrderItemResponse, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, dto.SalesOrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return out, nil
}

// DownloadReceiptPDF recupera orden, líneas y productos y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la orden no existe.
func (uc *ReceiptUseCase) DownloadReceiptPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.salesRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.salesRepo.ListItems(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: obtener líneas: %w", err)
	}
	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, "", fmt.Errorf("recibo: obtener producto %s: %w", item.ProductID, err)
		}
		lines = append(lines, ReceiptLine{Item: item, Product: product})
	}
	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, order, lines)
	if err != nil {
		return nil, "", fmt.Errorf("recibo: generar PDF: %w", err)
	}
	return pdfBytes, fmt.Sprintf("recibo-%s.pdf", order.ID), nil
}
