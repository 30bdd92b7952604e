package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// OrderUseCase crea órdenes de compra y de venta, cada una como una única
// transacción que inserta cabecera y líneas y ajusta inventario.
//
// La serialización entre peticiones concurrentes sobre el mismo producto
// depende del bloqueo de fila (SELECT FOR UPDATE) del repositorio de
// inventario y del aislamiento del motor de almacenamiento; el caso de uso no
// implementa reintentos ni versionado optimista.
type OrderUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// validateItems verifica que haya al menos una línea y que cada línea tenga
// producto existente, cantidad positiva y precio no negativo.
func (uc *OrderUseCase) validateItems(items []dto.OrderItemInput) error {
	if len(items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		if item.Price.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// CreatePurchaseOrder registra una orden de compra recibida: cabecera con
// estado RECEIVED, una línea por ítem y el inventario de cada producto
// incrementado (o creado en MAIN si no existía). Todo dentro de una sola
// transacción; si cualquier paso falla no persiste nada.
func (uc *OrderUseCase) CreatePurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.validateItems(in.Items); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:         uuid.New().String(),
		SupplierID: in.SupplierID,
		Status:     entity.PurchaseStatusReceived,
		CreatedAt:  now,
	}

	err = uc.txRunner.Run(ctx, func(
		purchaseRepo repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
		invRepo repository.InventoryRepository,
	) error {
		// La cabecera se inserta antes que las líneas: el ID ya existe
		// (UUID generado arriba) cuando cada línea lo referencia.
		if err := purchaseRepo.Create(order); err != nil {
			return err
		}
		for _, item := range in.Items {
			line := &entity.PurchaseOrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := purchaseRepo.CreateItem(line); err != nil {
				return err
			}
			inv, err := invRepo.GetByProductForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if inv == nil {
				inv = &entity.Inventory{
					ID:        uuid.New().String(),
					ProductID: item.ProductID,
					Quantity:  item.Quantity,
					Location:  entity.DefaultLocation,
					UpdatedAt: now,
				}
				if err := invRepo.Create(inv); err != nil {
					return err
				}
				continue
			}
			inv.Quantity = inv.Quantity.Add(item.Quantity)
			inv.UpdatedAt = now
			if err := invRepo.UpdateQuantity(inv); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.PurchaseOrderResponse{
		ID:         order.ID,
		SupplierID: order.SupplierID,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}, nil
}

// CreateSalesOrder registra una orden de venta confirmada descontando
// inventario. La validación es secuencial por línea contra el estado ya
// modificado dentro de la transacción: dos líneas del mismo producto ven el
// descuento de la anterior, así que no se puede sobrevender un producto
// dentro de la misma orden. Si alguna línea no tiene existencias suficientes
// la transacción entera se descarta con InsufficientStockError.
func (uc *OrderUseCase) CreateSalesOrder(ctx context.Context, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if err := uc.validateItems(in.Items); err != nil {
		return nil, err
	}

	customerName := in.CustomerName
	if customerName == "" {
		customerName = entity.DefaultCustomerName
	}

	now := time.Now()
	order := &entity.SalesOrder{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		Status:       entity.SalesStatusConfirmed,
		CreatedAt:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.PurchaseOrderRepository,
		salesRepo repository.SalesOrderRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := salesRepo.Create(order); err != nil {
			return err
		}
		for _, item := range in.Items {
			inv, err := invRepo.GetByProductForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if inv == nil || inv.Quantity.LessThan(item.Quantity) {
				return &domain.InsufficientStockError{ProductID: item.ProductID}
			}
			inv.Quantity = inv.Quantity.Sub(item.Quantity)
			inv.UpdatedAt = now
			if err := invRepo.UpdateQuantity(inv); err != nil {
				return err
			}
			line := &entity.SalesOrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if err := salesRepo.CreateItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.SalesOrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
	}, nil
}
