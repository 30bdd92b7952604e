package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// InventoryUseCase CRUD directo sobre registros de inventario.
// Los ajustes por órdenes pasan por el motor de órdenes, no por aquí.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Create crea un registro de inventario con location por defecto MAIN.
func (uc *InventoryUseCase) Create(in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	location := in.Location
	if location == "" {
		location = entity.DefaultLocation
	}
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Location:  location,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// List lista registros de inventario (público, paginado).
func (uc *InventoryUseCase) List(limit, offset int) ([]dto.InventoryResponse, error) {
	records, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *toInventoryResponse(r))
	}
	return out, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	return &dto.InventoryResponse{
		ID:        inv.ID,
		ProductID: inv.ProductID,
		Quantity:  inv.Quantity,
		Location:  inv.Location,
		UpdatedAt: inv.UpdatedAt,
	}
}
