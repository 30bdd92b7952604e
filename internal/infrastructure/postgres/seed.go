package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SeedDemoData carga los datos de demostración si no existen todavía:
// usuario admin/admin123, dos productos y un proveedor. Idempotente.
func SeedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	userRepo := NewUserRepository(pool)
	productRepo := NewProductRepository(pool)
	supplierRepo := NewSupplierRepository(pool)
	now := time.Now()

	admin, err := userRepo.GetByUsername("admin")
	if err != nil {
		return fmt.Errorf("seed: buscar admin: %w", err)
	}
	if admin == nil {
		hash, err := auth.HashPassword("admin123")
		if err != nil {
			return fmt.Errorf("seed: hashear password: %w", err)
		}
		if err := userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     "admin",
			PasswordHash: hash,
			IsAdmin:      true,
			CreatedAt:    now,
		}); err != nil {
			return fmt.Errorf("seed: crear admin: %w", err)
		}
	}

	demoProducts := []*entity.Product{
		{SKU: "SKU-001", Name: "Widget A", Description: "Basic widget", UnitPrice: decimal.RequireFromString("9.99")},
		{SKU: "SKU-002", Name: "Widget B", Description: "Advanced widget", UnitPrice: decimal.RequireFromString("19.99")},
	}
	for _, p := range demoProducts {
		existing, err := productRepo.GetBySKU(p.SKU)
		if err != nil {
			return fmt.Errorf("seed: buscar producto %s: %w", p.SKU, err)
		}
		if existing != nil {
			continue
		}
		p.ID = uuid.New().String()
		p.CreatedAt = now
		if err := productRepo.Create(p); err != nil {
			return fmt.Errorf("seed: crear producto %s: %w", p.SKU, err)
		}
	}

	suppliers, err := supplierRepo.List(1, 0)
	if err != nil {
		return fmt.Errorf("seed: listar proveedores: %w", err)
	}
	if len(suppliers) == 0 {
		if err := supplierRepo.Create(&entity.Supplier{
			ID:        uuid.New().String(),
			Name:      "Acme Supplies",
			Contact:   "Jane",
			Phone:     "123456789",
			Address:   "123 Road",
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("seed: crear proveedor: %w", err)
		}
	}

	return nil
}
