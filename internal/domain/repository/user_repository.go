package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByUsername devuelve nil, nil si no existe (no es error de infraestructura).
	GetByUsername(username string) (*entity.User, error)
}
