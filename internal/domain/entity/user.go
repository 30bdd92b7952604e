package entity

import "time"

// User representa un usuario del sistema. Inmutable tras su creación salvo
// por herramientas administrativas fuera del alcance de la API.
type User struct {
	ID           string
	Username     string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsAdmin      bool
	CreatedAt    time.Time
}
