package entity

import "time"

// Supplier representa un proveedor; solo el nombre es obligatorio.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Phone     string
	Address   string
	CreatedAt time.Time
}
