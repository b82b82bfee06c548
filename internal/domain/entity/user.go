package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User representa un usuario de la tienda (cliente o administrador).
// PasswordHash se guarda con bcrypt; nunca viaja en respuestas.
type User struct {
	ID           int
	Username     string
	PasswordHash string
	Email        string
	FullName     string
	Role         string // admin, customer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
