package entity

import "time"

// Roles de usuario para RBAC.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleInspector  = "inspector"
)

// User representa un usuario de la planta (inspector, supervisor o admin).
// Designation es el cargo en texto libre que se muestra en la app móvil.
type User struct {
	ID           string
	Name         string
	Designation  string
	Email        string // único
	PasswordHash string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
