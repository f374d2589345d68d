package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin            = "Admin"
	RoleWarehouseManager = "Warehouse_Manager"
	RoleStaff            = "Staff"
)

// User representa una identidad del sistema. El alta de usuarios ocurre por un
// camino de aprovisionamiento externo; el core solo los lee para autenticar.
type User struct {
	UserID       string
	Username     string // único, sin case folding
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FullName     string
	Role         string // Admin, Warehouse_Manager, Staff
	CreatedAt    time.Time
}

// ValidRole indica si el rol pertenece al conjunto enumerado.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWarehouseManager || role == RoleStaff
}
