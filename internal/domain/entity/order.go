package entity

import "time"

// Tipos de movimiento válidos para Order.
const (
	OrderTypeAdd    = "Add"
	OrderTypeExport = "Export"
)

// Order es el registro de un movimiento de inventario atribuido a un empleado.
// ProductName y ProductID se denormalizan: el registro sigue siendo válido como
// histórico aunque el producto se borre después. Append-only; solo se elimina
// por id como corrección administrativa.
type Order struct {
	ID           string // UUID generado por la aplicación
	EmployeeName string
	EmployeeID   string
	Role         string
	ProductID    string
	ProductName  string
	Quantity     int
	Type         string // Add | Export
	Date         time.Time
}

// ValidOrderType indica si el tipo pertenece al conjunto permitido.
func ValidOrderType(t string) bool {
	return t == OrderTypeAdd || t == OrderTypeExport
}
