package entity

// Supplier representa un proveedor. Name, Phone y Email son únicos entre
// proveedores (comparación exacta, sensible a mayúsculas); los campos de
// contacto son opcionales y se guardan vacíos si no vienen.
// Un Supplier referenciado por al menos un Product no puede borrarse.
type Supplier struct {
	SupplierID  string // UUID generado por la aplicación
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
}
