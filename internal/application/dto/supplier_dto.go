package dto

// CreateSupplierRequest entrada para crear un proveedor. Solo el nombre es
// obligatorio; el id lo genera la aplicación.
type CreateSupplierRequest struct {
	Name        string `json:"suppliername" validate:"required"`
	ContactName string `json:"contactname" validate:"omitempty"`
	Phone       string `json:"phone" validate:"omitempty"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"omitempty"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor (todos los campos requeridos).
type UpdateSupplierRequest struct {
	Name        string `json:"suppliername" validate:"required"`
	ContactName string `json:"contactname" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Address     string `json:"address" validate:"required"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	SupplierID  string `json:"supplierid"`
	Name        string `json:"suppliername"`
	ContactName string `json:"contactname"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// DeleteSupplierResponse salida de un borrado: la fila eliminada.
type DeleteSupplierResponse struct {
	Message         string           `json:"message"`
	DeletedSupplier SupplierResponse `json:"deletedSupplier"`
}
