package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(supplierID string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) (bool, error)
	Delete(supplierID string) (bool, error)
	List() ([]*entity.Supplier, error)
	// FindConflicts devuelve los proveedores cuyo nombre, teléfono o email
	// coinciden con los valores dados, en una sola consulta (excludeID excluye
	// la fila que se está actualizando; vacío en creación).
	FindConflicts(name, phone, email, excludeID string) ([]*entity.Supplier, error)
}
