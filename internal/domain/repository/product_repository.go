package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(productID string) (*entity.Product, error)
	Update(product *entity.Product) (bool, error)
	Delete(productID string) (bool, error)
	List() ([]*entity.Product, error)
	// ExistsBySupplier indica si algún producto referencia al proveedor.
	ExistsBySupplier(supplierID string) (bool, error)
}
