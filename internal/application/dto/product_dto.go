package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El productid lo aporta
// el cliente; price y quantity pueden ser cero pero no negativos ni ausentes.
type CreateProductRequest struct {
	ProductID   string           `json:"productid" validate:"required"`
	ProductName string           `json:"productname" validate:"required"`
	Unit        string           `json:"unit" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required,min=0"`
	SupplierID  string           `json:"supplierid" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (todos los campos requeridos).
type UpdateProductRequest struct {
	ProductName string           `json:"productname" validate:"required"`
	Unit        string           `json:"unit" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required,min=0"`
	SupplierID  string           `json:"supplierid" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ProductID   string          `json:"productid"`
	ProductName string          `json:"productname"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	SupplierID  string          `json:"supplierid"`
}

// DeleteProductResponse salida de un borrado: la fila eliminada.
type DeleteProductResponse struct {
	Message        string          `json:"message"`
	DeletedProduct ProductResponse `json:"deletedProduct"`
}
