package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario. El ProductID lo aporta el
// cliente (código de negocio, no UUID); SupplierID debe resolver a un Supplier
// existente antes de cualquier escritura (integridad referencial en aplicación).
type Product struct {
	ProductID   string
	ProductName string
	Unit        string
	Price       decimal.Decimal // no negativo
	Quantity    int             // no negativo
	SupplierID  string
}
