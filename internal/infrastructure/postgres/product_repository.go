package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Mapea los constraints del esquema a los
// errores de dominio por si la carrera gana al pre-chequeo del use case.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (productid, productname, unit, price, quantity, supplierid)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.ProductName, product.Unit,
		product.Price, product.Quantity, product.SupplierID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidReference
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id; nil sin error cuando no existe.
func (r *ProductRepo) GetByID(productID string) (*entity.Product, error) {
	query := `
		SELECT productid, productname, unit, price, quantity, supplierid
		FROM products WHERE productid = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&p.ProductID, &p.ProductName, &p.Unit, &p.Price, &p.Quantity, &p.SupplierID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente; false cuando el id no existe.
func (r *ProductRepo) Update(product *entity.Product) (bool, error) {
	query := `
		UPDATE products
		SET productname = $2, unit = $3, price = $4, quantity = $5, supplierid = $6
		WHERE productid = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ProductID, product.ProductName, product.Unit,
		product.Price, product.Quantity, product.SupplierID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrInvalidReference
		}
		return false, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un producto por id; false cuando no existía.
func (r *ProductRepo) Delete(productID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE productid = $1`, productID)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT productid, productname, unit, price, quantity, supplierid
		FROM products ORDER BY productid`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ProductID, &p.ProductName, &p.Unit, &p.Price, &p.Quantity, &p.SupplierID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ExistsBySupplier indica si algún producto referencia al proveedor.
func (r *ProductRepo) ExistsBySupplier(supplierID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM products WHERE supplierid = $1)`, supplierID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("products by supplier: %w", err)
	}
	return exists, nil
}
