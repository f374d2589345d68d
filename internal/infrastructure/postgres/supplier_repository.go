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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (supplierid, suppliername, contactname, phone, email, address)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.SupplierID, supplier.Name, supplier.ContactName,
		supplier.Phone, supplier.Email, supplier.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por id; nil sin error cuando no existe.
func (r *SupplierRepo) GetByID(supplierID string) (*entity.Supplier, error) {
	query := `
		SELECT supplierid, suppliername, contactname, phone, email, address
		FROM suppliers WHERE supplierid = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, supplierID).Scan(
		&s.SupplierID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor existente; false cuando el id no existe.
func (r *SupplierRepo) Update(supplier *entity.Supplier) (bool, error) {
	query := `
		UPDATE suppliers
		SET suppliername = $2, contactname = $3, phone = $4, email = $5, address = $6
		WHERE supplierid = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		supplier.SupplierID, supplier.Name, supplier.ContactName,
		supplier.Phone, supplier.Email, supplier.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, domain.ErrDuplicate
		}
		return false, fmt.Errorf("update supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un proveedor por id; false cuando no existía. Una violación de
// FK (productos que lo referencian) se mapea a ErrConflict.
func (r *SupplierRepo) Delete(supplierID string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE supplierid = $1`, supplierID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrConflict
		}
		return false, fmt.Errorf("delete supplier: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todos los proveedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT supplierid, suppliername, contactname, phone, email, address
		FROM suppliers ORDER BY suppliername`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Address); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// FindConflicts devuelve en una sola consulta los proveedores que chocan por
// nombre, teléfono o email. Teléfono/email vacíos no participan del chequeo;
// excludeID excluye la fila en actualización (vacío en creación).
func (r *SupplierRepo) FindConflicts(name, phone, email, excludeID string) ([]*entity.Supplier, error) {
	query := `
		SELECT supplierid, suppliername, contactname, phone, email, address
		FROM suppliers
		WHERE (suppliername = $1
			OR (NULLIF($2, '') IS NOT NULL AND phone = $2)
			OR (NULLIF($3, '') IS NOT NULL AND email = $3))
		AND ($4 = '' OR supplierid <> $4)`
	rows, err := r.q.Query(context.Background(), query, name, phone, email, excludeID)
	if err != nil {
		return nil, fmt.Errorf("supplier conflicts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Address); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
