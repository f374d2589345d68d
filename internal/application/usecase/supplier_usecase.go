package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// SupplierUseCase mutaciones de Supplier. Nombre, teléfono y email son únicos
// entre proveedores; un proveedor referenciado por productos no puede borrarse.
type SupplierUseCase struct {
	tx        TxRunner
	suppliers repository.SupplierRepository
	auditRepo repository.AuditLogRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(tx TxRunner, suppliers repository.SupplierRepository, auditRepo repository.AuditLogRepository) *SupplierUseCase {
	return &SupplierUseCase{tx: tx, suppliers: suppliers, auditRepo: auditRepo}
}

// Create crea un proveedor con id generado. Solo el nombre es obligatorio
// (contrato permisivo); ante colisión reporta qué campos chocan, campo por campo.
func (uc *SupplierUseCase) Create(ctx context.Context, actor string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		SupplierID:  uuid.New().String(),
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, suppliers repository.SupplierRepository, _ repository.OrderRepository) error {
		conflicts, err := suppliers.FindConflicts(in.Name, in.Phone, in.Email, "")
		if err != nil {
			return err
		}
		if fields := collidingFields(supplier, conflicts); len(fields) > 0 {
			return &domain.DuplicateFieldsError{Fields: fields}
		}
		return suppliers.Create(supplier)
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "create_supplier "+supplier.SupplierID)
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor. Re-verifica unicidad excluyendo la propia fila.
func (uc *SupplierUseCase) Update(ctx context.Context, actor, supplierID string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier := &entity.Supplier{
		SupplierID:  supplierID,
		Name:        in.Name,
		ContactName: in.ContactName,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
	}
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, suppliers repository.SupplierRepository, _ repository.OrderRepository) error {
		existing, err := suppliers.GetByID(supplierID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		conflicts, err := suppliers.FindConflicts(in.Name, in.Phone, in.Email, supplierID)
		if err != nil {
			return err
		}
		if fields := collidingFields(supplier, conflicts); len(fields) > 0 {
			return &domain.DuplicateFieldsError{Fields: fields}
		}
		ok, err := suppliers.Update(supplier)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "update_supplier "+supplierID)
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor y devuelve la fila borrada. Si algún producto lo
// referencia, falla con ErrConflict y no borra nada.
func (uc *SupplierUseCase) Delete(ctx context.Context, actor, supplierID string) (*dto.SupplierResponse, error) {
	var deleted *entity.Supplier
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, suppliers repository.SupplierRepository, _ repository.OrderRepository) error {
		existing, err := suppliers.GetByID(supplierID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		referenced, err := products.ExistsBySupplier(supplierID)
		if err != nil {
			return err
		}
		if referenced {
			return domain.ErrConflict
		}
		if _, err := suppliers.Delete(supplierID); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "delete_supplier "+supplierID)
	return toSupplierResponse(deleted), nil
}

// GetByID obtiene un proveedor por id.
func (uc *SupplierUseCase) GetByID(supplierID string) (*dto.SupplierResponse, error) {
	supplier, err := uc.suppliers.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve todos los proveedores.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// collidingFields determina, a partir de las filas en conflicto, qué campos del
// candidato chocan. Teléfono y email vacíos no cuentan como colisión.
func collidingFields(candidate *entity.Supplier, conflicts []*entity.Supplier) []string {
	var name, phone, email bool
	for _, c := range conflicts {
		if c.Name == candidate.Name {
			name = true
		}
		if candidate.Phone != "" && c.Phone == candidate.Phone {
			phone = true
		}
		if candidate.Email != "" && c.Email == candidate.Email {
			email = true
		}
	}
	var fields []string
	if name {
		fields = append(fields, "suppliername")
	}
	if phone {
		fields = append(fields, "phone")
	}
	if email {
		fields = append(fields, "email")
	}
	return fields
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		SupplierID:  s.SupplierID,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
	}
}
