package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// ProductUseCase mutaciones de Product con verificación de integridad:
// el supplierid debe resolver a un proveedor existente y el productid debe ser
// único. Los chequeos y la escritura corren en una misma transacción.
type ProductUseCase struct {
	tx        TxRunner
	products  repository.ProductRepository
	auditRepo repository.AuditLogRepository
}

// NewProductUseCase construye el caso de uso. El repo plano se usa para lecturas;
// las mutaciones pasan por el TxRunner.
func NewProductUseCase(tx TxRunner, products repository.ProductRepository, auditRepo repository.AuditLogRepository) *ProductUseCase {
	return &ProductUseCase{tx: tx, products: products, auditRepo: auditRepo}
}

// Create crea un producto. Falla con ErrInvalidReference si el proveedor no
// existe y con ErrDuplicate si el productid ya está usado.
func (uc *ProductUseCase) Create(ctx context.Context, actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ProductID:   in.ProductID,
		ProductName: in.ProductName,
		Unit:        in.Unit,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		SupplierID:  in.SupplierID,
	}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, suppliers repository.SupplierRepository, _ repository.OrderRepository) error {
		supplier, err := suppliers.GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrInvalidReference
		}
		existing, err := products.GetByID(in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "create_product "+product.ProductID)
	return toProductResponse(product), nil
}

// Update actualiza un producto existente. Re-verifica que el proveedor exista;
// si el productid no existe retorna ErrNotFound.
func (uc *ProductUseCase) Update(ctx context.Context, actor, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Price.IsNegative() || *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ProductID:   productID,
		ProductName: in.ProductName,
		Unit:        in.Unit,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		SupplierID:  in.SupplierID,
	}
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, suppliers repository.SupplierRepository, _ repository.OrderRepository) error {
		supplier, err := suppliers.GetByID(in.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrInvalidReference
		}
		ok, err := products.Update(product)
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
	recordAudit(uc.auditRepo, actor, "update_product "+productID)
	return toProductResponse(product), nil
}

// Delete elimina un producto y devuelve la fila borrada. Las órdenes que lo
// referencian conservan copia denormalizada del nombre, así que no hay cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, actor, productID string) (*dto.ProductResponse, error) {
	var deleted *entity.Product
	err := uc.tx.Run(ctx, func(products repository.ProductRepository, _ repository.SupplierRepository, _ repository.OrderRepository) error {
		existing, err := products.GetByID(productID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if _, err := products.Delete(productID); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "delete_product "+productID)
	return toProductResponse(deleted), nil
}

// GetByID obtiene un producto por id.
func (uc *ProductUseCase) GetByID(productID string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ProductID:   p.ProductID,
		ProductName: p.ProductName,
		Unit:        p.Unit,
		Price:       p.Price,
		Quantity:    p.Quantity,
		SupplierID:  p.SupplierID,
	}
}
