package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// OrderUseCase registro de movimientos de inventario (Add/Export) atribuidos a
// un empleado. Append-only; el borrado por id existe solo como corrección
// administrativa.
type OrderUseCase struct {
	tx        TxRunner
	orders    repository.OrderRepository
	auditRepo repository.AuditLogRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx TxRunner, orders repository.OrderRepository, auditRepo repository.AuditLogRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, orders: orders, auditRepo: auditRepo}
}

// Create registra un movimiento. El tipo debe ser Add o Export; la fecha
// default es la hora actual.
func (uc *OrderUseCase) Create(ctx context.Context, actor string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if !entity.ValidOrderType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	date := time.Now()
	if in.Date != nil {
		date = *in.Date
	}
	order := &entity.Order{
		ID:           uuid.New().String(),
		EmployeeName: in.EmployeeName,
		EmployeeID:   in.EmployeeID,
		Role:         in.Role,
		ProductID:    in.ProductID,
		ProductName:  in.ProductName,
		Quantity:     *in.Quantity,
		Type:         in.Type,
		Date:         date,
	}
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, _ repository.SupplierRepository, orders repository.OrderRepository) error {
		return orders.Create(order)
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "create_order "+order.ID)
	return toOrderResponse(order), nil
}

// Delete elimina un registro por id (corrección administrativa) y lo devuelve.
func (uc *OrderUseCase) Delete(ctx context.Context, actor, id string) (*dto.OrderResponse, error) {
	var deleted *entity.Order
	err := uc.tx.Run(ctx, func(_ repository.ProductRepository, _ repository.SupplierRepository, orders repository.OrderRepository) error {
		existing, err := orders.GetByID(id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		if _, err := orders.Delete(id); err != nil {
			return err
		}
		deleted = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordAudit(uc.auditRepo, actor, "delete_order "+id)
	return toOrderResponse(deleted), nil
}

// List devuelve los movimientos en orden cronológico inverso.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		EmployeeName: o.EmployeeName,
		EmployeeID:   o.EmployeeID,
		Role:         o.Role,
		ProductID:    o.ProductID,
		ProductName:  o.ProductName,
		Quantity:     o.Quantity,
		Type:         o.Type,
		Date:         o.Date,
	}
}
