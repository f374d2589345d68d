package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Stubs en memoria para los puertos de persistencia. Mismo contrato que los
// adaptadores de postgres: GetByID devuelve nil (sin error) cuando no hay fila.

type memProductRepo struct {
	byID map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.byID[p.ProductID]; ok {
		return errors.New("duplicate key")
	}
	clone := *p
	r.byID[p.ProductID] = &clone
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *memProductRepo) Update(p *entity.Product) (bool, error) {
	if _, ok := r.byID[p.ProductID]; !ok {
		return false, nil
	}
	clone := *p
	r.byID[p.ProductID] = &clone
	return true, nil
}

func (r *memProductRepo) Delete(id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductID < list[j].ProductID })
	return list, nil
}

func (r *memProductRepo) ExistsBySupplier(supplierID string) (bool, error) {
	for _, p := range r.byID {
		if p.SupplierID == supplierID {
			return true, nil
		}
	}
	return false, nil
}

type memSupplierRepo struct {
	byID map[string]*entity.Supplier
}

func newMemSupplierRepo() *memSupplierRepo {
	return &memSupplierRepo{byID: make(map[string]*entity.Supplier)}
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error {
	clone := *s
	r.byID[s.SupplierID] = &clone
	return nil
}

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) (bool, error) {
	if _, ok := r.byID[s.SupplierID]; !ok {
		return false, nil
	}
	clone := *s
	r.byID[s.SupplierID] = &clone
	return true, nil
}

func (r *memSupplierRepo) Delete(id string) (bool, error) {
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *memSupplierRepo) List() ([]*entity.Supplier, error) {
	list := make([]*entity.Supplier, 0, len(r.byID))
	for _, s := range r.byID {
		clone := *s
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SupplierID < list[j].SupplierID })
	return list, nil
}

func (r *memSupplierRepo) FindConflicts(name, phone, email, excludeID string) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range r.byID {
		if s.SupplierID == excludeID {
			continue
		}
		match := s.Name == name
		if phone != "" && s.Phone == phone {
			match = true
		}
		if email != "" && s.Email == email {
			match = true
		}
		if match {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

type memOrderRepo struct {
	items []*entity.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{} }

func (r *memOrderRepo) Create(o *entity.Order) error {
	clone := *o
	r.items = append(r.items, &clone)
	return nil
}

func (r *memOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.items {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memOrderRepo) Delete(id string) (bool, error) {
	for i, o := range r.items {
		if o.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *memOrderRepo) List() ([]*entity.Order, error) {
	list := make([]*entity.Order, 0, len(r.items))
	for _, o := range r.items {
		clone := *o
		list = append(list, &clone)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

type memAuditRepo struct {
	entries []*entity.AuditLog
	failing bool
}

func newMemAuditRepo() *memAuditRepo { return &memAuditRepo{} }

func (r *memAuditRepo) Create(e *entity.AuditLog) error {
	if r.failing {
		return errors.New("audit store down")
	}
	clone := *e
	r.entries = append(r.entries, &clone)
	return nil
}

func (r *memAuditRepo) List() ([]*entity.AuditLog, error) {
	list := make([]*entity.AuditLog, 0, len(r.entries))
	for _, e := range r.entries {
		clone := *e
		list = append(list, &clone)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// memTx pasa los stubs directamente al callback, sin transacción real.
type memTx struct {
	products  *memProductRepo
	suppliers *memSupplierRepo
	orders    *memOrderRepo
}

func (t *memTx) Run(_ context.Context, fn func(
	products repository.ProductRepository,
	suppliers repository.SupplierRepository,
	orders repository.OrderRepository,
) error) error {
	return fn(t.products, t.suppliers, t.orders)
}

// env agrupa los stubs y los casos de uso listos para los tests.
type env struct {
	products  *memProductRepo
	suppliers *memSupplierRepo
	orders    *memOrderRepo
	audit     *memAuditRepo
	productUC *ProductUseCase
	supplUC   *SupplierUseCase
	orderUC   *OrderUseCase
}

func newEnv() *env {
	products := newMemProductRepo()
	suppliers := newMemSupplierRepo()
	orders := newMemOrderRepo()
	audit := newMemAuditRepo()
	tx := &memTx{products: products, suppliers: suppliers, orders: orders}
	return &env{
		products:  products,
		suppliers: suppliers,
		orders:    orders,
		audit:     audit,
		productUC: NewProductUseCase(tx, products, audit),
		supplUC:   NewSupplierUseCase(tx, suppliers, audit),
		orderUC:   NewOrderUseCase(tx, orders, audit),
	}
}
