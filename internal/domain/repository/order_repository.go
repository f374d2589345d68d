package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los registros son append-only: no hay Update.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	Delete(id string) (bool, error)
	// List devuelve los movimientos en orden cronológico inverso.
	List() ([]*entity.Order, error)
}
