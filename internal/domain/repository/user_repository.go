package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// El core solo lee identidades; el alta viene de un camino externo.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
	FindByID(id string) (*entity.User, error)
}
