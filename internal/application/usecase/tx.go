package usecase

import (
	"context"

	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Las secuencias "verificar y luego escribir" de los casos de uso corren dentro
// de una transacción para cerrar la ventana de carrera entre el chequeo y la
// escritura; los constraints del store siguen siendo el respaldo definitivo.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		suppliers repository.SupplierRepository,
		orders repository.OrderRepository,
	) error) error
}
