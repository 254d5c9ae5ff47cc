package status

import (
	"context"

	"github.com/jhoicas/Calidad-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de estados atado a esa tx. Garantiza atomicidad para el lote
// completo: Commit al terminar sin error, Rollback en cualquier otra salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(statusRepo repository.SerialStatusRepository) error) error
}
