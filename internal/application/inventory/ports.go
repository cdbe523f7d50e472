package inventory

import (
	"context"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el par de escrituras del
// movimiento (insert + update de cantidad) sea atómico: o se ven ambas o
// ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
