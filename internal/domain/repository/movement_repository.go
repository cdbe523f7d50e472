package repository

import (
	"time"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

// MovementHistoryItem fila del historial de movimientos con el nombre del
// producto resuelto por join (incluye productos hoy inactivos).
type MovementHistoryItem struct {
	ID          string
	ProductCode string
	ProductName string
	Type        string
	Quantity    int64
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

// MovementRepository define el puerto de persistencia para Movement (DIP).
// Los movimientos son append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(mov *entity.Movement) error
	List(limit, offset int) ([]MovementHistoryItem, error)
	ListByProduct(code string, limit, offset int) ([]MovementHistoryItem, error)
}
