package postgres

import (
	"context"
	"fmt"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla movements es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta un movimiento.
func (r *MovementRepo) Create(mov *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_code, type, quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProductCode, mov.Type, mov.Quantity, mov.Notes, mov.CreatedBy, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

const movementHistoryQuery = `
	SELECT m.id, m.product_code, p.name, m.type, m.quantity, m.notes, m.created_by, m.created_at
	FROM movements m
	JOIN products p ON p.code = m.product_code`

// List devuelve el historial completo, más reciente primero. Incluye
// movimientos de productos hoy inactivos.
func (r *MovementRepo) List(limit, offset int) ([]repository.MovementHistoryItem, error) {
	query := movementHistoryQuery + `
	ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	return r.queryHistory(query, limit, offset)
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *MovementRepo) ListByProduct(code string, limit, offset int) ([]repository.MovementHistoryItem, error) {
	query := movementHistoryQuery + `
	WHERE m.product_code = $1
	ORDER BY m.created_at DESC LIMIT $2 OFFSET $3`
	return r.queryHistory(query, code, limit, offset)
}

func (r *MovementRepo) queryHistory(query string, args ...any) ([]repository.MovementHistoryItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementHistoryItem
	for rows.Next() {
		var m repository.MovementHistoryItem
		if err := rows.Scan(&m.ID, &m.ProductCode, &m.ProductName, &m.Type, &m.Quantity, &m.Notes, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
