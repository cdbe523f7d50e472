package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el dashboard de estoque.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de dashboard.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// GetStockTotals suma unidades y cuenta modelos, solo productos activos.
func (r *DashboardRepo) GetStockTotals(ctx context.Context) (repository.StockTotals, error) {
	const query = `
	SELECT COALESCE(SUM(quantity), 0) AS total_units,
	       COUNT(*)                   AS model_count
	FROM products
	WHERE status = 'active'`

	var totals repository.StockTotals
	if err := r.pool.QueryRow(ctx, query).Scan(&totals.TotalUnits, &totals.ModelCount); err != nil {
		return repository.StockTotals{}, fmt.Errorf("dashboard.GetStockTotals: %w", err)
	}
	return totals, nil
}

// ListCriticalProducts devuelve los productos activos con quantity < min_stock,
// ordenados por déficit descendente. La comparación es estricta: quantity igual
// al mínimo no es crítico.
func (r *DashboardRepo) ListCriticalProducts(ctx context.Context) ([]*entity.Product, error) {
	const query = `
	SELECT ` + productColumns + `
	FROM products
	WHERE status = 'active' AND quantity < min_stock
	ORDER BY (min_stock - quantity) DESC, code`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListCriticalProducts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Color, &p.Category, &p.Location,
			&p.Quantity, &p.MinStock, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan critical product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListRecentMovements devuelve los últimos movimientos para el widget del dashboard.
func (r *DashboardRepo) ListRecentMovements(ctx context.Context, limit int) ([]repository.MovementHistoryItem, error) {
	const query = movementHistoryQuery + `
	ORDER BY m.created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ListRecentMovements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementHistoryItem
	for rows.Next() {
		var m repository.MovementHistoryItem
		if err := rows.Scan(&m.ID, &m.ProductCode, &m.ProductName, &m.Type, &m.Quantity, &m.Notes, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
