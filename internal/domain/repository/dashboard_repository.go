package repository

import (
	"context"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

// StockTotals agregados del inventario activo.
type StockTotals struct {
	TotalUnits int64 // suma de cantidades de productos activos
	ModelCount int   // número de modelos activos distintos
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	GetStockTotals(ctx context.Context) (StockTotals, error)
	// ListCriticalProducts devuelve los productos activos con quantity < min_stock.
	ListCriticalProducts(ctx context.Context) ([]*entity.Product, error)
	// ListRecentMovements devuelve los últimos movimientos (widget del dashboard).
	ListRecentMovements(ctx context.Context, limit int) ([]MovementHistoryItem, error)
}
