// Package analytics contiene los casos de uso de solo lectura del Dashboard
// de Estoque.
package analytics

import (
	"context"
	"fmt"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

const dashboardRecentMovements = 10 // filas del widget de últimos movimientos

// DashboardUseCase genera el resumen del inventario activo: total de
// unidades, número de modelos y los ítems críticos (quantity < min_stock).
//
// Fuente de datos: DashboardRepository (consultas read-only). Los productos
// inactivos quedan fuera de todos los agregados.
type DashboardUseCase struct {
	dashboardRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashboardRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashboardRepo: dashboardRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. GetStockTotals        → TotalUnits + ModelCount
//  2. ListCriticalProducts  → CriticalItems + CriticalCount
//  3. ListRecentMovements   → RecentMovements
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type totalsResult struct {
		totals repository.StockTotals
		err    error
	}
	type criticalResult struct {
		items []*entity.Product
		err   error
	}
	type recentResult struct {
		items []repository.MovementHistoryItem
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	criticalCh := make(chan criticalResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		totals, err := uc.dashboardRepo.GetStockTotals(ctx)
		totalsCh <- totalsResult{totals, err}
	}()
	go func() {
		items, err := uc.dashboardRepo.ListCriticalProducts(ctx)
		criticalCh <- criticalResult{items, err}
	}()
	go func() {
		items, err := uc.dashboardRepo.ListRecentMovements(ctx, dashboardRecentMovements)
		recentCh <- recentResult{items, err}
	}()

	totals := <-totalsCh
	critical := <-criticalCh
	recent := <-recentCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de stock: %w", totals.err)
	}
	if critical.err != nil {
		return nil, fmt.Errorf("dashboard: ítems críticos: %w", critical.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos recientes: %w", recent.err)
	}

	criticalItems := make([]dto.CriticalItemDTO, 0, len(critical.items))
	for _, p := range critical.items {
		criticalItems = append(criticalItems, dto.CriticalItemDTO{
			Code:     p.Code,
			Name:     p.Name,
			Category: p.Category,
			Location: p.Location,
			Quantity: p.Quantity,
			MinStock: p.MinStock,
			Deficit:  p.MinStock - p.Quantity,
		})
	}

	recentMovs := make([]dto.MovementResponse, 0, len(recent.items))
	for _, m := range recent.items {
		recentMovs = append(recentMovs, dto.MovementResponse{
			ID:          m.ID,
			ProductCode: m.ProductCode,
			ProductName: m.ProductName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Notes:       m.Notes,
			CreatedBy:   m.CreatedBy,
			CreatedAt:   m.CreatedAt,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalUnits:      totals.totals.TotalUnits,
		ModelCount:      totals.totals.ModelCount,
		CriticalCount:   len(criticalItems),
		CriticalItems:   criticalItems,
		RecentMovements: recentMovs,
	}, nil
}
