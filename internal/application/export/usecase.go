package export

import (
	"context"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/analytics"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/repository"
)

// ExportUseCase exportaciones on-demand del listado de productos. Solo
// lectura: reutiliza el repositorio de productos y el resumen del dashboard.
type ExportUseCase struct {
	productRepo repository.ProductRepository
	dashboardUC *analytics.DashboardUseCase
	excel       ProductListExporter
	pdf         StockReportGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	productRepo repository.ProductRepository,
	dashboardUC *analytics.DashboardUseCase,
	excel ProductListExporter,
	pdf StockReportGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		productRepo: productRepo,
		dashboardUC: dashboardUC,
		excel:       excel,
		pdf:         pdf,
	}
}

// ProductsXLSX genera la planilla del listado actual, respetando el filtro de
// estado (active | inactive | all).
func (uc *ExportUseCase) ProductsXLSX(statusFilter string) ([]byte, error) {
	switch statusFilter {
	case "":
		statusFilter = repository.StatusFilterActive
	case repository.StatusFilterActive, repository.StatusFilterInactive, repository.StatusFilterAll:
	default:
		return nil, domain.ErrInvalidInput
	}
	products, err := uc.productRepo.ListAll(statusFilter)
	if err != nil {
		return nil, err
	}
	return uc.excel.ExportProducts(products)
}

// StockReportPDF genera el informe PDF: resumen del dashboard + listado
// completo de productos activos.
func (uc *ExportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	summary, err := uc.dashboardUC.GetSummary(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListAll(repository.StatusFilterActive)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(ctx, summary, products)
}
