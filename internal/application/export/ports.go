package export

import (
	"context"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

// ProductListExporter genera una planilla (xlsx) con el listado de productos.
// Lo implementa infrastructure/excel.
type ProductListExporter interface {
	ExportProducts(products []*entity.Product) ([]byte, error)
}

// StockReportGenerator genera el informe PDF del inventario (listado completo
// más tabla de ítems críticos). Lo implementa infrastructure/pdf.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, summary *dto.DashboardSummaryDTO, products []*entity.Product) ([]byte, error)
}
