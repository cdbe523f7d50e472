// Package pdf implementa el informe de estoque en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total unidades | Modelos | Críticos                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Cat. | Ubic. | Cant | Mín | Estado │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CRÍTICOS: ítems bajo el mínimo con su déficit               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/dto"
	appexport "github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/application/export"
	"github.com/Paulopiazentin/brudden-n-utica-controle-de-estoque/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ appexport.StockReportGenerator = (*MarotoStockReport)(nil)

// MarotoStockReport implementa export.StockReportGenerator usando Maroto v2.
type MarotoStockReport struct{}

// NewMarotoStockReport construye el generador.
func NewMarotoStockReport() *MarotoStockReport { return &MarotoStockReport{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	summary *dto.DashboardSummaryDTO,
	products []*entity.Product,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(tableDetailRow(p))
	}

	if len(summary.CriticalItems) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorAlert, Thickness: 0.3}))
		m.AddRows(criticalTitleRow())
		for _, item := range summary.CriticalItems {
			m.AddRows(criticalItemRow(item))
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Controle de Estoque — Caiaques", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func summaryRow(summary *dto.DashboardSummaryDTO) core.Row {
	return row.New(12).Add(
		metricCol("Total unidades", fmt.Sprintf("%d", summary.TotalUnits), colorPrimary),
		metricCol("Modelos activos", fmt.Sprintf("%d", summary.ModelCount), colorPrimary),
		metricCol("Ítems críticos", fmt.Sprintf("%d", summary.CriticalCount), colorAlert),
	)
}

func metricCol(label, value string, valueColor *props.Color) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Size: 12, Style: fontstyle.Bold, Color: valueColor, Top: 5}),
	)
}

func tableHeaderRow() core.Row {
	head := func(size int, label string, al align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: al, Top: 1,
		}))
	}
	return row.New(7).Add(
		head(2, "Código", align.Left),
		head(4, "Nombre", align.Left),
		head(2, "Ubicación", align.Left),
		head(1, "Cant.", align.Right),
		head(1, "Mín.", align.Right),
		head(2, "Estado", align.Left),
	)
}

func tableDetailRow(p *entity.Product) core.Row {
	estado := "Activo"
	if !p.IsActive() {
		estado = "Inactivo"
	}
	cell := func(size int, value string, al align.Type, c *props.Color) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: al, Color: c, Top: 1}))
	}
	qtyColor := colorGray
	if p.IsActive() && p.IsCritical() {
		qtyColor = colorAlert
	}
	return row.New(6).Add(
		cell(2, p.Code, align.Left, colorGray),
		cell(4, p.Name, align.Left, colorGray),
		cell(2, p.Location, align.Left, colorGray),
		cell(1, fmt.Sprintf("%d", p.Quantity), align.Right, qtyColor),
		cell(1, fmt.Sprintf("%d", p.MinStock), align.Right, colorGray),
		cell(2, estado, align.Left, colorGray),
	)
}

func criticalTitleRow() core.Row {
	return row.New(9).Add(
		col.New(12).Add(
			text.New("Ítems abaixo do estoque mínimo", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorAlert, Top: 2,
			}),
		),
	)
}

func criticalItemRow(item dto.CriticalItemDTO) core.Row {
	detail := fmt.Sprintf("%s — %s: %d de %d (déficit %d)",
		item.Code, item.Name, item.Quantity, item.MinStock, item.Deficit)
	return row.New(6).Add(
		col.New(12).Add(text.New(detail, props.Text{Size: 8, Color: colorAlert, Top: 1})),
	)
}
