// Package pdf genera el reporte de comisiones del mes como documento A4:
//
//	┌─────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Comisiones + Mes/Año                │
//	│  ───────────────────────────────────────────────────────│
//	│  TABLA: Asesor | Monto Contratado | Comisión            │
//	│  ───────────────────────────────────────────────────────│
//	│  TOTALES: Total contratado / Total comisiones           │
//	└─────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/reporting"
	"github.com/kadosh-sales/crm-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var meses = [...]string{"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"}

var _ reporting.CommissionPDF = (*CommissionGenerator)(nil)

// CommissionGenerator implementa reporting.CommissionPDF usando Maroto v2.
type CommissionGenerator struct{}

// NewCommissionGenerator construye el generador.
func NewCommissionGenerator() *CommissionGenerator { return &CommissionGenerator{} }

// Render genera el PDF del reporte y devuelve sus bytes.
func (g *CommissionGenerator) Render(report dto.CommissionReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Comisiones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report.Year, report.Month))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range report.Rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(year, month int) core.Row {
	periodo := fmt.Sprintf("%s %d", meses[month], year)
	return row.New(16).Add(
		col.New(8).Add(
			text.New("REPORTE DE COMISIONES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Equipo de ventas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(periodo, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 4,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Asesor", 6, align.Left),
		h("Monto Contratado", 3, align.Right),
		h("Comisión", 3, align.Right),
	)
}

func detailRow(r dto.CommissionRowDTO) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(r.NombreCompleto, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		col.New(3).Add(text.New(money.FormatMXN(r.MontoTotalVendido), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(3).Add(text.New(money.FormatMXN(r.Comision), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func totalsRow(rows []dto.CommissionRowDTO) core.Row {
	totalVendido := decimal.Zero
	totalComision := decimal.Zero
	for _, r := range rows {
		totalVendido = totalVendido.Add(r.MontoTotalVendido)
		totalComision = totalComision.Add(r.Comision)
	}
	bold := func(s string, a align.Type) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a,
			Color: colorPrimary, Top: 2, Right: 1, Left: 1,
		})
	}
	return row.New(10).Add(
		col.New(6).Add(bold("TOTAL", align.Left)),
		col.New(3).Add(bold(money.FormatMXN(totalVendido), align.Right)),
		col.New(3).Add(bold(money.FormatMXN(totalComision), align.Right)),
	)
}
