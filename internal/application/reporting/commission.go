package reporting

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// CommissionPDF renderiza el reporte de comisiones de un mes como documento.
// La implementación vive en infraestructura (maroto).
type CommissionPDF interface {
	Render(report dto.CommissionReportDTO) ([]byte, error)
}

// Commissions calcula la comisión de cada asesor para un mes: el porcentaje
// configurado sobre su parte asignada de las ventas Contratado cuya fecha de
// referencia cae en ese mes. Solo lo consulta el líder; ordenado de mayor a
// menor comisión.
func (s *Service) Commissions(ctx context.Context, year, month int) (*dto.CommissionReportDTO, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}

	asesores := s.store.Asesores()
	ventas := s.store.Ventas()

	var enMes []*entity.Venta
	for _, v := range ventas {
		if v.EtapaProceso != entity.VentaContratado {
			continue
		}
		if !crm.EnMes(v.FechaReferencia(), year, month) {
			continue
		}
		enMes = append(enMes, v)
	}

	porcentaje := decimal.NewFromFloat(s.crm.PorcentajeComision)

	rows := make([]dto.CommissionRowDTO, 0, len(asesores))
	for _, a := range asesores {
		total := decimal.Zero
		for _, v := range enMes {
			total = total.Add(crm.MontoAsignado(v, a.ID))
		}
		if total.IsZero() {
			continue
		}
		rows = append(rows, dto.CommissionRowDTO{
			AsesorID:          a.ID,
			NombreCompleto:    a.NombreCompleto,
			MontoTotalVendido: total,
			Comision:          total.Mul(porcentaje),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		cmp := rows[i].Comision.Cmp(rows[j].Comision)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].NombreCompleto < rows[j].NombreCompleto
	})

	return &dto.CommissionReportDTO{Year: year, Month: month, Rows: rows}, nil
}
