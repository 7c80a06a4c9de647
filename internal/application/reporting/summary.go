package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// Summary agrupa las ventas por período (mes, trimestre o año) usando la fecha
// de inicio del proceso de cada venta; una venta contratada meses después sigue
// contando en el período en que arrancó. Las canceladas no aparecen. Cuando hay
// filtro de asesor (explícito del líder, o implícito en sesiones de asesor) los
// montos son la parte asignada al asesor, no el total de la venta.
func (s *Service) Summary(ctx context.Context, scope auth.Scope, req dto.SummaryRequest) (*dto.SummaryResponse, error) {
	gran := crm.Granularity(req.PeriodType)
	if req.PeriodType == "" {
		gran = crm.Mensual
	}
	if !gran.Valida() {
		return nil, domain.ErrInvalidInput
	}

	var desde, hasta *time.Time
	if req.StartDate != "" {
		t, err := time.Parse(dto.FechaLayout, req.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		desde = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(dto.FechaLayout, req.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hasta = &t
	}

	// Solo el líder filtra por un asesor arbitrario; el asesor ya viene
	// restringido a lo suyo por el scope.
	asesorID := ""
	if scope.EsLider() {
		asesorID = req.AsesorID
	} else if req.AsesorID != "" && req.AsesorID != scope.UserID {
		return nil, domain.ErrForbidden
	}

	ventas := s.ventasVisibles(scope)

	buckets := make(map[string]*dto.SummaryRowDTO)
	asesoresVistos := make(map[string]struct{})
	totalContratado := decimal.Zero
	totalPendiente := decimal.Zero

	for _, v := range ventas {
		if v.EtapaProceso == entity.VentaCancelado {
			continue
		}
		inicio := v.FechaInicioProceso
		if desde != nil && inicio.Before(*desde) {
			continue
		}
		if hasta != nil && inicio.After(*hasta) {
			continue
		}
		if asesorID != "" && v.AsesorPrincipalID != asesorID && v.AsesorSecundarioID != asesorID {
			continue
		}

		monto := v.Monto
		if asesorID != "" {
			monto = crm.MontoAsignado(v, asesorID)
		} else if !scope.EsLider() {
			monto = crm.MontoAsignado(v, scope.UserID)
		}

		key := crm.PeriodKey(inicio, gran)
		row, ok := buckets[key]
		if !ok {
			row = &dto.SummaryRowDTO{
				Period:        key,
				TotalAmount:   decimal.Zero,
				PendingAmount: decimal.Zero,
			}
			buckets[key] = row
		}

		if v.EtapaProceso == entity.VentaContratado {
			row.TotalAmount = row.TotalAmount.Add(monto)
			row.DealCount++
			totalContratado = totalContratado.Add(monto)
		} else if v.EtapaProceso.Pendiente() {
			row.PendingAmount = row.PendingAmount.Add(monto)
			totalPendiente = totalPendiente.Add(monto)
		}

		asesoresVistos[v.AsesorPrincipalID] = struct{}{}
		if v.AsesorSecundarioID != "" {
			asesoresVistos[v.AsesorSecundarioID] = struct{}{}
		}
	}

	rows := make([]dto.SummaryRowDTO, 0, len(buckets))
	for _, row := range buckets {
		rows = append(rows, *row)
	}
	// Las llaves llevan cero a la izquierda: el orden lexicográfico es cronológico.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })

	divisor := int64(len(asesoresVistos))
	if divisor < 1 {
		divisor = 1
	}

	return &dto.SummaryResponse{
		Rows: rows,
		Totals: dto.SummaryTotalsDTO{
			TotalAmount:       totalContratado,
			TotalPending:      totalPendiente,
			AveragePerAdvisor: totalContratado.Div(decimal.NewFromInt(divisor)),
		},
	}, nil
}
