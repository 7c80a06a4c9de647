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

var cien = decimal.NewFromInt(100)

// progreso calcula logrado/meta como porcentaje 0-100, topado en 100.
// Meta cero o negativa da 0: sin meta no hay avance que medir.
func progreso(logrado, meta decimal.Decimal) decimal.Decimal {
	if !meta.IsPositive() {
		return decimal.Zero
	}
	p := logrado.Div(meta).Mul(cien)
	if p.GreaterThan(cien) {
		return cien
	}
	return p.Round(2)
}

// GoalsDashboard arma el tablero de metas de un mes: por cada asesor activo su
// meta, lo contratado, lo pendiente a contratar y el avance (topado en 100),
// más los totales del equipo. Las ventas del mes se seleccionan por la fecha de
// inicio del proceso, igual que el resumen por período. Asesores sin meta
// aparecen con meta 0.
func (s *Service) GoalsDashboard(ctx context.Context, year, month int) (*dto.GoalsDashboardDTO, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}

	asesores := s.store.Asesores()
	ventas := s.store.Ventas()
	goals, err := s.goalRepo.ListByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	metaPorAsesor := make(map[string]decimal.Decimal, len(goals))
	for _, g := range goals {
		metaPorAsesor[g.AsesorID] = g.GoalAmount
	}

	var enMes []*entity.Venta
	for _, v := range ventas {
		if v.EtapaProceso == entity.VentaCancelado {
			continue
		}
		if crm.EnMes(v.FechaInicioProceso, year, month) {
			enMes = append(enMes, v)
		}
	}

	out := &dto.GoalsDashboardDTO{Year: year, Month: month}
	totalMeta := decimal.Zero
	totalLogrado := decimal.Zero
	totalPendiente := decimal.Zero

	for _, a := range asesores {
		if !a.Activo() {
			continue
		}
		meta := metaPorAsesor[a.ID]
		logrado := decimal.Zero
		pendiente := decimal.Zero
		for _, v := range enMes {
			asignado := crm.MontoAsignado(v, a.ID)
			if asignado.IsZero() {
				continue
			}
			if v.EtapaProceso == entity.VentaContratado {
				logrado = logrado.Add(asignado)
			} else if v.EtapaProceso.Pendiente() {
				pendiente = pendiente.Add(asignado)
			}
		}

		out.Rows = append(out.Rows, dto.GoalProgressRowDTO{
			AsesorID:       a.ID,
			NombreCompleto: a.NombreCompleto,
			GoalAmount:     meta,
			AmountPending:  pendiente,
			AmountAchieved: logrado,
			Progress:       progreso(logrado, meta),
		})
		totalMeta = totalMeta.Add(meta)
		totalLogrado = totalLogrado.Add(logrado)
		totalPendiente = totalPendiente.Add(pendiente)
	}

	sort.Slice(out.Rows, func(i, j int) bool {
		cmp := out.Rows[i].AmountAchieved.Cmp(out.Rows[j].AmountAchieved)
		if cmp != 0 {
			return cmp > 0
		}
		return out.Rows[i].NombreCompleto < out.Rows[j].NombreCompleto
	})

	out.TeamTotals = dto.GoalTeamTotalsDTO{
		TotalGoal:     totalMeta,
		TotalAchieved: totalLogrado,
		TotalPending:  totalPendiente,
		TotalProgress: progreso(totalLogrado, totalMeta),
	}
	return out, nil
}
