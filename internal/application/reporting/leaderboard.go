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
	"github.com/kadosh-sales/crm-api/pkg/money"
)

// LeaderBoard arma el ranking mensual de asesores activos: lo contratado del
// mes y el promedio mensual histórico, cada uno comparado contra el mínimo
// mensual configurado. Ordenado de mayor a menor contratado del mes.
func (s *Service) LeaderBoard(ctx context.Context, year, month int, hoy time.Time) (*dto.LeaderBoardDTO, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}

	asesores := s.store.Asesores()
	ventas := s.store.Ventas()

	minimo := decimal.NewFromInt(s.crm.LimiteMensualMinimo)

	out := &dto.LeaderBoardDTO{Year: year, Month: month}
	for _, a := range asesores {
		if !a.Activo() {
			continue
		}
		totalMes := decimal.Zero
		for _, v := range ventas {
			if v.EtapaProceso != entity.VentaContratado {
				continue
			}
			if !crm.EnMes(v.FechaReferencia(), year, month) {
				continue
			}
			totalMes = totalMes.Add(crm.MontoAsignado(v, a.ID))
		}
		promedio := crm.PromedioMensual(a, ventas, hoy)

		out.Rows = append(out.Rows, dto.LeaderBoardRowDTO{
			AsesorID:         a.ID,
			NombreCompleto:   a.NombreCompleto,
			TotalMes:         totalMes,
			PromedioMensual:  promedio,
			DebajoDelMinimo:  totalMes.LessThan(minimo),
			PromedioEnRiesgo: promedio.LessThan(minimo),
		})
	}

	sort.Slice(out.Rows, func(i, j int) bool {
		cmp := out.Rows[i].TotalMes.Cmp(out.Rows[j].TotalMes)
		if cmp != 0 {
			return cmp > 0
		}
		return out.Rows[i].NombreCompleto < out.Rows[j].NombreCompleto
	})
	return out, nil
}

// VentasEnProceso lista las ventas abiertas visibles para la sesión con su
// antigüedad en días; las que exceden el máximo configurado se marcan para el
// semáforo del tablero. Ordenadas de más vieja a más nueva.
func (s *Service) VentasEnProceso(ctx context.Context, scope auth.Scope, hoy time.Time) ([]dto.VentaEnProcesoDTO, error) {
	ventas := s.ventasVisibles(scope)

	items := make([]dto.VentaEnProcesoDTO, 0, len(ventas))
	for _, v := range ventas {
		if v.EstatusProceso != entity.ProcesoEnProgreso {
			continue
		}
		dias := money.DiasTranscurridos(v.FechaInicioProceso, hoy)
		items = append(items, dto.VentaEnProcesoDTO{
			Venta:             ventaEnProcesoResponse(v),
			DiasTranscurridos: dias,
			ExcedeTiempo:      dias > s.crm.TiempoMaximoProceso,
		})
	}

	// El estado en memoria no garantiza orden; el desempate por ID lo vuelve estable.
	sort.Slice(items, func(i, j int) bool {
		if items[i].DiasTranscurridos != items[j].DiasTranscurridos {
			return items[i].DiasTranscurridos > items[j].DiasTranscurridos
		}
		return items[i].Venta.ID < items[j].Venta.ID
	})
	return items, nil
}

func ventaEnProcesoResponse(v *entity.Venta) dto.VentaResponse {
	out := dto.VentaResponse{
		ID:                 v.ID,
		NombreLote:         v.NombreLote,
		NombreCliente:      v.NombreCliente,
		Monto:              v.Monto,
		FechaInicioProceso: v.FechaInicioProceso.Format(dto.FechaLayout),
		EtapaProceso:       string(v.EtapaProceso),
		AsesorPrincipalID:  v.AsesorPrincipalID,
		AsesorSecundarioID: v.AsesorSecundarioID,
		EstatusProceso:     string(v.EstatusProceso),
		Observaciones:      v.Observaciones,
		CreatedByEmail:     v.CreatedByEmail,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
	if v.FechaCierre != nil {
		out.FechaCierre = v.FechaCierre.Format(dto.FechaLayout)
	}
	return out
}
