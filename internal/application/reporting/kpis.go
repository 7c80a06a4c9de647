package reporting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// KPIs arma los indicadores del embudo para el dashboard: totales, tasa de
// conversión a Apartado, interacciones y las distribuciones por mes de
// prospección y por lugar. Respeta la visibilidad de la sesión.
func (s *Service) KPIs(ctx context.Context, scope auth.Scope) (*dto.KPIsDTO, error) {
	leads := s.leadsVisibles(scope)
	citas := s.store.Citas()

	numeroCitas := 0
	for _, c := range citas {
		if scope.PuedeVerCita(c) {
			numeroCitas++
		}
	}

	total := len(leads)
	apartados := 0
	interacciones := 0
	porMes := make(map[string]int)
	porLugar := make(map[string]int)

	for _, l := range leads {
		if l.Estatus == entity.ProspectoApartado {
			apartados++
		}
		interacciones += l.Interacciones

		mes := fmt.Sprintf("%04d-%02d", l.FechaProspeccion.Year(), int(l.FechaProspeccion.Month()))
		porMes[mes]++

		lugar := l.LugarProspeccion
		if lugar == "" {
			lugar = "Sin lugar"
		}
		porLugar[lugar]++
	}

	tasa := decimal.Zero
	if total > 0 {
		tasa = decimal.NewFromInt(int64(apartados) * 100).
			Div(decimal.NewFromInt(int64(total))).Round(2)
	}

	return &dto.KPIsDTO{
		TotalProspectos:    total,
		NumeroCitas:        numeroCitas,
		TasaConversion:     tasa,
		TotalInteracciones: interacciones,
		ProspectosPorMes:   conteosPorLlave(porMes),
		LugarProspeccion:   conteosPorValor(porLugar),
	}, nil
}

// conteosPorLlave ordena cronológicamente (la llave YYYY-MM ordena lexicográfico).
func conteosPorLlave(m map[string]int) []dto.ConteoDTO {
	out := make([]dto.ConteoDTO, 0, len(m))
	for k, v := range m {
		out = append(out, dto.ConteoDTO{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// conteosPorValor ordena de mayor a menor conteo, desempatando por nombre.
func conteosPorValor(m map[string]int) []dto.ConteoDTO {
	out := make([]dto.ConteoDTO, 0, len(m))
	for k, v := range m {
		out = append(out, dto.ConteoDTO{Name: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// MesActual es un helper para handlers que reciben year/month opcionales.
func MesActual(hoy time.Time) (int, int) {
	return hoy.Year(), int(hoy.Month())
}
