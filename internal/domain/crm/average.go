package crm

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// PromedioMensual calcula el promedio mensual histórico de ventas de un asesor,
// siempre excluyendo el mes en curso (todavía incompleto).
//
// Ventana según antigüedad:
//   - Asesor con un año o más (FechaIngreso anterior a hoy menos un año):
//     solo ventas del año en curso; divisor = meses completos transcurridos
//     del año antes del mes actual (0 en enero).
//   - Asesor con menos de un año: todas sus ventas; divisor = meses calendario
//     entre el mes de ingreso y el mes actual (puede ser 0 si ingresó este mes).
//
// Solo cuentan ventas Contratado donde el asesor es principal o secundario,
// con fecha de inicio de proceso estrictamente anterior al primer día del mes
// actual; cada una aporta su MontoAsignado. Divisor menor o igual a 0 da 0.
func PromedioMensual(asesor *entity.Asesor, ventas []*entity.Venta, hoy time.Time) decimal.Decimal {
	inicioMesActual := InicioDeMes(hoy)

	var calificadas []*entity.Venta
	for _, v := range ventas {
		if v.AsesorPrincipalID != asesor.ID && v.AsesorSecundarioID != asesor.ID {
			continue
		}
		if v.EtapaProceso != entity.VentaContratado {
			continue
		}
		if !v.FechaInicioProceso.Before(inicioMesActual) {
			continue
		}
		calificadas = append(calificadas, v)
	}

	haceUnAnio := hoy.AddDate(-1, 0, 0)

	var ventana []*entity.Venta
	var divisor int
	if asesor.FechaIngreso.Before(haceUnAnio) {
		inicioAnio := time.Date(hoy.Year(), time.January, 1, 0, 0, 0, 0, hoy.Location())
		for _, v := range calificadas {
			if !v.FechaInicioProceso.Before(inicioAnio) {
				ventana = append(ventana, v)
			}
		}
		divisor = int(hoy.Month()) - 1 // meses completos del año antes del mes actual
	} else {
		ventana = calificadas
		divisor = MesesEntre(asesor.FechaIngreso, hoy)
	}

	if divisor <= 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, v := range ventana {
		total = total.Add(MontoAsignado(v, asesor.ID))
	}
	return total.Div(decimal.NewFromInt(int64(divisor)))
}
