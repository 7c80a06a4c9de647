package crm

import (
	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

var dos = decimal.NewFromInt(2)

// MontoAsignado devuelve la parte del monto de la venta atribuible a un asesor.
// Con asesor secundario la venta siempre se reparte 50/50 entre principal y
// secundario, nunca en otra proporción; sin secundario el principal se lleva todo.
// Un asesor ajeno a la venta recibe cero.
//
// Esta función es la única base de toda cifra por-asesor del sistema
// (metas, comisiones, tableros), por lo que debe ser exacta.
func MontoAsignado(v *entity.Venta, asesorID string) decimal.Decimal {
	if v.AsesorSecundarioID != "" {
		if v.AsesorPrincipalID == asesorID || v.AsesorSecundarioID == asesorID {
			return v.Monto.Div(dos)
		}
		return decimal.Zero
	}
	if v.AsesorPrincipalID == asesorID {
		return v.Monto
	}
	return decimal.Zero
}
