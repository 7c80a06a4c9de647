package crm

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// NombreLotePorAsignar es el marcador del lote de una venta autogenerada.
const NombreLotePorAsignar = "Lote por Asignar"

// ObservacionVentaAutomatica marca las ventas sintetizadas desde un prospecto.
const ObservacionVentaAutomatica = "Venta creada automáticamente desde el prospecto."

// TransitionResult es la decisión pura de una transición de prospecto:
// el lead ya mutado y, si aplica, la venta que debe crearse como efecto
// secundario. Quien llama persiste el lead como escritura autoritativa y la
// venta como segunda escritura best-effort.
type TransitionResult struct {
	Lead       entity.Lead
	Changed    bool          // false cuando la "transición" es a la misma etapa
	NuevaVenta *entity.Venta // no nil solo al entrar a Apartado sin venta previa del cliente
}

// Transition valida y aplica un cambio de etapa sobre una copia del lead.
//
// Reglas:
//   - Misma etapa: no-op, ni Interacciones ni MotivoDescarte cambian.
//   - Descartado exige motivo no vacío y sobreescribe el anterior.
//   - Al salir de Descartado el motivo se limpia (el motivo solo existe
//     mientras el prospecto está descartado).
//   - Todo cambio real suma exactamente 1 a Interacciones.
//   - Al entrar a Apartado, si ventaExiste es false se sintetiza una venta
//     con monto 0 y el asesor del lead. Quien llama resuelve ventaExiste con
//     la heurística de VentaExisteParaCliente (en memoria o en SQL).
func Transition(lead entity.Lead, nueva entity.StatusProspecto, motivo string, ventaExiste bool, hoy time.Time) (TransitionResult, error) {
	if !nueva.Valida() {
		return TransitionResult{}, domain.ErrInvalidInput
	}
	if nueva == lead.Estatus {
		return TransitionResult{Lead: lead, Changed: false}, nil
	}
	if nueva == entity.ProspectoDescartado && strings.TrimSpace(motivo) == "" {
		return TransitionResult{}, domain.ErrMotivoDescarteVacio
	}

	res := TransitionResult{Changed: true}

	if nueva == entity.ProspectoApartado && !ventaExiste {
		res.NuevaVenta = &entity.Venta{
			NombreLote:         NombreLotePorAsignar,
			NombreCliente:      lead.NombreCompleto,
			Monto:              decimal.Zero,
			FechaInicioProceso: hoy,
			EtapaProceso:       entity.VentaApartado,
			AsesorPrincipalID:  lead.AsesorID,
			EstatusProceso:     DeriveEstatusProceso(entity.VentaApartado),
			Observaciones:      ObservacionVentaAutomatica,
			CreatedByEmail:     lead.CreatedByEmail,
		}
	}

	lead.Estatus = nueva
	lead.Interacciones++
	switch nueva {
	case entity.ProspectoDescartado:
		lead.MotivoDescarte = strings.TrimSpace(motivo)
	default:
		lead.MotivoDescarte = ""
	}

	res.Lead = lead
	return res, nil
}

// VentaExisteParaCliente busca una venta cuyo nombre de cliente coincida con el
// nombre dado. La coincidencia es por igualdad trim + case-insensitive: es una
// heurística sobre nombres, no una llave foránea, y los datos existentes
// dependen de que siga siendo así.
func VentaExisteParaCliente(ventas []*entity.Venta, nombre string) bool {
	objetivo := strings.ToLower(strings.TrimSpace(nombre))
	for _, v := range ventas {
		if strings.ToLower(strings.TrimSpace(v.NombreCliente)) == objetivo {
			return true
		}
	}
	return false
}
