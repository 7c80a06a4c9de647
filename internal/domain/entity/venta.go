package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa la compra de un lote, con su propio proceso de cierre
// independiente del embudo de prospectos.
type Venta struct {
	ID                 string
	NombreLote         string
	NombreCliente      string
	Monto              decimal.Decimal // no negativo
	FechaInicioProceso time.Time
	EtapaProceso       SaleStage
	FechaCierre        *time.Time // opcional; no deriva el estatus por sí sola
	AsesorPrincipalID  string
	AsesorSecundarioID string // vacío si la venta es de un solo asesor
	EstatusProceso     EstatusProceso // derivado de EtapaProceso, ver crm.DeriveEstatusProceso
	Observaciones      string
	CreatedByEmail     string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FechaReferencia devuelve la fecha de cierre si existe, si no la de inicio.
// Es la fecha con la que comisiones y el tablero del líder ubican la venta en un mes.
func (v *Venta) FechaReferencia() time.Time {
	if v.FechaCierre != nil {
		return *v.FechaCierre
	}
	return v.FechaInicioProceso
}
