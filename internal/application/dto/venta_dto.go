package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVentaRequest entrada para registrar una venta manualmente.
type CreateVentaRequest struct {
	NombreLote         string          `json:"nombreLote" validate:"required"`
	NombreCliente      string          `json:"nombreCliente" validate:"required"`
	Monto              decimal.Decimal `json:"monto" validate:"required"`
	FechaInicioProceso string          `json:"fechaInicioProceso" validate:"required"` // YYYY-MM-DD
	EtapaProceso       string          `json:"etapaProceso" validate:"required"`
	FechaCierre        string          `json:"fechaCierre"`
	AsesorPrincipalID  string          `json:"asesorPrincipalId" validate:"required"`
	AsesorSecundarioID string          `json:"asesorSecundarioId"`
	Observaciones      string          `json:"observaciones" validate:"omitempty,max=50"`
}

// UpdateVentaRequest entrada parcial para editar una venta. El estatus del
// proceso no es editable: se deriva de la etapa en cada escritura.
type UpdateVentaRequest struct {
	NombreLote         *string          `json:"nombreLote"`
	NombreCliente      *string          `json:"nombreCliente"`
	Monto              *decimal.Decimal `json:"monto"`
	FechaInicioProceso *string          `json:"fechaInicioProceso"`
	EtapaProceso       *string          `json:"etapaProceso"`
	FechaCierre        *string          `json:"fechaCierre"`
	AsesorPrincipalID  *string          `json:"asesorPrincipalId"`
	AsesorSecundarioID *string          `json:"asesorSecundarioId"`
	Observaciones      *string          `json:"observaciones"`
}

// VentaResponse salida de una venta.
type VentaResponse struct {
	ID                 string          `json:"id"`
	NombreLote         string          `json:"nombreLote"`
	NombreCliente      string          `json:"nombreCliente"`
	Monto              decimal.Decimal `json:"monto"`
	FechaInicioProceso string          `json:"fechaInicioProceso"`
	EtapaProceso       string          `json:"etapaProceso"`
	FechaCierre        string          `json:"fechaCierre,omitempty"`
	AsesorPrincipalID  string          `json:"asesorPrincipalId"`
	AsesorSecundarioID string          `json:"asesorSecundarioId,omitempty"`
	EstatusProceso     string          `json:"estatusProceso"`
	Observaciones      string          `json:"observaciones,omitempty"`
	CreatedByEmail     string          `json:"createdByEmail"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}
