package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLoteRequest alta de un lote del inventario.
type CreateLoteRequest struct {
	NombreLote string          `json:"nombreLote" validate:"required"`
	Precio     decimal.Decimal `json:"precio"`
	Estatus    string          `json:"estatus" validate:"omitempty,oneof=Disponible Apartado Vendido"`
}

// UpdateLoteRequest edición parcial de un lote.
type UpdateLoteRequest struct {
	NombreLote *string          `json:"nombreLote"`
	Precio     *decimal.Decimal `json:"precio"`
	Estatus    *string          `json:"estatus"`
}

// LoteResponse salida de un lote.
type LoteResponse struct {
	ID         string          `json:"id"`
	NombreLote string          `json:"nombreLote"`
	Precio     decimal.Decimal `json:"precio"`
	Estatus    string          `json:"estatus"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
