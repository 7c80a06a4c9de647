package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estatus de un lote del inventario.
const (
	LoteDisponible = "Disponible"
	LoteApartado   = "Apartado"
	LoteVendido    = "Vendido"
)

// Lote representa un lote del desarrollo inmobiliario. Las ventas lo
// referencian por nombre, no por ID (el dato histórico funciona así).
type Lote struct {
	ID         string
	NombreLote string
	Precio     decimal.Decimal
	Estatus    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
