package repository

import (
	"context"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta.
// Las ventas no se eliminan: Cancelado las saca de los reportes.
type VentaRepository interface {
	Create(ctx context.Context, venta *entity.Venta) error
	GetByID(ctx context.Context, id string) (*entity.Venta, error)
	List(ctx context.Context) ([]*entity.Venta, error)

	// ExistsForCliente busca una venta cuyo nombre de cliente coincida
	// (trim + case-insensitive) con el nombre dado.
	ExistsForCliente(ctx context.Context, nombreCliente string) (bool, error)

	// ExistsEnProgresoParaLote indica si algún proceso En Progreso referencia
	// al lote por nombre (guard para no borrar lotes comprometidos).
	ExistsEnProgresoParaLote(ctx context.Context, nombreLote string) (bool, error)

	Update(ctx context.Context, venta *entity.Venta) error
}
