package repository

import (
	"context"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// LoteRepository define el puerto de persistencia para el inventario de lotes.
type LoteRepository interface {
	Create(ctx context.Context, lote *entity.Lote) error
	GetByID(ctx context.Context, id string) (*entity.Lote, error)
	List(ctx context.Context) ([]*entity.Lote, error)
	Update(ctx context.Context, lote *entity.Lote) error
	Delete(ctx context.Context, id string) error
}
