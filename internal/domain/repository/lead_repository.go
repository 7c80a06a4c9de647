package repository

import (
	"context"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error

	// CreateBatch inserta varios prospectos en una sola operación (importación).
	CreateBatch(ctx context.Context, leads []*entity.Lead) error

	GetByID(ctx context.Context, id string) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)

	// Update escribe estatus, motivo e interacciones en un solo UPDATE:
	// la transición del prospecto es atómica a nivel de registro.
	Update(ctx context.Context, lead *entity.Lead) error

	Delete(ctx context.Context, id string) error
}
