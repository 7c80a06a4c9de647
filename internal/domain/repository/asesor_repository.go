package repository

import (
	"context"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// AsesorRepository define el puerto de persistencia para Asesor.
// No hay Delete: los asesores solo se desactivan.
type AsesorRepository interface {
	Create(ctx context.Context, asesor *entity.Asesor) error
	GetByID(ctx context.Context, id string) (*entity.Asesor, error)

	// GetByEmail busca por email normalizado (trim + lowercase en la consulta).
	GetByEmail(ctx context.Context, email string) (*entity.Asesor, error)

	// ExistsEmail indica si otro asesor (id distinto de excludeID) ya usa el
	// email; la comparación es case-insensitive y con trim.
	ExistsEmail(ctx context.Context, email, excludeID string) (bool, error)

	List(ctx context.Context) ([]*entity.Asesor, error)
	Update(ctx context.Context, asesor *entity.Asesor) error
}
