package repository

import (
	"context"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// MonthlyGoalRepository define el puerto de persistencia para MonthlyGoal.
// La unicidad por (asesor, año, mes) la garantiza el use case con upsert,
// no un constraint de base de datos.
type MonthlyGoalRepository interface {
	Create(ctx context.Context, goal *entity.MonthlyGoal) error
	GetByAsesorYearMonth(ctx context.Context, asesorID string, year, month int) (*entity.MonthlyGoal, error)
	ListByYearMonth(ctx context.Context, year, month int) ([]*entity.MonthlyGoal, error)
	Update(ctx context.Context, goal *entity.MonthlyGoal) error
}
