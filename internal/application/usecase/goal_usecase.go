package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// GoalUseCase metas mensuales de venta por asesor (rol Líder).
type GoalUseCase struct {
	repo repository.MonthlyGoalRepository
}

// NewGoalUseCase construye el caso de uso.
func NewGoalUseCase(repo repository.MonthlyGoalRepository) *GoalUseCase {
	return &GoalUseCase{repo: repo}
}

// Upsert crea la meta del asesor para el mes si no existe, o la actualiza si
// ya existe. Un solo registro por (asesor, año, mes).
func (uc *GoalUseCase) Upsert(ctx context.Context, in dto.UpsertGoalRequest) (*dto.GoalResponse, error) {
	if in.AsesorID == "" {
		return nil, domain.ErrAsesorRequerido
	}
	if in.Month < 1 || in.Month > 12 || in.Year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	if in.GoalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	goal, err := uc.repo.GetByAsesorYearMonth(ctx, in.AsesorID, in.Year, in.Month)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if goal == nil {
		goal = &entity.MonthlyGoal{
			ID:         uuid.New().String(),
			AsesorID:   in.AsesorID,
			Year:       in.Year,
			Month:      in.Month,
			GoalAmount: in.GoalAmount,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := uc.repo.Create(ctx, goal); err != nil {
			return nil, err
		}
	} else {
		goal.GoalAmount = in.GoalAmount
		goal.UpdatedAt = now
		if err := uc.repo.Update(ctx, goal); err != nil {
			return nil, err
		}
	}
	out := toGoalResponse(goal)
	return &out, nil
}

// ListByMonth lista las metas de todos los asesores para un mes.
func (uc *GoalUseCase) ListByMonth(ctx context.Context, year, month int) ([]dto.GoalResponse, error) {
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	goals, err := uc.repo.ListByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoalResponse, 0, len(goals))
	for _, g := range goals {
		items = append(items, toGoalResponse(g))
	}
	return items, nil
}

func toGoalResponse(g *entity.MonthlyGoal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:         g.ID,
		AsesorID:   g.AsesorID,
		Year:       g.Year,
		Month:      g.Month,
		GoalAmount: g.GoalAmount,
	}
}
