package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

func TestGoalUpsert_CreaYLuegoActualiza(t *testing.T) {
	repo := newMemGoalRepo()
	uc := usecase.NewGoalUseCase(repo)

	primera, err := uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID:   "asesor-1",
		Year:       2026,
		Month:      3,
		GoalAmount: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)
	assert.Equal(t, "1000000", primera.GoalAmount.String())

	// Segundo upsert del mismo (asesor, año, mes): actualiza, no duplica.
	segunda, err := uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID:   "asesor-1",
		Year:       2026,
		Month:      3,
		GoalAmount: decimal.NewFromInt(1500000),
	})
	require.NoError(t, err)
	assert.Equal(t, primera.ID, segunda.ID)
	assert.Equal(t, "1500000", segunda.GoalAmount.String())
	assert.Len(t, repo.registros, 1)
}

func TestGoalUpsert_MesesDistintosSonRegistrosDistintos(t *testing.T) {
	repo := newMemGoalRepo()
	uc := usecase.NewGoalUseCase(repo)

	_, err := uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-1", Year: 2026, Month: 3, GoalAmount: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)
	_, err = uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-1", Year: 2026, Month: 4, GoalAmount: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)
	assert.Len(t, repo.registros, 2)
}

func TestGoalUpsert_Validaciones(t *testing.T) {
	uc := usecase.NewGoalUseCase(newMemGoalRepo())

	_, err := uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		Year: 2026, Month: 3, GoalAmount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrAsesorRequerido)

	_, err = uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-1", Year: 2026, Month: 13, GoalAmount: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-1", Year: 2026, Month: 3, GoalAmount: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGoalListByMonth_SoloElMesPedido(t *testing.T) {
	repo := newMemGoalRepo()
	uc := usecase.NewGoalUseCase(repo)

	_, err := uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-1", Year: 2026, Month: 3, GoalAmount: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)
	_, err = uc.Upsert(context.Background(), dto.UpsertGoalRequest{
		AsesorID: "asesor-2", Year: 2026, Month: 4, GoalAmount: decimal.NewFromInt(1000000),
	})
	require.NoError(t, err)

	metas, err := uc.ListByMonth(context.Background(), 2026, 3)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, "asesor-1", metas[0].AsesorID)
}
