package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

var _ repository.MonthlyGoalRepository = (*GoalRepo)(nil)

// GoalRepo implementación del puerto MonthlyGoalRepository sobre PostgreSQL.
type GoalRepo struct {
	q Querier
}

// NewGoalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGoalRepository(q Querier) *GoalRepo {
	return &GoalRepo{q: q}
}

// Create persiste una meta mensual.
func (r *GoalRepo) Create(ctx context.Context, goal *entity.MonthlyGoal) error {
	query := `
		INSERT INTO metas_mensuales (id, asesor_id, anio, mes, monto_meta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		goal.ID, goal.AsesorID, goal.Year, goal.Month, goal.GoalAmount,
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert meta: %w", err)
	}
	return nil
}

// GetByAsesorYearMonth obtiene la meta de un asesor para un mes dado.
func (r *GoalRepo) GetByAsesorYearMonth(ctx context.Context, asesorID string, year, month int) (*entity.MonthlyGoal, error) {
	query := `
		SELECT id, asesor_id, anio, mes, monto_meta, created_at, updated_at
		FROM metas_mensuales WHERE asesor_id = $1 AND anio = $2 AND mes = $3`
	var g entity.MonthlyGoal
	err := r.q.QueryRow(ctx, query, asesorID, year, month).Scan(
		&g.ID, &g.AsesorID, &g.Year, &g.Month, &g.GoalAmount, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get meta: %w", err)
	}
	return &g, nil
}

// ListByYearMonth lista las metas de todos los asesores para un mes.
func (r *GoalRepo) ListByYearMonth(ctx context.Context, year, month int) ([]*entity.MonthlyGoal, error) {
	query := `
		SELECT id, asesor_id, anio, mes, monto_meta, created_at, updated_at
		FROM metas_mensuales WHERE anio = $1 AND mes = $2`
	rows, err := r.q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("list metas: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyGoal
	for rows.Next() {
		var g entity.MonthlyGoal
		if err := rows.Scan(&g.ID, &g.AsesorID, &g.Year, &g.Month, &g.GoalAmount,
			&g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meta: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza el monto de una meta existente.
func (r *GoalRepo) Update(ctx context.Context, goal *entity.MonthlyGoal) error {
	query := `UPDATE metas_mensuales SET monto_meta = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, goal.ID, goal.GoalAmount, goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update meta: %w", err)
	}
	return nil
}
