package dto

import "github.com/shopspring/decimal"

// UpsertGoalRequest crea o actualiza la meta de un asesor para un mes dado
// (semántica upsert por asesor/año/mes).
type UpsertGoalRequest struct {
	AsesorID   string          `json:"asesorId" validate:"required"`
	Year       int             `json:"year" validate:"required,min=2000"`
	Month      int             `json:"month" validate:"required,min=1,max=12"`
	GoalAmount decimal.Decimal `json:"goalAmount"`
}

// GoalResponse salida de una meta mensual.
type GoalResponse struct {
	ID         string          `json:"id"`
	AsesorID   string          `json:"asesorId"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	GoalAmount decimal.Decimal `json:"goalAmount"`
}
