package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyGoal es la meta de venta de un asesor para un mes dado.
// A lo más un registro por (asesor, año, mes); el upsert lo garantiza el use case.
type MonthlyGoal struct {
	ID         string
	AsesorID   string
	Year       int
	Month      int // 1-12
	GoalAmount decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
