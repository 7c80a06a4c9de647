package repository

import (
	"context"
	"time"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// AppointmentRepository define el puerto de persistencia para citas del calendario.
type AppointmentRepository interface {
	Create(ctx context.Context, cita *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	List(ctx context.Context) ([]*entity.Appointment, error)
	ListByRange(ctx context.Context, desde, hasta time.Time) ([]*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}
