package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// AppointmentUseCase citas del calendario.
type AppointmentUseCase struct {
	repo repository.AppointmentRepository
}

// NewAppointmentUseCase construye el caso de uso.
func NewAppointmentUseCase(repo repository.AppointmentRepository) *AppointmentUseCase {
	return &AppointmentUseCase{repo: repo}
}

// Create agenda una cita. Un asesor solo puede agendarse a sí mismo: si la
// sesión no es líder, el asesorId del cuerpo se ignora y se fuerza al propio.
func (uc *AppointmentUseCase) Create(ctx context.Context, scope auth.Scope, in dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	if in.Tipo == "" {
		return nil, domain.ErrInvalidInput
	}
	fecha, err := time.Parse(time.RFC3339, in.Fecha)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	asesorID := in.AsesorID
	if !scope.EsLider() {
		asesorID = scope.UserID
	}
	if asesorID == "" {
		return nil, domain.ErrAsesorRequerido
	}

	now := time.Now()
	cita := &entity.Appointment{
		ID:             uuid.New().String(),
		Tipo:           in.Tipo,
		Fecha:          fecha,
		AsesorID:       asesorID,
		Notas:          in.Notas,
		CreatedByEmail: scope.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, cita); err != nil {
		return nil, err
	}
	out := toAppointmentResponse(cita)
	return &out, nil
}

// List lista las citas visibles para la sesión; si desde/hasta no son cero
// filtra por rango de fechas.
func (uc *AppointmentUseCase) List(ctx context.Context, scope auth.Scope, desde, hasta time.Time) ([]dto.AppointmentResponse, error) {
	var (
		citas []*entity.Appointment
		err   error
	)
	if desde.IsZero() && hasta.IsZero() {
		citas, err = uc.repo.List(ctx)
	} else {
		citas, err = uc.repo.ListByRange(ctx, desde, hasta)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.AppointmentResponse, 0, len(citas))
	for _, c := range citas {
		if !scope.PuedeVerCita(c) {
			continue
		}
		items = append(items, toAppointmentResponse(c))
	}
	return items, nil
}

// Delete cancela una cita visible para la sesión.
func (uc *AppointmentUseCase) Delete(ctx context.Context, scope auth.Scope, id string) error {
	cita, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cita == nil {
		return domain.ErrNotFound
	}
	if !scope.PuedeVerCita(cita) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, id)
}

func toAppointmentResponse(c *entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:             c.ID,
		Tipo:           c.Tipo,
		Fecha:          c.Fecha,
		AsesorID:       c.AsesorID,
		Notas:          c.Notas,
		CreatedByEmail: c.CreatedByEmail,
		CreatedAt:      c.CreatedAt,
	}
}
