package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// AsesorUseCase altas y ediciones de asesores (rol Líder). La baja es lógica:
// se cambia el estatus a Inactivo, nunca se elimina el registro.
type AsesorUseCase struct {
	repo repository.AsesorRepository
}

// NewAsesorUseCase construye el caso de uso.
func NewAsesorUseCase(repo repository.AsesorRepository) *AsesorUseCase {
	return &AsesorUseCase{repo: repo}
}

// Create da de alta un asesor. El email debe ser único entre todos los
// asesores; la comparación ignora mayúsculas y espacios alrededor.
func (uc *AsesorUseCase) Create(ctx context.Context, in dto.CreateAsesorRequest) (*dto.AsesorResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.NombreCompleto) == "" {
		return nil, domain.ErrInvalidInput
	}
	ingreso, err := parseFecha(in.FechaIngreso)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	nacimiento, err := parseFechaOpt(in.FechaNacimiento)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	existe, err := uc.repo.ExistsEmail(ctx, email, "")
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrEmailDuplicado
	}

	estatus := in.Estatus
	if estatus == "" {
		estatus = entity.AsesorActivo
	}
	now := time.Now()
	asesor := &entity.Asesor{
		ID:              uuid.New().String(),
		NombreCompleto:  strings.TrimSpace(in.NombreCompleto),
		Email:           email,
		FechaIngreso:    ingreso,
		FechaNacimiento: nacimiento,
		Estatus:         estatus,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, asesor); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailDuplicado
		}
		return nil, err
	}
	out := toAsesorResponse(asesor)
	return &out, nil
}

// Update edita un asesor; revalida la unicidad del email si cambió.
func (uc *AsesorUseCase) Update(ctx context.Context, id string, in dto.UpdateAsesorRequest) (*dto.AsesorResponse, error) {
	asesor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, nil
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email == "" {
			return nil, domain.ErrInvalidInput
		}
		existe, err := uc.repo.ExistsEmail(ctx, email, id)
		if err != nil {
			return nil, err
		}
		if existe {
			return nil, domain.ErrEmailDuplicado
		}
		asesor.Email = email
	}
	if in.NombreCompleto != nil {
		asesor.NombreCompleto = strings.TrimSpace(*in.NombreCompleto)
	}
	if in.FechaIngreso != nil {
		ingreso, err := parseFecha(*in.FechaIngreso)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		asesor.FechaIngreso = ingreso
	}
	if in.FechaNacimiento != nil {
		nacimiento, err := parseFechaOpt(*in.FechaNacimiento)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		asesor.FechaNacimiento = nacimiento
	}
	if in.Estatus != nil {
		asesor.Estatus = *in.Estatus
	}
	asesor.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, asesor); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrEmailDuplicado
		}
		return nil, err
	}
	out := toAsesorResponse(asesor)
	return &out, nil
}

// GetByID obtiene un asesor por ID.
func (uc *AsesorUseCase) GetByID(ctx context.Context, id string) (*dto.AsesorResponse, error) {
	asesor, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asesor == nil {
		return nil, nil
	}
	out := toAsesorResponse(asesor)
	return &out, nil
}

// List lista todos los asesores; con soloActivos filtra por estatus
// (comparación case-insensitive).
func (uc *AsesorUseCase) List(ctx context.Context, soloActivos bool) ([]dto.AsesorResponse, error) {
	asesores, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AsesorResponse, 0, len(asesores))
	for _, a := range asesores {
		if soloActivos && !a.Activo() {
			continue
		}
		items = append(items, toAsesorResponse(a))
	}
	return items, nil
}

func toAsesorResponse(a *entity.Asesor) dto.AsesorResponse {
	out := dto.AsesorResponse{
		ID:             a.ID,
		NombreCompleto: a.NombreCompleto,
		Email:          a.Email,
		FechaIngreso:   a.FechaIngreso.Format(dto.FechaLayout),
		Estatus:        a.Estatus,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.FechaNacimiento != nil {
		out.FechaNacimiento = a.FechaNacimiento.Format(dto.FechaLayout)
	}
	return out
}
