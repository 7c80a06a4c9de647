package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// LeadUseCase gestiona prospectos del tablero Kanban, incluida la transición
// de etapa y su efecto secundario (venta automática al entrar a Apartado).
type LeadUseCase struct {
	leadRepo  repository.LeadRepository
	ventaRepo repository.VentaRepository
	log       zerolog.Logger
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(leadRepo repository.LeadRepository, ventaRepo repository.VentaRepository, log zerolog.Logger) *LeadUseCase {
	return &LeadUseCase{leadRepo: leadRepo, ventaRepo: ventaRepo, log: log}
}

// Create registra un prospecto. Interacciones arranca en 1 (el alta cuenta
// como primera interacción) y se guarda el email de quien lo registró.
func (uc *LeadUseCase) Create(ctx context.Context, scope auth.Scope, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.buildLead(in, scope.Email)
	if err != nil {
		return nil, err
	}
	if err := uc.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}
	out := toLeadResponse(lead)
	return &out, nil
}

// CreateBatch importa varios prospectos en una sola operación. Falla completa
// si algún registro es inválido: no hay importaciones a medias.
func (uc *LeadUseCase) CreateBatch(ctx context.Context, scope auth.Scope, in dto.CreateLeadsBatchRequest) ([]dto.LeadResponse, error) {
	if len(in.Leads) == 0 {
		return nil, domain.ErrInvalidInput
	}
	leads := make([]*entity.Lead, 0, len(in.Leads))
	for _, req := range in.Leads {
		lead, err := uc.buildLead(req, scope.Email)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if err := uc.leadRepo.CreateBatch(ctx, leads); err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, toLeadResponse(l))
	}
	return items, nil
}

// GetByID obtiene un prospecto visible para la sesión.
func (uc *LeadUseCase) GetByID(ctx context.Context, scope auth.Scope, id string) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if !scope.PuedeVerLead(lead) {
		return nil, domain.ErrForbidden
	}
	out := toLeadResponse(lead)
	return &out, nil
}

// List lista los prospectos visibles para la sesión (el líder ve todos).
func (uc *LeadUseCase) List(ctx context.Context, scope auth.Scope) ([]dto.LeadResponse, error) {
	leads, err := uc.leadRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		if !scope.PuedeVerLead(l) {
			continue
		}
		items = append(items, toLeadResponse(l))
	}
	return items, nil
}

// Update edita los datos de un prospecto. El estatus no se toca por aquí:
// los cambios de etapa pasan por Transition.
func (uc *LeadUseCase) Update(ctx context.Context, scope auth.Scope, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if !scope.PuedeVerLead(lead) {
		return nil, domain.ErrForbidden
	}

	if in.NombreCompleto != nil {
		if strings.TrimSpace(*in.NombreCompleto) == "" {
			return nil, domain.ErrInvalidInput
		}
		lead.NombreCompleto = strings.TrimSpace(*in.NombreCompleto)
	}
	if in.Telefono != nil {
		lead.Telefono = *in.Telefono
	}
	if in.Correo != nil {
		lead.Correo = strings.TrimSpace(*in.Correo)
	}
	if in.FechaProspeccion != nil {
		fecha, err := parseFecha(*in.FechaProspeccion)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		lead.FechaProspeccion = fecha
	}
	if in.LugarProspeccion != nil {
		lead.LugarProspeccion = *in.LugarProspeccion
	}
	if in.Interes != nil {
		lead.Interes = *in.Interes
	}
	if in.Observaciones != nil {
		lead.Observaciones = *in.Observaciones
	}
	if in.CiudadOrigen != nil {
		lead.CiudadOrigen = *in.CiudadOrigen
	}
	if in.AsesorID != nil {
		if *in.AsesorID == "" {
			return nil, domain.ErrAsesorRequerido
		}
		lead.AsesorID = *in.AsesorID
	}
	lead.UpdatedAt = time.Now()

	if err := uc.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}
	out := toLeadResponse(lead)
	return &out, nil
}

// Delete elimina un prospecto visible para la sesión.
func (uc *LeadUseCase) Delete(ctx context.Context, scope auth.Scope, id string) error {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	if !scope.PuedeVerLead(lead) {
		return domain.ErrForbidden
	}
	return uc.leadRepo.Delete(ctx, id)
}

// Transition cambia la etapa de un prospecto. El UPDATE del lead es la
// escritura autoritativa; la venta automática (al entrar a Apartado sin venta
// previa del cliente) es una segunda escritura best-effort: si falla, el
// cambio de etapa NO se revierte y el error viaja en la respuesta.
func (uc *LeadUseCase) Transition(ctx context.Context, scope auth.Scope, id string, in dto.TransitionLeadRequest) (*dto.TransitionLeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, nil
	}
	if !scope.PuedeVerLead(lead) {
		return nil, domain.ErrForbidden
	}

	nueva := entity.StatusProspecto(in.Estatus)
	ventaExiste := false
	if nueva.Valida() && nueva == entity.ProspectoApartado && lead.Estatus != entity.ProspectoApartado {
		ventaExiste, err = uc.ventaRepo.ExistsForCliente(ctx, lead.NombreCompleto)
		if err != nil {
			return nil, err
		}
	}

	res, err := crm.Transition(*lead, nueva, in.MotivoDescarte, ventaExiste, time.Now())
	if err != nil {
		return nil, err
	}
	if !res.Changed {
		out := toLeadResponse(lead)
		return &dto.TransitionLeadResponse{Lead: out}, nil
	}

	res.Lead.UpdatedAt = time.Now()
	if err := uc.leadRepo.Update(ctx, &res.Lead); err != nil {
		return nil, err
	}

	resp := &dto.TransitionLeadResponse{Lead: toLeadResponse(&res.Lead)}
	if res.NuevaVenta != nil {
		venta := res.NuevaVenta
		venta.ID = uuid.New().String()
		venta.CreatedAt = time.Now()
		venta.UpdatedAt = venta.CreatedAt
		if err := uc.ventaRepo.Create(ctx, venta); err != nil {
			uc.log.Warn().Err(err).
				Str("lead_id", lead.ID).
				Str("cliente", lead.NombreCompleto).
				Msg("el prospecto pasó a Apartado pero la venta automática falló")
			resp.VentaCreadaError = err.Error()
		} else {
			v := toVentaResponse(venta)
			resp.VentaCreada = &v
		}
	}
	return resp, nil
}

func (uc *LeadUseCase) buildLead(in dto.CreateLeadRequest, creadoPor string) (*entity.Lead, error) {
	if strings.TrimSpace(in.NombreCompleto) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AsesorID == "" {
		return nil, domain.ErrAsesorRequerido
	}
	fecha, err := parseFecha(in.FechaProspeccion)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	estatus := entity.StatusProspecto(in.Estatus)
	if in.Estatus == "" {
		estatus = entity.ProspectoNoContactado
	}
	if !estatus.Valida() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	return &entity.Lead{
		ID:               uuid.New().String(),
		NombreCompleto:   strings.TrimSpace(in.NombreCompleto),
		Telefono:         in.Telefono,
		Correo:           strings.TrimSpace(in.Correo),
		FechaProspeccion: fecha,
		LugarProspeccion: in.LugarProspeccion,
		Interes:          in.Interes,
		Observaciones:    in.Observaciones,
		Estatus:          estatus,
		CiudadOrigen:     in.CiudadOrigen,
		AsesorID:         in.AsesorID,
		Interacciones:    1,
		CreatedByEmail:   creadoPor,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

func toLeadResponse(l *entity.Lead) dto.LeadResponse {
	return dto.LeadResponse{
		ID:               l.ID,
		NombreCompleto:   l.NombreCompleto,
		Telefono:         l.Telefono,
		Correo:           l.Correo,
		FechaProspeccion: l.FechaProspeccion.Format(dto.FechaLayout),
		LugarProspeccion: l.LugarProspeccion,
		Interes:          l.Interes,
		Observaciones:    l.Observaciones,
		Estatus:          string(l.Estatus),
		CiudadOrigen:     l.CiudadOrigen,
		AsesorID:         l.AsesorID,
		MotivoDescarte:   l.MotivoDescarte,
		Interacciones:    l.Interacciones,
		CreatedByEmail:   l.CreatedByEmail,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
