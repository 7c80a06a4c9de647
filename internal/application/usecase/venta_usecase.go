package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// VentaUseCase gestiona ventas. El estatus del proceso nunca se recibe del
// cliente: se deriva de la etapa en cada escritura.
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// Create registra una venta manual.
func (uc *VentaUseCase) Create(ctx context.Context, scope auth.Scope, in dto.CreateVentaRequest) (*dto.VentaResponse, error) {
	if strings.TrimSpace(in.NombreLote) == "" || strings.TrimSpace(in.NombreCliente) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Monto.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.AsesorPrincipalID == "" {
		return nil, domain.ErrAsesorRequerido
	}
	etapa := entity.SaleStage(in.EtapaProceso)
	if !etapa.Valida() {
		return nil, domain.ErrInvalidInput
	}
	inicio, err := parseFecha(in.FechaInicioProceso)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	cierre, err := parseFechaOpt(in.FechaCierre)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	venta := &entity.Venta{
		ID:                 uuid.New().String(),
		NombreLote:         strings.TrimSpace(in.NombreLote),
		NombreCliente:      strings.TrimSpace(in.NombreCliente),
		Monto:              in.Monto,
		FechaInicioProceso: inicio,
		EtapaProceso:       etapa,
		FechaCierre:        cierre,
		AsesorPrincipalID:  in.AsesorPrincipalID,
		AsesorSecundarioID: in.AsesorSecundarioID,
		EstatusProceso:     crm.DeriveEstatusProceso(etapa),
		Observaciones:      in.Observaciones,
		CreatedByEmail:     scope.Email,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, venta); err != nil {
		return nil, err
	}
	out := toVentaResponse(venta)
	return &out, nil
}

// GetByID obtiene una venta visible para la sesión.
func (uc *VentaUseCase) GetByID(ctx context.Context, scope auth.Scope, id string) (*dto.VentaResponse, error) {
	venta, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	if !scope.PuedeVerVenta(venta) {
		return nil, domain.ErrForbidden
	}
	out := toVentaResponse(venta)
	return &out, nil
}

// List lista las ventas visibles para la sesión.
func (uc *VentaUseCase) List(ctx context.Context, scope auth.Scope) ([]dto.VentaResponse, error) {
	ventas, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		if !scope.PuedeVerVenta(v) {
			continue
		}
		items = append(items, toVentaResponse(v))
	}
	return items, nil
}

// Update edita una venta y rederiva el estatus del proceso a partir de la
// etapa resultante.
func (uc *VentaUseCase) Update(ctx context.Context, scope auth.Scope, id string, in dto.UpdateVentaRequest) (*dto.VentaResponse, error) {
	venta, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, nil
	}
	if !scope.PuedeVerVenta(venta) {
		return nil, domain.ErrForbidden
	}

	if in.NombreLote != nil {
		if strings.TrimSpace(*in.NombreLote) == "" {
			return nil, domain.ErrInvalidInput
		}
		venta.NombreLote = strings.TrimSpace(*in.NombreLote)
	}
	if in.NombreCliente != nil {
		if strings.TrimSpace(*in.NombreCliente) == "" {
			return nil, domain.ErrInvalidInput
		}
		venta.NombreCliente = strings.TrimSpace(*in.NombreCliente)
	}
	if in.Monto != nil {
		if in.Monto.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		venta.Monto = *in.Monto
	}
	if in.FechaInicioProceso != nil {
		inicio, err := parseFecha(*in.FechaInicioProceso)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		venta.FechaInicioProceso = inicio
	}
	if in.EtapaProceso != nil {
		etapa := entity.SaleStage(*in.EtapaProceso)
		if !etapa.Valida() {
			return nil, domain.ErrInvalidInput
		}
		venta.EtapaProceso = etapa
	}
	if in.FechaCierre != nil {
		cierre, err := parseFechaOpt(*in.FechaCierre)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		venta.FechaCierre = cierre
	}
	if in.AsesorPrincipalID != nil {
		if *in.AsesorPrincipalID == "" {
			return nil, domain.ErrAsesorRequerido
		}
		venta.AsesorPrincipalID = *in.AsesorPrincipalID
	}
	if in.AsesorSecundarioID != nil {
		venta.AsesorSecundarioID = *in.AsesorSecundarioID
	}
	if in.Observaciones != nil {
		venta.Observaciones = *in.Observaciones
	}

	venta.EstatusProceso = crm.DeriveEstatusProceso(venta.EtapaProceso)
	venta.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, venta); err != nil {
		return nil, err
	}
	out := toVentaResponse(venta)
	return &out, nil
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	out := dto.VentaResponse{
		ID:                 v.ID,
		NombreLote:         v.NombreLote,
		NombreCliente:      v.NombreCliente,
		Monto:              v.Monto,
		FechaInicioProceso: v.FechaInicioProceso.Format(dto.FechaLayout),
		EtapaProceso:       string(v.EtapaProceso),
		AsesorPrincipalID:  v.AsesorPrincipalID,
		AsesorSecundarioID: v.AsesorSecundarioID,
		EstatusProceso:     string(v.EstatusProceso),
		Observaciones:      v.Observaciones,
		CreatedByEmail:     v.CreatedByEmail,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
	if v.FechaCierre != nil {
		out.FechaCierre = v.FechaCierre.Format(dto.FechaLayout)
	}
	return out
}
