package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// LoteUseCase inventario de lotes (rol Líder).
type LoteUseCase struct {
	loteRepo  repository.LoteRepository
	ventaRepo repository.VentaRepository
}

// NewLoteUseCase construye el caso de uso.
func NewLoteUseCase(loteRepo repository.LoteRepository, ventaRepo repository.VentaRepository) *LoteUseCase {
	return &LoteUseCase{loteRepo: loteRepo, ventaRepo: ventaRepo}
}

// Create da de alta un lote; sin estatus explícito queda Disponible.
func (uc *LoteUseCase) Create(ctx context.Context, in dto.CreateLoteRequest) (*dto.LoteResponse, error) {
	nombre := strings.TrimSpace(in.NombreLote)
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	estatus := in.Estatus
	if estatus == "" {
		estatus = entity.LoteDisponible
	}
	now := time.Now()
	lote := &entity.Lote{
		ID:         uuid.New().String(),
		NombreLote: nombre,
		Precio:     in.Precio,
		Estatus:    estatus,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.loteRepo.Create(ctx, lote); err != nil {
		return nil, err
	}
	out := toLoteResponse(lote)
	return &out, nil
}

// GetByID obtiene un lote por ID.
func (uc *LoteUseCase) GetByID(ctx context.Context, id string) (*dto.LoteResponse, error) {
	lote, err := uc.loteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, nil
	}
	out := toLoteResponse(lote)
	return &out, nil
}

// List lista el inventario completo.
func (uc *LoteUseCase) List(ctx context.Context) ([]dto.LoteResponse, error) {
	lotes, err := uc.loteRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LoteResponse, 0, len(lotes))
	for _, l := range lotes {
		items = append(items, toLoteResponse(l))
	}
	return items, nil
}

// Update edita un lote.
func (uc *LoteUseCase) Update(ctx context.Context, id string, in dto.UpdateLoteRequest) (*dto.LoteResponse, error) {
	lote, err := uc.loteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lote == nil {
		return nil, nil
	}
	if in.NombreLote != nil {
		if strings.TrimSpace(*in.NombreLote) == "" {
			return nil, domain.ErrInvalidInput
		}
		lote.NombreLote = strings.TrimSpace(*in.NombreLote)
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lote.Precio = *in.Precio
	}
	if in.Estatus != nil {
		lote.Estatus = *in.Estatus
	}
	lote.UpdatedAt = time.Now()
	if err := uc.loteRepo.Update(ctx, lote); err != nil {
		return nil, err
	}
	out := toLoteResponse(lote)
	return &out, nil
}

// Delete elimina un lote, salvo que una venta En Progreso lo referencie por
// nombre: un lote comprometido no se puede borrar.
func (uc *LoteUseCase) Delete(ctx context.Context, id string) error {
	lote, err := uc.loteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lote == nil {
		return domain.ErrNotFound
	}
	enProgreso, err := uc.ventaRepo.ExistsEnProgresoParaLote(ctx, lote.NombreLote)
	if err != nil {
		return err
	}
	if enProgreso {
		return domain.ErrLoteEnVentaEnProgreso
	}
	return uc.loteRepo.Delete(ctx, id)
}

func toLoteResponse(l *entity.Lote) dto.LoteResponse {
	return dto.LoteResponse{
		ID:         l.ID,
		NombreLote: l.NombreLote,
		Precio:     l.Precio,
		Estatus:    l.Estatus,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}
