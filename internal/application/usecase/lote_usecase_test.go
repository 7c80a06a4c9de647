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
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

func TestLoteCreate_DisponiblePorDefecto(t *testing.T) {
	uc := usecase.NewLoteUseCase(newMemLoteRepo(), newMemVentaRepo())
	out, err := uc.Create(context.Background(), dto.CreateLoteRequest{
		NombreLote: "  Lote 12  ",
		Precio:     decimal.NewFromInt(850000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lote 12", out.NombreLote, "el nombre se guarda sin espacios alrededor")
	assert.Equal(t, entity.LoteDisponible, out.Estatus)
}

func TestLoteCreate_PrecioNegativo_Error(t *testing.T) {
	uc := usecase.NewLoteUseCase(newMemLoteRepo(), newMemVentaRepo())
	_, err := uc.Create(context.Background(), dto.CreateLoteRequest{
		NombreLote: "Lote 12",
		Precio:     decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLoteDelete_ConVentaEnProgreso_Bloqueado(t *testing.T) {
	lotes := newMemLoteRepo()
	ventas := newMemVentaRepo()
	uc := usecase.NewLoteUseCase(lotes, ventas)

	out, err := uc.Create(context.Background(), dto.CreateLoteRequest{
		NombreLote: "Lote 12",
		Precio:     decimal.NewFromInt(850000),
	})
	require.NoError(t, err)

	// Una venta En Progreso referencia al lote por nombre (trim + case-insensitive).
	ventas.registros["v1"] = &entity.Venta{
		ID:             "v1",
		NombreLote:     " lote 12 ",
		EstatusProceso: entity.ProcesoEnProgreso,
	}

	err = uc.Delete(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrLoteEnVentaEnProgreso)
	assert.Len(t, lotes.registros, 1, "el lote comprometido no se borra")
}

func TestLoteDelete_ConVentaCerrada_Permitido(t *testing.T) {
	lotes := newMemLoteRepo()
	ventas := newMemVentaRepo()
	uc := usecase.NewLoteUseCase(lotes, ventas)

	out, err := uc.Create(context.Background(), dto.CreateLoteRequest{
		NombreLote: "Lote 12",
		Precio:     decimal.NewFromInt(850000),
	})
	require.NoError(t, err)

	ventas.registros["v1"] = &entity.Venta{
		ID:             "v1",
		NombreLote:     "Lote 12",
		EstatusProceso: entity.ProcesoCerrado,
	}

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Empty(t, lotes.registros)
}

func TestLoteDelete_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewLoteUseCase(newMemLoteRepo(), newMemVentaRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
