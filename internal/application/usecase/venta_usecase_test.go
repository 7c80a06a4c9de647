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

func crearVentaDePrueba(t *testing.T, uc *usecase.VentaUseCase, etapa string) dto.VentaResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), scopeAsesor, dto.CreateVentaRequest{
		NombreLote:         "Lote 12",
		NombreCliente:      "Juan Pérez",
		Monto:              decimal.NewFromInt(850000),
		FechaInicioProceso: "2026-03-01",
		EtapaProceso:       etapa,
		AsesorPrincipalID:  "asesor-1",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return *out
}

func TestVentaCreate_DerivaElEstatusDelProceso(t *testing.T) {
	uc := usecase.NewVentaUseCase(newMemVentaRepo())

	abierta := crearVentaDePrueba(t, uc, string(entity.VentaEnganche))
	assert.Equal(t, string(entity.ProcesoEnProgreso), abierta.EstatusProceso)

	cerrada := crearVentaDePrueba(t, uc, string(entity.VentaContratado))
	assert.Equal(t, string(entity.ProcesoCerrado), cerrada.EstatusProceso)

	cancelada := crearVentaDePrueba(t, uc, string(entity.VentaCancelado))
	assert.Equal(t, string(entity.ProcesoCerrado), cancelada.EstatusProceso,
		"Cancelado también cierra el proceso")
}

func TestVentaCreate_SinAsesorPrincipal_Error(t *testing.T) {
	uc := usecase.NewVentaUseCase(newMemVentaRepo())
	_, err := uc.Create(context.Background(), scopeAsesor, dto.CreateVentaRequest{
		NombreLote:         "Lote 12",
		NombreCliente:      "Juan Pérez",
		Monto:              decimal.NewFromInt(850000),
		FechaInicioProceso: "2026-03-01",
		EtapaProceso:       string(entity.VentaApartado),
	})
	assert.ErrorIs(t, err, domain.ErrAsesorRequerido)
}

func TestVentaCreate_EtapaDesconocida_Error(t *testing.T) {
	uc := usecase.NewVentaUseCase(newMemVentaRepo())
	_, err := uc.Create(context.Background(), scopeAsesor, dto.CreateVentaRequest{
		NombreLote:         "Lote 12",
		NombreCliente:      "Juan Pérez",
		Monto:              decimal.NewFromInt(850000),
		FechaInicioProceso: "2026-03-01",
		EtapaProceso:       "Firmado",
		AsesorPrincipalID:  "asesor-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVentaUpdate_CambioDeEtapaRederivaElEstatus(t *testing.T) {
	repo := newMemVentaRepo()
	uc := usecase.NewVentaUseCase(repo)
	out := crearVentaDePrueba(t, uc, string(entity.VentaApartado))
	require.Equal(t, string(entity.ProcesoEnProgreso), out.EstatusProceso)

	etapa := string(entity.VentaContratado)
	cierre := "2026-04-15"
	updated, err := uc.Update(context.Background(), scopeAsesor, out.ID, dto.UpdateVentaRequest{
		EtapaProceso: &etapa,
		FechaCierre:  &cierre,
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ProcesoCerrado), updated.EstatusProceso)
	assert.Equal(t, "2026-04-15", updated.FechaCierre)
}

func TestVentaGetByID_AsesorAjeno_Forbidden(t *testing.T) {
	uc := usecase.NewVentaUseCase(newMemVentaRepo())
	out := crearVentaDePrueba(t, uc, string(entity.VentaApartado))

	otro := scopeAsesor
	otro.UserID = "asesor-9"
	otro.Email = "asesor9@kadosh.mx"
	_, err := uc.GetByID(context.Background(), otro, out.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVentaGetByID_SecundarioSiPuedeVerla(t *testing.T) {
	repo := newMemVentaRepo()
	uc := usecase.NewVentaUseCase(repo)
	out, err := uc.Create(context.Background(), scopeLider, dto.CreateVentaRequest{
		NombreLote:         "Lote 12",
		NombreCliente:      "Juan Pérez",
		Monto:              decimal.NewFromInt(850000),
		FechaInicioProceso: "2026-03-01",
		EtapaProceso:       string(entity.VentaApartado),
		AsesorPrincipalID:  "asesor-9",
		AsesorSecundarioID: scopeAsesor.UserID,
	})
	require.NoError(t, err)

	visto, err := uc.GetByID(context.Background(), scopeAsesor, out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, visto.ID)
}
