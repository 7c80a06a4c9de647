package reporting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

func leadEnEmbudo(id string, estatus entity.StatusProspecto, lugar string, prospeccion, interacciones int) *entity.Lead {
	return &entity.Lead{
		ID:               id,
		NombreCompleto:   "Prospecto " + id,
		FechaProspeccion: fecha(2026, prospeccion, 5),
		LugarProspeccion: lugar,
		Estatus:          estatus,
		AsesorID:         "a1",
		Interacciones:    interacciones,
	}
}

func TestKPIs_TasaDeConversionYConteos(t *testing.T) {
	f := newFixture()
	f.store.leads = []*entity.Lead{
		leadEnEmbudo("l1", entity.ProspectoApartado, "Expo", 1, 5),
		leadEnEmbudo("l2", entity.ProspectoContactado, "Expo", 2, 2),
		leadEnEmbudo("l3", entity.ProspectoInteresado, "", 2, 3),
	}
	f.store.citas = []*entity.Appointment{
		{ID: "c1", AsesorID: "a1"},
		{ID: "c2", AsesorID: "a2"},
	}

	out, err := f.svc.KPIs(context.Background(), scopeLider)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProspectos)
	assert.Equal(t, 2, out.NumeroCitas)
	assert.Equal(t, 10, out.TotalInteracciones)
	// 1 de 3 en Apartado = 33.33%.
	assert.Equal(t, "33.33", out.TasaConversion.String())

	require.Len(t, out.ProspectosPorMes, 2)
	assert.Equal(t, dto.ConteoDTO{Name: "2026-01", Value: 1}, out.ProspectosPorMes[0])
	assert.Equal(t, dto.ConteoDTO{Name: "2026-02", Value: 2}, out.ProspectosPorMes[1])

	require.Len(t, out.LugarProspeccion, 2)
	assert.Equal(t, dto.ConteoDTO{Name: "Expo", Value: 2}, out.LugarProspeccion[0])
	assert.Equal(t, dto.ConteoDTO{Name: "Sin lugar", Value: 1}, out.LugarProspeccion[1],
		"los prospectos sin lugar se agrupan bajo Sin lugar")
}

func TestKPIs_RespetaVisibilidadDeLaSesion(t *testing.T) {
	f := newFixture()
	propio := leadEnEmbudo("l1", entity.ProspectoApartado, "Expo", 1, 5)
	ajeno := leadEnEmbudo("l2", entity.ProspectoContactado, "Expo", 2, 2)
	ajeno.AsesorID = "a2"
	f.store.leads = []*entity.Lead{propio, ajeno}
	f.store.citas = []*entity.Appointment{
		{ID: "c1", AsesorID: "a1"},
		{ID: "c2", AsesorID: "a2"},
	}

	out, err := f.svc.KPIs(context.Background(), scopeAsesor)
	require.NoError(t, err)

	assert.Equal(t, 1, out.TotalProspectos)
	assert.Equal(t, 1, out.NumeroCitas)
	assert.Equal(t, "100", out.TasaConversion.String())
}

func TestKPIs_SinProspectosLaTasaEsCero(t *testing.T) {
	f := newFixture()
	out, err := f.svc.KPIs(context.Background(), scopeLider)
	require.NoError(t, err)
	assert.True(t, out.TasaConversion.IsZero())
	assert.Empty(t, out.ProspectosPorMes)
}
