package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

func crearAsesorDePrueba(t *testing.T, uc *usecase.AsesorUseCase, nombre, email string) dto.AsesorResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateAsesorRequest{
		NombreCompleto: nombre,
		Email:          email,
		FechaIngreso:   "2024-01-15",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	return *out
}

func TestAsesorCreate_QuedaActivoPorDefecto(t *testing.T) {
	uc := usecase.NewAsesorUseCase(newMemAsesorRepo())
	out := crearAsesorDePrueba(t, uc, "Ana López", "ana@kadosh.mx")

	assert.Equal(t, entity.AsesorActivo, out.Estatus)
	assert.Equal(t, "2024-01-15", out.FechaIngreso)
}

func TestAsesorCreate_EmailDuplicado(t *testing.T) {
	uc := usecase.NewAsesorUseCase(newMemAsesorRepo())
	crearAsesorDePrueba(t, uc, "Ana López", "ana@kadosh.mx")

	// El duplicado ignora mayúsculas y espacios alrededor.
	_, err := uc.Create(context.Background(), dto.CreateAsesorRequest{
		NombreCompleto: "Otra Ana",
		Email:          "  ANA@kadosh.mx ",
		FechaIngreso:   "2024-02-01",
	})
	assert.ErrorIs(t, err, domain.ErrEmailDuplicado)
}

func TestAsesorUpdate_PuedeConservarSuPropioEmail(t *testing.T) {
	uc := usecase.NewAsesorUseCase(newMemAsesorRepo())
	out := crearAsesorDePrueba(t, uc, "Ana López", "ana@kadosh.mx")

	// Reenviar el mismo email del propio registro no es duplicado.
	email := "ana@kadosh.mx"
	nombre := "Ana López de la Torre"
	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateAsesorRequest{
		Email:          &email,
		NombreCompleto: &nombre,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Ana López de la Torre", updated.NombreCompleto)
}

func TestAsesorUpdate_EmailDeOtro_Duplicado(t *testing.T) {
	uc := usecase.NewAsesorUseCase(newMemAsesorRepo())
	crearAsesorDePrueba(t, uc, "Ana López", "ana@kadosh.mx")
	otro := crearAsesorDePrueba(t, uc, "Beto Ruiz", "beto@kadosh.mx")

	email := "ana@kadosh.mx"
	_, err := uc.Update(context.Background(), otro.ID, dto.UpdateAsesorRequest{Email: &email})
	assert.ErrorIs(t, err, domain.ErrEmailDuplicado)
}

func TestAsesorList_SoloActivos(t *testing.T) {
	repo := newMemAsesorRepo()
	uc := usecase.NewAsesorUseCase(repo)
	crearAsesorDePrueba(t, uc, "Ana López", "ana@kadosh.mx")
	inactivo := crearAsesorDePrueba(t, uc, "Beto Ruiz", "beto@kadosh.mx")

	// La baja es lógica; el dato histórico trae mayúsculas inconsistentes.
	estatus := "INACTIVO"
	_, err := uc.Update(context.Background(), inactivo.ID, dto.UpdateAsesorRequest{Estatus: &estatus})
	require.NoError(t, err)

	activos, err := uc.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Ana López", activos[0].NombreCompleto)

	todos, err := uc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestAsesorGetByID_Inexistente_NilSinError(t *testing.T) {
	uc := usecase.NewAsesorUseCase(newMemAsesorRepo())
	out, err := uc.GetByID(context.Background(), "no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}
