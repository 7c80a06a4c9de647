package crm_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

var hoy = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func leadDePrueba() entity.Lead {
	return entity.Lead{
		ID:             "lead-1",
		NombreCompleto: "Juan Pérez García",
		Estatus:        entity.ProspectoInteresado,
		AsesorID:       "asesor-1",
		Interacciones:  3,
		CreatedByEmail: "vendedor@example.com",
	}
}

func TestTransition_MismaEtapaEsNoOp(t *testing.T) {
	lead := leadDePrueba()

	res, err := crm.Transition(lead, entity.ProspectoInteresado, "", false, hoy)

	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 3, res.Lead.Interacciones, "mismo estatus no debe tocar interacciones")
	assert.Empty(t, res.Lead.MotivoDescarte)
	assert.Nil(t, res.NuevaVenta)
}

func TestTransition_CambioRealIncrementaInteracciones(t *testing.T) {
	lead := leadDePrueba()

	res, err := crm.Transition(lead, entity.ProspectoCita, "", false, hoy)

	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, entity.ProspectoCita, res.Lead.Estatus)
	assert.Equal(t, 4, res.Lead.Interacciones, "todo cambio real suma exactamente 1")
}

func TestTransition_DescartadoRequiereMotivo(t *testing.T) {
	lead := leadDePrueba()

	_, err := crm.Transition(lead, entity.ProspectoDescartado, "   ", false, hoy)

	assert.ErrorIs(t, err, domain.ErrMotivoDescarteVacio)
}

func TestTransition_DescartadoGuardaMotivoEIncrementa(t *testing.T) {
	lead := leadDePrueba()
	lead.MotivoDescarte = "motivo viejo"

	res, err := crm.Transition(lead, entity.ProspectoDescartado, "no le interesó el desarrollo", false, hoy)

	require.NoError(t, err)
	assert.Equal(t, "no le interesó el desarrollo", res.Lead.MotivoDescarte,
		"el motivo anterior se sobreescribe")
	assert.Equal(t, 4, res.Lead.Interacciones)
}

func TestTransition_SalirDeDescartadoLimpiaMotivo(t *testing.T) {
	lead := leadDePrueba()
	lead.Estatus = entity.ProspectoDescartado
	lead.MotivoDescarte = "sin presupuesto"

	res, err := crm.Transition(lead, entity.ProspectoContactado, "", false, hoy)

	require.NoError(t, err)
	assert.Empty(t, res.Lead.MotivoDescarte,
		"el motivo solo existe mientras el prospecto está descartado")
	assert.Equal(t, 4, res.Lead.Interacciones, "salir de Descartado también cuenta como interacción")
}

func TestTransition_EtapaDesconocidaEsError(t *testing.T) {
	lead := leadDePrueba()

	_, err := crm.Transition(lead, entity.StatusProspecto("Fantasma"), "", false, hoy)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransition_ApartadoSintetizaVenta(t *testing.T) {
	lead := leadDePrueba()

	res, err := crm.Transition(lead, entity.ProspectoApartado, "", false, hoy)

	require.NoError(t, err)
	require.NotNil(t, res.NuevaVenta, "sin venta previa del cliente debe sintetizarse una")

	v := res.NuevaVenta
	assert.Equal(t, crm.NombreLotePorAsignar, v.NombreLote)
	assert.Equal(t, "Juan Pérez García", v.NombreCliente)
	assert.True(t, v.Monto.IsZero())
	assert.Equal(t, entity.VentaApartado, v.EtapaProceso)
	assert.Equal(t, entity.ProcesoEnProgreso, v.EstatusProceso)
	assert.Equal(t, "asesor-1", v.AsesorPrincipalID)
	assert.Empty(t, v.AsesorSecundarioID)
	assert.Equal(t, hoy, v.FechaInicioProceso)
	assert.Equal(t, crm.ObservacionVentaAutomatica, v.Observaciones)
}

func TestTransition_ApartadoConVentaExistenteNoDuplica(t *testing.T) {
	lead := leadDePrueba()

	res, err := crm.Transition(lead, entity.ProspectoApartado, "", true, hoy)

	require.NoError(t, err)
	assert.Nil(t, res.NuevaVenta, "con venta existente no debe crearse una segunda")
	assert.Equal(t, entity.ProspectoApartado, res.Lead.Estatus)
	assert.Equal(t, 4, res.Lead.Interacciones)
}

func TestTransition_ApartadoMismaEtapaNoSintetizaVenta(t *testing.T) {
	lead := leadDePrueba()
	lead.Estatus = entity.ProspectoApartado

	res, err := crm.Transition(lead, entity.ProspectoApartado, "", false, hoy)

	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Nil(t, res.NuevaVenta, "repetir Apartado no debe crear ventas")
}

// La heurística de duplicados compara nombres con trim + case-insensitive;
// es deliberadamente difusa (no hay llave foránea entre prospecto y venta).
func TestVentaExisteParaCliente(t *testing.T) {
	ventas := []*entity.Venta{
		{NombreCliente: "  juan pérez garcía ", Monto: decimal.NewFromInt(900_000)},
		{NombreCliente: "María López"},
	}

	assert.True(t, crm.VentaExisteParaCliente(ventas, "Juan Pérez García"))
	assert.True(t, crm.VentaExisteParaCliente(ventas, "MARÍA LÓPEZ"))
	assert.False(t, crm.VentaExisteParaCliente(ventas, "Pedro Sánchez"))
	assert.False(t, crm.VentaExisteParaCliente(nil, "Juan Pérez García"))
}
