package crm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// El estatus del proceso es función pura de la etapa: Contratado o Cancelado
// cierran la venta, todo lo demás la deja en progreso.
func TestDeriveEstatusProceso(t *testing.T) {
	casos := map[entity.SaleStage]entity.EstatusProceso{
		entity.VentaApartado:   entity.ProcesoEnProgreso,
		entity.VentaDS:         entity.ProcesoEnProgreso,
		entity.VentaEnganche:   entity.ProcesoEnProgreso,
		entity.VentaContratado: entity.ProcesoCerrado,
		entity.VentaCancelado:  entity.ProcesoCerrado,
	}
	for etapa, esperado := range casos {
		assert.Equal(t, esperado, crm.DeriveEstatusProceso(etapa), "etapa %s", etapa)
	}
}

func TestEtapaPendiente(t *testing.T) {
	assert.True(t, entity.VentaApartado.Pendiente())
	assert.True(t, entity.VentaDS.Pendiente())
	assert.True(t, entity.VentaEnganche.Pendiente())
	assert.False(t, entity.VentaContratado.Pendiente())
	assert.False(t, entity.VentaCancelado.Pendiente())
}
