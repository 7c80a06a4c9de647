package crm_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kadosh-sales/crm-api/internal/domain/crm"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

func ventaConMonto(monto int64, principal, secundario string) *entity.Venta {
	return &entity.Venta{
		Monto:              decimal.NewFromInt(monto),
		AsesorPrincipalID:  principal,
		AsesorSecundarioID: secundario,
	}
}

func TestMontoAsignado_SoloPrincipal(t *testing.T) {
	v := ventaConMonto(1_000_000, "a1", "")

	assert.True(t, decimal.NewFromInt(1_000_000).Equal(crm.MontoAsignado(v, "a1")),
		"sin secundario el principal recibe el monto completo")
}

func TestMontoAsignado_ConSecundarioSeReparteMitades(t *testing.T) {
	v := ventaConMonto(1_000_000, "a1", "a2")
	mitad := decimal.NewFromInt(500_000)

	assert.True(t, mitad.Equal(crm.MontoAsignado(v, "a1")), "el principal recibe la mitad")
	assert.True(t, mitad.Equal(crm.MontoAsignado(v, "a2")), "el secundario recibe la otra mitad")
}

func TestMontoAsignado_AsesorAjenoRecibeCero(t *testing.T) {
	sinSecundario := ventaConMonto(750_000, "a1", "")
	conSecundario := ventaConMonto(750_000, "a1", "a2")

	assert.True(t, crm.MontoAsignado(sinSecundario, "intruso").IsZero())
	assert.True(t, crm.MontoAsignado(conSecundario, "intruso").IsZero())
}

func TestMontoAsignado_MontoImparSeDivideExacto(t *testing.T) {
	// decimal evita el error de redondeo de float: 333333/2 = 166666.5 exacto.
	v := ventaConMonto(333_333, "a1", "a2")

	assert.True(t, decimal.RequireFromString("166666.5").Equal(crm.MontoAsignado(v, "a1")))
}
