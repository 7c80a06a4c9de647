package crm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kadosh-sales/crm-api/internal/domain/crm"
)

func fecha(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodKey(t *testing.T) {
	casos := []struct {
		t        time.Time
		g        crm.Granularity
		esperado string
	}{
		{fecha(2024, time.January, 15), crm.Mensual, "2024-01"},
		{fecha(2024, time.December, 31), crm.Mensual, "2024-12"},
		{fecha(2024, time.January, 15), crm.Trimestral, "2024-Q1"},
		{fecha(2024, time.March, 31), crm.Trimestral, "2024-Q1"},
		{fecha(2024, time.April, 1), crm.Trimestral, "2024-Q2"},
		{fecha(2024, time.September, 30), crm.Trimestral, "2024-Q3"},
		{fecha(2024, time.October, 1), crm.Trimestral, "2024-Q4"},
		{fecha(2024, time.June, 10), crm.Anual, "2024"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, crm.PeriodKey(c.t, c.g), "%v %s", c.t, c.g)
	}
}

func TestMesesEntre(t *testing.T) {
	assert.Equal(t, 0, crm.MesesEntre(fecha(2024, time.June, 1), fecha(2024, time.June, 28)),
		"los días del mes se ignoran")
	assert.Equal(t, 3, crm.MesesEntre(fecha(2024, time.March, 31), fecha(2024, time.June, 1)))
	assert.Equal(t, 14, crm.MesesEntre(fecha(2023, time.April, 1), fecha(2024, time.June, 1)))
	assert.Equal(t, -2, crm.MesesEntre(fecha(2024, time.June, 1), fecha(2024, time.April, 1)))
}

func TestInicioDeMes(t *testing.T) {
	assert.Equal(t, fecha(2024, time.June, 1), crm.InicioDeMes(time.Date(2024, 6, 15, 13, 45, 9, 0, time.UTC)))
}

func TestGranularityValida(t *testing.T) {
	assert.True(t, crm.Mensual.Valida())
	assert.True(t, crm.Trimestral.Valida())
	assert.True(t, crm.Anual.Valida())
	assert.False(t, crm.Granularity("weekly").Valida())
}
