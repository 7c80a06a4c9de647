package reporting_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/application/reporting"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/pkg/config"
)

// memStore hace las veces del estado en memoria que en producción alimenta el
// listener: los reportes solo leen colecciones, así que basta con slices.
type memStore struct {
	leads    []*entity.Lead
	ventas   []*entity.Venta
	asesores []*entity.Asesor
	citas    []*entity.Appointment
}

func (s *memStore) Leads() []*entity.Lead        { return s.leads }
func (s *memStore) Ventas() []*entity.Venta      { return s.ventas }
func (s *memStore) Asesores() []*entity.Asesor   { return s.asesores }
func (s *memStore) Citas() []*entity.Appointment { return s.citas }

var _ reporting.Store = (*memStore)(nil)

// Las metas no se espejean en el estado, van por su repositorio.
type stubGoalRepo struct{ goals []*entity.MonthlyGoal }

func (r *stubGoalRepo) Create(_ context.Context, g *entity.MonthlyGoal) error {
	r.goals = append(r.goals, g)
	return nil
}
func (r *stubGoalRepo) GetByAsesorYearMonth(_ context.Context, asesorID string, year, month int) (*entity.MonthlyGoal, error) {
	for _, g := range r.goals {
		if g.AsesorID == asesorID && g.Year == year && g.Month == month {
			return g, nil
		}
	}
	return nil, nil
}
func (r *stubGoalRepo) ListByYearMonth(_ context.Context, year, month int) ([]*entity.MonthlyGoal, error) {
	out := make([]*entity.MonthlyGoal, 0)
	for _, g := range r.goals {
		if g.Year == year && g.Month == month {
			out = append(out, g)
		}
	}
	return out, nil
}
func (r *stubGoalRepo) Update(_ context.Context, _ *entity.MonthlyGoal) error { return nil }

// fixture arma un Service sobre el store en memoria y los umbrales de negocio
// típicos: mínimo mensual 500 mil, proceso máximo 90 días, comisión 3%.
type fixture struct {
	store *memStore
	goals *stubGoalRepo
	svc   *reporting.Service
}

func newFixture() *fixture {
	f := &fixture{
		store: &memStore{},
		goals: &stubGoalRepo{},
	}
	f.svc = reporting.NewService(f.store, f.goals, config.CRMConfig{
		LimiteMensualMinimo: 500000,
		TiempoMaximoProceso: 90,
		PorcentajeComision:  0.03,
	})
	return f
}

var (
	scopeLider  = auth.Scope{UserID: auth.LiderID, Email: "lider@kadosh.mx", Role: entity.RoleLider}
	scopeAsesor = auth.Scope{UserID: "a1", Email: "a1@kadosh.mx", Role: entity.RoleAsesor}
)

func fecha(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func asesorActivo(id, nombre string) *entity.Asesor {
	return &entity.Asesor{
		ID:             id,
		NombreCompleto: nombre,
		Email:          id + "@kadosh.mx",
		FechaIngreso:   fecha(2022, 1, 10),
		Estatus:        entity.AsesorActivo,
	}
}

// ventaContratada inicia y cierra en la misma fecha; los casos donde el cierre
// cae en otro mes ajustan FechaCierre explícitamente.
func ventaContratada(id, principal, secundario string, monto int64, inicio time.Time) *entity.Venta {
	cierre := inicio
	return &entity.Venta{
		ID:                 id,
		NombreLote:         "Lote " + id,
		NombreCliente:      "Cliente " + id,
		Monto:              decimal.NewFromInt(monto),
		FechaInicioProceso: inicio,
		EtapaProceso:       entity.VentaContratado,
		FechaCierre:        &cierre,
		AsesorPrincipalID:  principal,
		AsesorSecundarioID: secundario,
		EstatusProceso:     entity.ProcesoCerrado,
	}
}

func ventaPendiente(id, principal string, monto int64, inicio time.Time) *entity.Venta {
	return &entity.Venta{
		ID:                 id,
		NombreLote:         "Lote " + id,
		NombreCliente:      "Cliente " + id,
		Monto:              decimal.NewFromInt(monto),
		FechaInicioProceso: inicio,
		EtapaProceso:       entity.VentaEnganche,
		AsesorPrincipalID:  principal,
		EstatusProceso:     entity.ProcesoEnProgreso,
	}
}
