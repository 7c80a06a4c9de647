// Package reporting arma los reportes derivados del CRM: resumen por período,
// comisiones, metas, tablero del líder y KPIs del embudo. Todo se calcula
// sobre las colecciones vigentes en memoria, nada se precalcula.
package reporting

import (
	"github.com/kadosh-sales/crm-api/internal/application/auth"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
	"github.com/kadosh-sales/crm-api/pkg/config"
)

// Store expone las colecciones del CRM ya cargadas en memoria. En producción
// lo implementa session.State, alimentado por el feed de cambios de la base;
// los reportes leen de aquí en cada refresco sin volver a consultar la base.
type Store interface {
	Leads() []*entity.Lead
	Ventas() []*entity.Venta
	Asesores() []*entity.Asesor
	Citas() []*entity.Appointment
}

// Service calcula reportes a partir del estado en memoria y los umbrales de
// negocio configurados. Las metas no se espejean en el estado, así que se
// leen directo de su repositorio.
type Service struct {
	store    Store
	goalRepo repository.MonthlyGoalRepository
	crm      config.CRMConfig
}

// NewService construye el servicio de reportes.
func NewService(store Store, goalRepo repository.MonthlyGoalRepository, crm config.CRMConfig) *Service {
	return &Service{
		store:    store,
		goalRepo: goalRepo,
		crm:      crm,
	}
}

// ventasVisibles filtra las ventas en memoria a lo que la sesión puede ver.
func (s *Service) ventasVisibles(scope auth.Scope) []*entity.Venta {
	ventas := s.store.Ventas()
	if scope.EsLider() {
		return ventas
	}
	visibles := make([]*entity.Venta, 0, len(ventas))
	for _, v := range ventas {
		if scope.PuedeVerVenta(v) {
			visibles = append(visibles, v)
		}
	}
	return visibles
}

// leadsVisibles filtra los prospectos en memoria a lo que la sesión puede ver.
func (s *Service) leadsVisibles(scope auth.Scope) []*entity.Lead {
	leads := s.store.Leads()
	if scope.EsLider() {
		return leads
	}
	visibles := make([]*entity.Lead, 0, len(leads))
	for _, l := range leads {
		if scope.PuedeVerLead(l) {
			visibles = append(visibles, l)
		}
	}
	return visibles
}
