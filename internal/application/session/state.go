// Package session mantiene una copia en memoria de las colecciones del CRM,
// alimentada por el feed de cambios de la base (NOTIFY). Los dashboards leen
// de aquí sin golpear la base en cada refresco.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

// Op es la operación de un evento del feed de cambios.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// Tablas que el feed de cambios cubre.
const (
	TablaLeads    = "leads"
	TablaVentas   = "ventas"
	TablaAsesores = "asesores"
	TablaCitas    = "citas"
	TablaLotes    = "lotes"
)

// Event es un cambio notificado por la base: tabla, operación y el ID del
// registro afectado. El registro en sí se relee de la base al aplicarlo
// (el payload de NOTIFY solo trae la referencia, nunca el registro completo).
type Event struct {
	Tabla string `json:"tabla"`
	Op    Op     `json:"op"`
	ID    string `json:"id"`
}

// State es la copia en memoria. La mezcla de eventos es idempotente: aplicar
// el mismo evento dos veces deja el estado igual que aplicarlo una vez
// (insert de un ID presente lo reemplaza, delete de un ID ausente es no-op).
type State struct {
	mu sync.RWMutex

	leads    map[string]*entity.Lead
	ventas   map[string]*entity.Venta
	asesores map[string]*entity.Asesor
	citas    map[string]*entity.Appointment
	lotes    map[string]*entity.Lote

	leadRepo   repository.LeadRepository
	ventaRepo  repository.VentaRepository
	asesorRepo repository.AsesorRepository
	citaRepo   repository.AppointmentRepository
	loteRepo   repository.LoteRepository
}

// NewState construye el estado vacío. Llamar Load antes de servir lecturas.
func NewState(
	leadRepo repository.LeadRepository,
	ventaRepo repository.VentaRepository,
	asesorRepo repository.AsesorRepository,
	citaRepo repository.AppointmentRepository,
	loteRepo repository.LoteRepository,
) *State {
	s := &State{
		leadRepo:   leadRepo,
		ventaRepo:  ventaRepo,
		asesorRepo: asesorRepo,
		citaRepo:   citaRepo,
		loteRepo:   loteRepo,
	}
	s.reset()
	return s
}

func (s *State) reset() {
	s.leads = make(map[string]*entity.Lead)
	s.ventas = make(map[string]*entity.Venta)
	s.asesores = make(map[string]*entity.Asesor)
	s.citas = make(map[string]*entity.Appointment)
	s.lotes = make(map[string]*entity.Lote)
}

// Load carga todas las colecciones desde la base. Se llama al arrancar y al
// reconectar el listener (los eventos perdidos durante la desconexión se
// recuperan con esta recarga completa).
func (s *State) Load(ctx context.Context) error {
	leads, err := s.leadRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargando leads: %w", err)
	}
	ventas, err := s.ventaRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargando ventas: %w", err)
	}
	asesores, err := s.asesorRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargando asesores: %w", err)
	}
	citas, err := s.citaRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargando citas: %w", err)
	}
	lotes, err := s.loteRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("cargando lotes: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	for _, l := range leads {
		s.leads[l.ID] = l
	}
	for _, v := range ventas {
		s.ventas[v.ID] = v
	}
	for _, a := range asesores {
		s.asesores[a.ID] = a
	}
	for _, c := range citas {
		s.citas[c.ID] = c
	}
	for _, l := range lotes {
		s.lotes[l.ID] = l
	}
	return nil
}

// Clear vacía el estado (logout o pérdida de la sesión del listener).
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// Apply mezcla un evento del feed. Para INSERT y UPDATE relee el registro de
// la base y lo reemplaza por ID; para DELETE lo quita. Un registro que ya no
// existe al releerlo se trata como DELETE (el evento llegó tarde).
func (s *State) Apply(ctx context.Context, ev Event) error {
	if ev.Op == OpDelete {
		s.remove(ev.Tabla, ev.ID)
		return nil
	}

	switch ev.Tabla {
	case TablaLeads:
		lead, err := s.leadRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}
		if lead == nil {
			s.remove(ev.Tabla, ev.ID)
			return nil
		}
		s.mu.Lock()
		s.leads[lead.ID] = lead
		s.mu.Unlock()
	case TablaVentas:
		venta, err := s.ventaRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}
		if venta == nil {
			s.remove(ev.Tabla, ev.ID)
			return nil
		}
		s.mu.Lock()
		s.ventas[venta.ID] = venta
		s.mu.Unlock()
	case TablaAsesores:
		asesor, err := s.asesorRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}
		if asesor == nil {
			s.remove(ev.Tabla, ev.ID)
			return nil
		}
		s.mu.Lock()
		s.asesores[asesor.ID] = asesor
		s.mu.Unlock()
	case TablaCitas:
		cita, err := s.citaRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}
		if cita == nil {
			s.remove(ev.Tabla, ev.ID)
			return nil
		}
		s.mu.Lock()
		s.citas[cita.ID] = cita
		s.mu.Unlock()
	case TablaLotes:
		lote, err := s.loteRepo.GetByID(ctx, ev.ID)
		if err != nil {
			return err
		}
		if lote == nil {
			s.remove(ev.Tabla, ev.ID)
			return nil
		}
		s.mu.Lock()
		s.lotes[lote.ID] = lote
		s.mu.Unlock()
	default:
		return fmt.Errorf("tabla desconocida en el feed de cambios: %q", ev.Tabla)
	}
	return nil
}

func (s *State) remove(tabla, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch tabla {
	case TablaLeads:
		delete(s.leads, id)
	case TablaVentas:
		delete(s.ventas, id)
	case TablaAsesores:
		delete(s.asesores, id)
	case TablaCitas:
		delete(s.citas, id)
	case TablaLotes:
		delete(s.lotes, id)
	}
}

// Leads devuelve una copia del slice de prospectos en memoria.
func (s *State) Leads() []*entity.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		out = append(out, l)
	}
	return out
}

// Ventas devuelve una copia del slice de ventas en memoria.
func (s *State) Ventas() []*entity.Venta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Venta, 0, len(s.ventas))
	for _, v := range s.ventas {
		out = append(out, v)
	}
	return out
}

// Asesores devuelve una copia del slice de asesores en memoria.
func (s *State) Asesores() []*entity.Asesor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Asesor, 0, len(s.asesores))
	for _, a := range s.asesores {
		out = append(out, a)
	}
	return out
}

// Citas devuelve una copia del slice de citas en memoria.
func (s *State) Citas() []*entity.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Appointment, 0, len(s.citas))
	for _, c := range s.citas {
		out = append(out, c)
	}
	return out
}

// Lotes devuelve una copia del slice de lotes en memoria.
func (s *State) Lotes() []*entity.Lote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Lote, 0, len(s.lotes))
	for _, l := range s.lotes {
		out = append(out, l)
	}
	return out
}
