package usecase_test

import (
	"context"
	"strings"
	"time"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// Fakes en memoria de los puertos de persistencia. Cada uno expone hooks de
// error (errCreate, errUpdate) para simular fallas de la base.

type memLeadRepo struct {
	registros map[string]*entity.Lead
	errUpdate error
}

func newMemLeadRepo() *memLeadRepo {
	return &memLeadRepo{registros: map[string]*entity.Lead{}}
}

func (r *memLeadRepo) Create(_ context.Context, l *entity.Lead) error {
	copia := *l
	r.registros[l.ID] = &copia
	return nil
}

func (r *memLeadRepo) CreateBatch(_ context.Context, leads []*entity.Lead) error {
	for _, l := range leads {
		copia := *l
		r.registros[l.ID] = &copia
	}
	return nil
}

func (r *memLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	l, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *l
	return &copia, nil
}

func (r *memLeadRepo) List(_ context.Context) ([]*entity.Lead, error) {
	out := make([]*entity.Lead, 0, len(r.registros))
	for _, l := range r.registros {
		copia := *l
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memLeadRepo) Update(_ context.Context, l *entity.Lead) error {
	if r.errUpdate != nil {
		return r.errUpdate
	}
	copia := *l
	r.registros[l.ID] = &copia
	return nil
}

func (r *memLeadRepo) Delete(_ context.Context, id string) error {
	delete(r.registros, id)
	return nil
}

type memVentaRepo struct {
	registros map[string]*entity.Venta
	errCreate error
}

func newMemVentaRepo() *memVentaRepo {
	return &memVentaRepo{registros: map[string]*entity.Venta{}}
}

func (r *memVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	if r.errCreate != nil {
		return r.errCreate
	}
	copia := *v
	r.registros[v.ID] = &copia
	return nil
}

func (r *memVentaRepo) GetByID(_ context.Context, id string) (*entity.Venta, error) {
	v, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (r *memVentaRepo) List(_ context.Context) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.registros))
	for _, v := range r.registros {
		copia := *v
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memVentaRepo) ExistsForCliente(_ context.Context, nombreCliente string) (bool, error) {
	buscado := strings.TrimSpace(nombreCliente)
	for _, v := range r.registros {
		if strings.EqualFold(strings.TrimSpace(v.NombreCliente), buscado) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVentaRepo) ExistsEnProgresoParaLote(_ context.Context, nombreLote string) (bool, error) {
	buscado := strings.TrimSpace(nombreLote)
	for _, v := range r.registros {
		if v.EstatusProceso == entity.ProcesoEnProgreso &&
			strings.EqualFold(strings.TrimSpace(v.NombreLote), buscado) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memVentaRepo) Update(_ context.Context, v *entity.Venta) error {
	copia := *v
	r.registros[v.ID] = &copia
	return nil
}

type memAsesorRepo struct {
	registros map[string]*entity.Asesor
}

func newMemAsesorRepo() *memAsesorRepo {
	return &memAsesorRepo{registros: map[string]*entity.Asesor{}}
}

func (r *memAsesorRepo) Create(_ context.Context, a *entity.Asesor) error {
	copia := *a
	r.registros[a.ID] = &copia
	return nil
}

func (r *memAsesorRepo) GetByID(_ context.Context, id string) (*entity.Asesor, error) {
	a, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *a
	return &copia, nil
}

func (r *memAsesorRepo) GetByEmail(_ context.Context, email string) (*entity.Asesor, error) {
	buscado := strings.TrimSpace(email)
	for _, a := range r.registros {
		if strings.EqualFold(strings.TrimSpace(a.Email), buscado) {
			copia := *a
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memAsesorRepo) ExistsEmail(_ context.Context, email, excludeID string) (bool, error) {
	buscado := strings.TrimSpace(email)
	for _, a := range r.registros {
		if a.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(a.Email), buscado) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAsesorRepo) List(_ context.Context) ([]*entity.Asesor, error) {
	out := make([]*entity.Asesor, 0, len(r.registros))
	for _, a := range r.registros {
		copia := *a
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memAsesorRepo) Update(_ context.Context, a *entity.Asesor) error {
	copia := *a
	r.registros[a.ID] = &copia
	return nil
}

type memGoalRepo struct {
	registros map[string]*entity.MonthlyGoal
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{registros: map[string]*entity.MonthlyGoal{}}
}

func (r *memGoalRepo) Create(_ context.Context, g *entity.MonthlyGoal) error {
	copia := *g
	r.registros[g.ID] = &copia
	return nil
}

func (r *memGoalRepo) GetByAsesorYearMonth(_ context.Context, asesorID string, year, month int) (*entity.MonthlyGoal, error) {
	for _, g := range r.registros {
		if g.AsesorID == asesorID && g.Year == year && g.Month == month {
			copia := *g
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *memGoalRepo) ListByYearMonth(_ context.Context, year, month int) ([]*entity.MonthlyGoal, error) {
	out := make([]*entity.MonthlyGoal, 0)
	for _, g := range r.registros {
		if g.Year == year && g.Month == month {
			copia := *g
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *memGoalRepo) Update(_ context.Context, g *entity.MonthlyGoal) error {
	copia := *g
	r.registros[g.ID] = &copia
	return nil
}

type memCitaRepo struct {
	registros map[string]*entity.Appointment
}

func newMemCitaRepo() *memCitaRepo {
	return &memCitaRepo{registros: map[string]*entity.Appointment{}}
}

func (r *memCitaRepo) Create(_ context.Context, c *entity.Appointment) error {
	copia := *c
	r.registros[c.ID] = &copia
	return nil
}

func (r *memCitaRepo) GetByID(_ context.Context, id string) (*entity.Appointment, error) {
	c, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r *memCitaRepo) List(_ context.Context) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, 0, len(r.registros))
	for _, c := range r.registros {
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memCitaRepo) ListByRange(_ context.Context, desde, hasta time.Time) ([]*entity.Appointment, error) {
	out := make([]*entity.Appointment, 0)
	for _, c := range r.registros {
		if c.Fecha.Before(desde) || c.Fecha.After(hasta) {
			continue
		}
		copia := *c
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memCitaRepo) Delete(_ context.Context, id string) error {
	delete(r.registros, id)
	return nil
}

type memLoteRepo struct {
	registros map[string]*entity.Lote
}

func newMemLoteRepo() *memLoteRepo {
	return &memLoteRepo{registros: map[string]*entity.Lote{}}
}

func (r *memLoteRepo) Create(_ context.Context, l *entity.Lote) error {
	copia := *l
	r.registros[l.ID] = &copia
	return nil
}

func (r *memLoteRepo) GetByID(_ context.Context, id string) (*entity.Lote, error) {
	l, ok := r.registros[id]
	if !ok {
		return nil, nil
	}
	copia := *l
	return &copia, nil
}

func (r *memLoteRepo) List(_ context.Context) ([]*entity.Lote, error) {
	out := make([]*entity.Lote, 0, len(r.registros))
	for _, l := range r.registros {
		copia := *l
		out = append(out, &copia)
	}
	return out, nil
}

func (r *memLoteRepo) Update(_ context.Context, l *entity.Lote) error {
	copia := *l
	r.registros[l.ID] = &copia
	return nil
}

func (r *memLoteRepo) Delete(_ context.Context, id string) error {
	delete(r.registros, id)
	return nil
}
