package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q Querier
}

// NewAppointmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAppointmentRepository(q Querier) *AppointmentRepo {
	return &AppointmentRepo{q: q}
}

const citaColumns = `id, tipo, fecha, asesor_id, notas, created_by_email, created_at, updated_at`

// Create persiste una cita.
func (r *AppointmentRepo) Create(ctx context.Context, cita *entity.Appointment) error {
	query := `
		INSERT INTO citas (id, tipo, fecha, asesor_id, notas, created_by_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		cita.ID, cita.Tipo, cita.Fecha, cita.AsesorID, cita.Notas,
		cita.CreatedByEmail, cita.CreatedAt, cita.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cita: %w", err)
	}
	return nil
}

// GetByID obtiene una cita por ID.
func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	query := `SELECT ` + citaColumns + ` FROM citas WHERE id = $1`
	var c entity.Appointment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Tipo, &c.Fecha, &c.AsesorID, &c.Notas,
		&c.CreatedByEmail, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cita: %w", err)
	}
	return &c, nil
}

// List lista todas las citas por fecha ascendente.
func (r *AppointmentRepo) List(ctx context.Context) ([]*entity.Appointment, error) {
	query := `SELECT ` + citaColumns + ` FROM citas ORDER BY fecha`
	return r.queryList(ctx, query)
}

// ListByRange lista las citas dentro de un rango de fechas (inclusive).
func (r *AppointmentRepo) ListByRange(ctx context.Context, desde, hasta time.Time) ([]*entity.Appointment, error) {
	query := `SELECT ` + citaColumns + ` FROM citas WHERE fecha >= $1 AND fecha <= $2 ORDER BY fecha`
	return r.queryList(ctx, query, desde, hasta)
}

// Delete elimina una cita por ID.
func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM citas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cita: %w", err)
	}
	return nil
}

func (r *AppointmentRepo) queryList(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list citas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Appointment
	for rows.Next() {
		var c entity.Appointment
		if err := rows.Scan(&c.ID, &c.Tipo, &c.Fecha, &c.AsesorID, &c.Notas,
			&c.CreatedByEmail, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cita: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
