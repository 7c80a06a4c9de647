package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kadosh-sales/crm-api/internal/domain"
	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

var _ repository.AsesorRepository = (*AsesorRepo)(nil)

// AsesorRepo implementación del puerto AsesorRepository sobre PostgreSQL (usable con pool o tx).
type AsesorRepo struct {
	q Querier
}

// NewAsesorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAsesorRepository(q Querier) *AsesorRepo {
	return &AsesorRepo{q: q}
}

const asesorColumns = `id, nombre_completo, email, fecha_ingreso, fecha_nacimiento, estatus, created_at, updated_at`

// Create persiste un asesor nuevo. La unicidad del email la respalda un
// índice único sobre LOWER(TRIM(email)).
func (r *AsesorRepo) Create(ctx context.Context, asesor *entity.Asesor) error {
	query := `
		INSERT INTO asesores (id, nombre_completo, email, fecha_ingreso, fecha_nacimiento, estatus, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		asesor.ID, asesor.NombreCompleto, asesor.Email, asesor.FechaIngreso,
		asesor.FechaNacimiento, asesor.Estatus, asesor.CreatedAt, asesor.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asesor: %w", err)
	}
	return nil
}

// GetByID obtiene un asesor por ID.
func (r *AsesorRepo) GetByID(ctx context.Context, id string) (*entity.Asesor, error) {
	query := `SELECT ` + asesorColumns + ` FROM asesores WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id))
}

// GetByEmail obtiene un asesor por email (trim + case-insensitive).
func (r *AsesorRepo) GetByEmail(ctx context.Context, email string) (*entity.Asesor, error) {
	query := `SELECT ` + asesorColumns + ` FROM asesores WHERE LOWER(TRIM(email)) = LOWER(TRIM($1))`
	return r.scanOne(r.q.QueryRow(ctx, query, email))
}

// ExistsEmail indica si otro asesor (distinto de excludeID) ya usa el email.
func (r *AsesorRepo) ExistsEmail(ctx context.Context, email, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM asesores
			WHERE LOWER(TRIM(email)) = LOWER(TRIM($1)) AND id <> $2
		)`
	var existe bool
	if err := r.q.QueryRow(ctx, query, email, excludeID).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists email: %w", err)
	}
	return existe, nil
}

// List lista todos los asesores ordenados por nombre.
func (r *AsesorRepo) List(ctx context.Context) ([]*entity.Asesor, error) {
	query := `SELECT ` + asesorColumns + ` FROM asesores ORDER BY nombre_completo`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list asesores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Asesor
	for rows.Next() {
		var a entity.Asesor
		if err := rows.Scan(&a.ID, &a.NombreCompleto, &a.Email, &a.FechaIngreso,
			&a.FechaNacimiento, &a.Estatus, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan asesor: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza un asesor existente.
func (r *AsesorRepo) Update(ctx context.Context, asesor *entity.Asesor) error {
	query := `
		UPDATE asesores
		SET nombre_completo = $2, email = $3, fecha_ingreso = $4, fecha_nacimiento = $5, estatus = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		asesor.ID, asesor.NombreCompleto, asesor.Email, asesor.FechaIngreso,
		asesor.FechaNacimiento, asesor.Estatus, asesor.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update asesor: %w", err)
	}
	return nil
}

func (r *AsesorRepo) scanOne(row pgx.Row) (*entity.Asesor, error) {
	var a entity.Asesor
	err := row.Scan(&a.ID, &a.NombreCompleto, &a.Email, &a.FechaIngreso,
		&a.FechaNacimiento, &a.Estatus, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asesor: %w", err)
	}
	return &a, nil
}
