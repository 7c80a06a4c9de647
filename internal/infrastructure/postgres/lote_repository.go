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

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo implementación del puerto LoteRepository sobre PostgreSQL.
type LoteRepo struct {
	q Querier
}

// NewLoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

// Create persiste un lote. El nombre es único en el inventario.
func (r *LoteRepo) Create(ctx context.Context, lote *entity.Lote) error {
	query := `
		INSERT INTO lotes (id, nombre_lote, precio, estatus, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		lote.ID, lote.NombreLote, lote.Precio, lote.Estatus, lote.CreatedAt, lote.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert lote: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *LoteRepo) GetByID(ctx context.Context, id string) (*entity.Lote, error) {
	query := `SELECT id, nombre_lote, precio, estatus, created_at, updated_at FROM lotes WHERE id = $1`
	var l entity.Lote
	err := r.q.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.NombreLote, &l.Precio, &l.Estatus, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// List lista el inventario ordenado por nombre.
func (r *LoteRepo) List(ctx context.Context) ([]*entity.Lote, error) {
	query := `SELECT id, nombre_lote, precio, estatus, created_at, updated_at FROM lotes ORDER BY nombre_lote`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list lotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.ID, &l.NombreLote, &l.Precio, &l.Estatus,
			&l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza un lote existente.
func (r *LoteRepo) Update(ctx context.Context, lote *entity.Lote) error {
	query := `UPDATE lotes SET nombre_lote = $2, precio = $3, estatus = $4, updated_at = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lote.ID, lote.NombreLote, lote.Precio, lote.Estatus, lote.UpdatedAt,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update lote: %w", err)
	}
	return nil
}

// Delete elimina un lote por ID.
func (r *LoteRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM lotes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lote: %w", err)
	}
	return nil
}
