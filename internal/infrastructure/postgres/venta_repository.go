package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

const ventaColumns = `id, nombre_lote, nombre_cliente, monto, fecha_inicio_proceso, etapa_proceso,
		fecha_cierre, asesor_principal_id, asesor_secundario_id, estatus_proceso,
		observaciones, created_by_email, created_at, updated_at`

// Create persiste una venta nueva.
func (r *VentaRepo) Create(ctx context.Context, venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, nombre_lote, nombre_cliente, monto, fecha_inicio_proceso, etapa_proceso,
			fecha_cierre, asesor_principal_id, asesor_secundario_id, estatus_proceso,
			observaciones, created_by_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		venta.ID, venta.NombreLote, venta.NombreCliente, venta.Monto,
		venta.FechaInicioProceso, string(venta.EtapaProceso), venta.FechaCierre,
		venta.AsesorPrincipalID, venta.AsesorSecundarioID, string(venta.EstatusProceso),
		venta.Observaciones, venta.CreatedByEmail, venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas WHERE id = $1`
	var v entity.Venta
	err := r.q.QueryRow(ctx, query, id).Scan(ventaFields(&v)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return &v, nil
}

// List lista todas las ventas, las más recientes primero.
func (r *VentaRepo) List(ctx context.Context) ([]*entity.Venta, error) {
	query := `SELECT ` + ventaColumns + ` FROM ventas ORDER BY fecha_inicio_proceso DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(ventaFields(&v)...); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ExistsForCliente busca una venta cuyo nombre de cliente coincida con el
// nombre dado, con la misma normalización que usa el dominio (trim + lower).
func (r *VentaRepo) ExistsForCliente(ctx context.Context, nombreCliente string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM ventas
			WHERE LOWER(TRIM(nombre_cliente)) = LOWER(TRIM($1))
		)`
	var existe bool
	if err := r.q.QueryRow(ctx, query, nombreCliente).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists venta por cliente: %w", err)
	}
	return existe, nil
}

// ExistsEnProgresoParaLote indica si algún proceso abierto referencia al lote
// por nombre.
func (r *VentaRepo) ExistsEnProgresoParaLote(ctx context.Context, nombreLote string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM ventas
			WHERE estatus_proceso = $1 AND LOWER(TRIM(nombre_lote)) = LOWER(TRIM($2))
		)`
	var existe bool
	if err := r.q.QueryRow(ctx, query, string(entity.ProcesoEnProgreso), nombreLote).Scan(&existe); err != nil {
		return false, fmt.Errorf("exists venta en progreso por lote: %w", err)
	}
	return existe, nil
}

// Update actualiza una venta existente.
func (r *VentaRepo) Update(ctx context.Context, venta *entity.Venta) error {
	query := `
		UPDATE ventas
		SET nombre_lote = $2, nombre_cliente = $3, monto = $4, fecha_inicio_proceso = $5,
			etapa_proceso = $6, fecha_cierre = $7, asesor_principal_id = $8,
			asesor_secundario_id = $9, estatus_proceso = $10, observaciones = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		venta.ID, venta.NombreLote, venta.NombreCliente, venta.Monto,
		venta.FechaInicioProceso, string(venta.EtapaProceso), venta.FechaCierre,
		venta.AsesorPrincipalID, venta.AsesorSecundarioID, string(venta.EstatusProceso),
		venta.Observaciones, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

func ventaFields(v *entity.Venta) []any {
	return []any{
		&v.ID, &v.NombreLote, &v.NombreCliente, &v.Monto,
		&v.FechaInicioProceso, &v.EtapaProceso, &v.FechaCierre,
		&v.AsesorPrincipalID, &v.AsesorSecundarioID, &v.EstatusProceso,
		&v.Observaciones, &v.CreatedByEmail, &v.CreatedAt, &v.UpdatedAt,
	}
}
