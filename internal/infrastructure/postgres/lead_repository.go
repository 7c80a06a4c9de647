package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
	"github.com/kadosh-sales/crm-api/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

const leadColumns = `id, nombre_completo, telefono, correo, fecha_prospeccion, lugar_prospeccion,
		interes, observaciones, estatus, ciudad_origen, asesor_id, motivo_descarte,
		interacciones, created_by_email, created_at, updated_at`

const leadInsert = `
	INSERT INTO leads (id, nombre_completo, telefono, correo, fecha_prospeccion, lugar_prospeccion,
		interes, observaciones, estatus, ciudad_origen, asesor_id, motivo_descarte,
		interacciones, created_by_email, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

// Create persiste un prospecto nuevo.
func (r *LeadRepo) Create(ctx context.Context, lead *entity.Lead) error {
	_, err := r.q.Exec(ctx, leadInsert, leadArgs(lead)...)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// CreateBatch inserta varios prospectos en un solo round-trip (importación).
// El batch corre en una transacción implícita: o entran todos o ninguno.
func (r *LeadRepo) CreateBatch(ctx context.Context, leads []*entity.Lead) error {
	batch := &pgx.Batch{}
	for _, lead := range leads {
		batch.Queue(leadInsert, leadArgs(lead)...)
	}
	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for range leads {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert lead (batch): %w", err)
		}
	}
	return nil
}

// GetByID obtiene un prospecto por ID.
func (r *LeadRepo) GetByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.q.QueryRow(ctx, query, id).Scan(leadFields(&l)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista todos los prospectos, los más recientes primero.
func (r *LeadRepo) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(leadFields(&l)...); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update escribe el prospecto completo en un solo UPDATE: estatus, motivo e
// interacciones cambian juntos o no cambian.
func (r *LeadRepo) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET nombre_completo = $2, telefono = $3, correo = $4, fecha_prospeccion = $5,
			lugar_prospeccion = $6, interes = $7, observaciones = $8, estatus = $9,
			ciudad_origen = $10, asesor_id = $11, motivo_descarte = $12,
			interacciones = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		lead.ID, lead.NombreCompleto, lead.Telefono, lead.Correo, lead.FechaProspeccion,
		lead.LugarProspeccion, lead.Interes, lead.Observaciones, string(lead.Estatus),
		lead.CiudadOrigen, lead.AsesorID, lead.MotivoDescarte,
		lead.Interacciones, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un prospecto por ID.
func (r *LeadRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

func leadArgs(l *entity.Lead) []any {
	return []any{
		l.ID, l.NombreCompleto, l.Telefono, l.Correo, l.FechaProspeccion,
		l.LugarProspeccion, l.Interes, l.Observaciones, string(l.Estatus),
		l.CiudadOrigen, l.AsesorID, l.MotivoDescarte,
		l.Interacciones, l.CreatedByEmail, l.CreatedAt, l.UpdatedAt,
	}
}

func leadFields(l *entity.Lead) []any {
	return []any{
		&l.ID, &l.NombreCompleto, &l.Telefono, &l.Correo, &l.FechaProspeccion,
		&l.LugarProspeccion, &l.Interes, &l.Observaciones, &l.Estatus,
		&l.CiudadOrigen, &l.AsesorID, &l.MotivoDescarte,
		&l.Interacciones, &l.CreatedByEmail, &l.CreatedAt, &l.UpdatedAt,
	}
}
