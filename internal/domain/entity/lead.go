package entity

import "time"

// Lead representa un prospecto dentro del embudo de ventas (tablero Kanban).
// Interacciones arranca en 1 al crearse y sube en cada cambio real de estatus.
type Lead struct {
	ID               string
	NombreCompleto   string
	Telefono         string
	Correo           string
	FechaProspeccion time.Time
	LugarProspeccion string
	Interes          string
	Observaciones    string
	Estatus          StatusProspecto
	CiudadOrigen     string
	AsesorID         string
	MotivoDescarte   string // solo cuando Estatus = Descartado
	Interacciones    int
	CreatedByEmail   string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
