package entity

import "time"

// Tipos de cita (canal de contacto).
const (
	CitaVisitaDesarrollo = "Visita a Desarrollo"
	CitaZoom             = "Zoom"
	CitaVideollamada     = "Videollamada"
	CitaVisitaOficina    = "Visita a Oficina"
)

// Appointment es una cita agendada en el calendario. No participa en los
// procesos de lead/venta; solo alimenta el KPI de citas.
type Appointment struct {
	ID             string
	Tipo           string
	Fecha          time.Time // con hora del día
	AsesorID       string
	Notas          string
	CreatedByEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
