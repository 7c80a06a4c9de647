package dto

import "time"

// CreateAppointmentRequest agenda una cita. Fecha viene en RFC 3339 (con hora).
type CreateAppointmentRequest struct {
	Tipo     string `json:"tipo" validate:"required"`
	Fecha    string `json:"fecha" validate:"required"`
	AsesorID string `json:"asesorId" validate:"required"`
	Notas    string `json:"notas"`
}

// AppointmentResponse salida de una cita.
type AppointmentResponse struct {
	ID             string    `json:"id"`
	Tipo           string    `json:"tipo"`
	Fecha          time.Time `json:"fecha"`
	AsesorID       string    `json:"asesorId"`
	Notas          string    `json:"notas,omitempty"`
	CreatedByEmail string    `json:"createdByEmail"`
	CreatedAt      time.Time `json:"createdAt"`
}
