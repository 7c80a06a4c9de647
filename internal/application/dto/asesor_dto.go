package dto

import "time"

// CreateAsesorRequest entrada para dar de alta un asesor (rol Líder).
type CreateAsesorRequest struct {
	NombreCompleto  string `json:"nombreCompleto" validate:"required,min=1,max=200"`
	Email           string `json:"email" validate:"required,email"`
	FechaIngreso    string `json:"fechaIngreso" validate:"required"` // YYYY-MM-DD
	FechaNacimiento string `json:"fechaNacimiento" validate:"omitempty"`
	Estatus         string `json:"estatus" validate:"omitempty,oneof=Activo Inactivo"`
}

// UpdateAsesorRequest entrada parcial para editar un asesor.
type UpdateAsesorRequest struct {
	NombreCompleto  *string `json:"nombreCompleto"`
	Email           *string `json:"email"`
	FechaIngreso    *string `json:"fechaIngreso"`
	FechaNacimiento *string `json:"fechaNacimiento"`
	Estatus         *string `json:"estatus"`
}

// AsesorResponse salida de un asesor.
type AsesorResponse struct {
	ID              string    `json:"id"`
	NombreCompleto  string    `json:"nombreCompleto"`
	Email           string    `json:"email"`
	FechaIngreso    string    `json:"fechaIngreso"`
	FechaNacimiento string    `json:"fechaNacimiento,omitempty"`
	Estatus         string    `json:"estatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
