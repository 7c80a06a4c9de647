package dto

import "time"

// CreateLeadRequest entrada para registrar un prospecto.
type CreateLeadRequest struct {
	NombreCompleto   string `json:"nombreCompleto" validate:"required,min=1,max=200"`
	Telefono         string `json:"telefono"`
	Correo           string `json:"correo" validate:"omitempty,email"`
	FechaProspeccion string `json:"fechaProspeccion" validate:"required"` // YYYY-MM-DD
	LugarProspeccion string `json:"lugarProspeccion"`
	Interes          string `json:"interes"`
	Observaciones    string `json:"observaciones"`
	Estatus          string `json:"estatus"`
	CiudadOrigen     string `json:"ciudadOrigen"`
	AsesorID         string `json:"asesorId" validate:"required"`
}

// CreateLeadsBatchRequest importación de varios prospectos en una llamada.
type CreateLeadsBatchRequest struct {
	Leads []CreateLeadRequest `json:"leads" validate:"required,min=1,dive"`
}

// UpdateLeadRequest entrada parcial para editar un prospecto.
// El estatus NO se edita por aquí: los cambios de etapa pasan por /transition.
type UpdateLeadRequest struct {
	NombreCompleto   *string `json:"nombreCompleto"`
	Telefono         *string `json:"telefono"`
	Correo           *string `json:"correo"`
	FechaProspeccion *string `json:"fechaProspeccion"`
	LugarProspeccion *string `json:"lugarProspeccion"`
	Interes          *string `json:"interes"`
	Observaciones    *string `json:"observaciones"`
	CiudadOrigen     *string `json:"ciudadOrigen"`
	AsesorID         *string `json:"asesorId"`
}

// TransitionLeadRequest cambio de etapa de un prospecto (arrastre en el Kanban).
type TransitionLeadRequest struct {
	Estatus        string `json:"estatus" validate:"required"`
	MotivoDescarte string `json:"motivoDescarte"` // requerido cuando Estatus = Descartado
}

// LeadResponse salida de un prospecto.
type LeadResponse struct {
	ID               string    `json:"id"`
	NombreCompleto   string    `json:"nombreCompleto"`
	Telefono         string    `json:"telefono"`
	Correo           string    `json:"correo"`
	FechaProspeccion string    `json:"fechaProspeccion"`
	LugarProspeccion string    `json:"lugarProspeccion"`
	Interes          string    `json:"interes"`
	Observaciones    string    `json:"observaciones"`
	Estatus          string    `json:"estatus"`
	CiudadOrigen     string    `json:"ciudadOrigen"`
	AsesorID         string    `json:"asesorId"`
	MotivoDescarte   string    `json:"motivoDescarte,omitempty"`
	Interacciones    int       `json:"interacciones"`
	CreatedByEmail   string    `json:"createdByEmail"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// TransitionLeadResponse resultado de un cambio de etapa. VentaCreadaError se
// llena cuando el lead sí se actualizó pero la venta automática falló
// (segunda escritura best-effort, nunca revierte la primera).
type TransitionLeadResponse struct {
	Lead             LeadResponse   `json:"lead"`
	VentaCreada      *VentaResponse `json:"ventaCreada,omitempty"`
	VentaCreadaError string         `json:"ventaCreadaError,omitempty"`
}
