package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FechaLayout es el formato de fecha de la API (fechas sin hora).
const FechaLayout = "2006-01-02"
