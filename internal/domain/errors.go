package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound               = errors.New("recurso no encontrado")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrDuplicate              = errors.New("recurso duplicado")
	ErrEmailDuplicado         = errors.New("el correo electrónico ya está en uso por otro asesor")
	ErrUnauthorized           = errors.New("no autorizado")
	ErrForbidden              = errors.New("acceso denegado")
	ErrAsesorInactivo         = errors.New("el asesor está inactivo")
	ErrMotivoDescarteVacio    = errors.New("el motivo de descarte es requerido")
	ErrLoteEnVentaEnProgreso  = errors.New("no se puede eliminar un lote asociado a una venta en progreso")
	ErrAsesorRequerido        = errors.New("debe seleccionar un asesor")
)
