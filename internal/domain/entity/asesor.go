package entity

import (
	"strings"
	"time"
)

// Estatus de un asesor. Datos históricos traen mayúsculas inconsistentes,
// por eso la comparación es siempre case-insensitive (ver Asesor.Activo).
const (
	AsesorActivo   = "Activo"
	AsesorInactivo = "Inactivo"
)

// Roles de sesión.
const (
	RoleLider  = "Líder"
	RoleAsesor = "Asesor"
)

// Asesor representa un vendedor del equipo. Nunca se elimina físicamente;
// se desactiva cambiando Estatus a Inactivo.
type Asesor struct {
	ID              string
	NombreCompleto  string
	Email           string // único entre asesores (case-insensitive)
	FechaIngreso    time.Time
	FechaNacimiento *time.Time // opcional
	Estatus         string     // Activo, Inactivo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Activo indica si el asesor está activo, tolerando diferencias de mayúsculas.
func (a *Asesor) Activo() bool {
	return strings.EqualFold(strings.TrimSpace(a.Estatus), AsesorActivo)
}
