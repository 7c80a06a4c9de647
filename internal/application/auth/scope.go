package auth

import (
	"strings"

	"github.com/kadosh-sales/crm-api/internal/domain/entity"
)

// LiderID es el UserID sintético del rol líder (no corresponde a un asesor).
const LiderID = "LIDER"

// Scope es la identidad de la sesión aplicada a visibilidad de registros:
// el Líder ve todo; un Asesor solo lo propio.
type Scope struct {
	UserID string
	Email  string
	Role   string // entity.RoleLider | entity.RoleAsesor
}

// EsLider indica si la sesión tiene rol líder.
func (s Scope) EsLider() bool {
	return s.Role == entity.RoleLider
}

// PuedeVerLead aplica la regla de visibilidad de prospectos: el asesor ve los
// asignados a él o los que creó.
func (s Scope) PuedeVerLead(l *entity.Lead) bool {
	if s.EsLider() {
		return true
	}
	return l.AsesorID == s.UserID || strings.EqualFold(l.CreatedByEmail, s.Email)
}

// PuedeVerVenta aplica la regla de visibilidad de ventas: principal,
// secundario o creador.
func (s Scope) PuedeVerVenta(v *entity.Venta) bool {
	if s.EsLider() {
		return true
	}
	return v.AsesorPrincipalID == s.UserID ||
		v.AsesorSecundarioID == s.UserID ||
		strings.EqualFold(v.CreatedByEmail, s.Email)
}

// PuedeVerCita aplica la regla de visibilidad de citas.
func (s Scope) PuedeVerCita(c *entity.Appointment) bool {
	if s.EsLider() {
		return true
	}
	return c.AsesorID == s.UserID || strings.EqualFold(c.CreatedByEmail, s.Email)
}
