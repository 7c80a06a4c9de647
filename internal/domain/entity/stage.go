package entity

// StatusProspecto es la etapa de un prospecto en el embudo.
// Son cadenas cerradas, no texto libre: todo switch sobre ellas debe ser exhaustivo.
type StatusProspecto string

const (
	ProspectoNoContactado       StatusProspecto = "No Contactado"
	ProspectoContactado         StatusProspecto = "Contactado"
	ProspectoPerfilado          StatusProspecto = "Perfilado"
	ProspectoInteresado         StatusProspecto = "Interesado"
	ProspectoCita               StatusProspecto = "Cita"
	ProspectoRevisandoPropuesta StatusProspecto = "Revisando Propuesta"
	ProspectoObjeciones         StatusProspecto = "Objeciones"
	ProspectoApartado           StatusProspecto = "Apartado"
	ProspectoDescartado         StatusProspecto = "Descartado"
)

// KanbanStages es el orden de columnas del tablero. Apartado y Descartado son
// absorbentes en la UI pero el modelo permite mover un registro de nuevo.
var KanbanStages = []StatusProspecto{
	ProspectoNoContactado,
	ProspectoContactado,
	ProspectoPerfilado,
	ProspectoInteresado,
	ProspectoCita,
	ProspectoRevisandoPropuesta,
	ProspectoObjeciones,
	ProspectoApartado,
	ProspectoDescartado,
}

// Valida indica si el valor pertenece al embudo.
func (s StatusProspecto) Valida() bool {
	switch s {
	case ProspectoNoContactado, ProspectoContactado, ProspectoPerfilado,
		ProspectoInteresado, ProspectoCita, ProspectoRevisandoPropuesta,
		ProspectoObjeciones, ProspectoApartado, ProspectoDescartado:
		return true
	}
	return false
}

// SaleStage es la etapa del proceso de una venta.
type SaleStage string

const (
	VentaApartado   SaleStage = "Apartado"
	VentaDS         SaleStage = "DS" // pago inicial (down-payment)
	VentaEnganche   SaleStage = "Enganche"
	VentaContratado SaleStage = "Contratado"
	VentaCancelado  SaleStage = "Cancelado"
)

// EtapasVenta agrupa todas las etapas; EtapasPendientes son las que todavía
// no cierran y cuentan como "pendiente a contratar" en los reportes.
var (
	EtapasVenta      = []SaleStage{VentaApartado, VentaDS, VentaEnganche, VentaContratado, VentaCancelado}
	EtapasPendientes = []SaleStage{VentaApartado, VentaDS, VentaEnganche}
)

// Valida indica si el valor es una etapa de venta conocida.
func (s SaleStage) Valida() bool {
	switch s {
	case VentaApartado, VentaDS, VentaEnganche, VentaContratado, VentaCancelado:
		return true
	}
	return false
}

// Pendiente indica si la etapa cuenta como monto pendiente a contratar.
func (s SaleStage) Pendiente() bool {
	switch s {
	case VentaApartado, VentaDS, VentaEnganche:
		return true
	case VentaContratado, VentaCancelado:
		return false
	}
	return false
}

// EstatusProceso es el estado abierto/cerrado de una venta,
// función pura de la etapa (nunca se guarda a mano).
type EstatusProceso string

const (
	ProcesoEnProgreso EstatusProceso = "En Progreso"
	ProcesoCerrado    EstatusProceso = "Cerrado"
)
