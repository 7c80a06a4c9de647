package crm

import "github.com/kadosh-sales/crm-api/internal/domain/entity"

// DeriveEstatusProceso calcula el estado abierto/cerrado de una venta a partir
// de su etapa. Se recalcula en cada create/update; fijar FechaCierre por sí
// sola nunca cambia el estatus. Cualquier etapa puede seguir a cualquier otra:
// el proceso de venta no restringe transiciones.
func DeriveEstatusProceso(etapa entity.SaleStage) entity.EstatusProceso {
	switch etapa {
	case entity.VentaContratado, entity.VentaCancelado:
		return entity.ProcesoCerrado
	case entity.VentaApartado, entity.VentaDS, entity.VentaEnganche:
		return entity.ProcesoEnProgreso
	}
	return entity.ProcesoEnProgreso
}
