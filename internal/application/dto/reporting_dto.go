package dto

import "github.com/shopspring/decimal"

// SummaryRequest filtros del resumen de ventas por período.
type SummaryRequest struct {
	PeriodType string `query:"periodType"` // monthly (default) | quarterly | yearly
	AsesorID   string `query:"asesorId"`   // opcional, solo Líder
	StartDate  string `query:"startDate"`  // YYYY-MM-DD
	EndDate    string `query:"endDate"`    // YYYY-MM-DD
}

// SummaryRowDTO un bucket del resumen: montos contratado/pendiente y número de cierres.
type SummaryRowDTO struct {
	Period        string          `json:"period"` // YYYY-MM, YYYY-Qn o YYYY
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	DealCount     int             `json:"dealCount"`
}

// SummaryTotalsDTO totales del pie del reporte.
type SummaryTotalsDTO struct {
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	TotalPending      decimal.Decimal `json:"totalPending"`
	AveragePerAdvisor decimal.Decimal `json:"averagePerAdvisor"`
}

// SummaryResponse resumen de ventas agrupado por período.
type SummaryResponse struct {
	Rows   []SummaryRowDTO  `json:"rows"`
	Totals SummaryTotalsDTO `json:"totals"`
}

// CommissionRowDTO comisión de un asesor en el mes consultado.
type CommissionRowDTO struct {
	AsesorID          string          `json:"asesorId"`
	NombreCompleto    string          `json:"nombreCompleto"`
	MontoTotalVendido decimal.Decimal `json:"montoTotalVendido"`
	Comision          decimal.Decimal `json:"comision"`
}

// CommissionReportDTO reporte de comisiones de un mes, ordenado por comisión descendente.
type CommissionReportDTO struct {
	Year  int                `json:"year"`
	Month int                `json:"month"`
	Rows  []CommissionRowDTO `json:"rows"`
}

// GoalProgressRowDTO avance de meta de un asesor en el mes.
type GoalProgressRowDTO struct {
	AsesorID       string          `json:"asesorId"`
	NombreCompleto string          `json:"nombreCompleto"`
	GoalAmount     decimal.Decimal `json:"goalAmount"`
	AmountPending  decimal.Decimal `json:"amountPending"`
	AmountAchieved decimal.Decimal `json:"amountAchieved"`
	Progress       decimal.Decimal `json:"progress"` // 0-100, topado en 100
}

// GoalTeamTotalsDTO totales de equipo del tablero de metas.
type GoalTeamTotalsDTO struct {
	TotalGoal     decimal.Decimal `json:"totalGoal"`
	TotalAchieved decimal.Decimal `json:"totalAchieved"`
	TotalPending  decimal.Decimal `json:"totalPending"`
	TotalProgress decimal.Decimal `json:"totalProgress"` // 0-100, topado en 100
}

// GoalsDashboardDTO tablero de metas mensuales.
type GoalsDashboardDTO struct {
	Year       int                  `json:"year"`
	Month      int                  `json:"month"`
	Rows       []GoalProgressRowDTO `json:"rows"`
	TeamTotals GoalTeamTotalsDTO    `json:"teamTotals"`
}

// LeaderBoardRowDTO fila del tablero del líder: contratado del mes + promedio histórico.
type LeaderBoardRowDTO struct {
	AsesorID         string          `json:"asesorId"`
	NombreCompleto   string          `json:"nombreCompleto"`
	TotalMes         decimal.Decimal `json:"totalMes"`
	PromedioMensual  decimal.Decimal `json:"promedioMensual"`
	DebajoDelMinimo  bool            `json:"debajoDelMinimo"`
	PromedioEnRiesgo bool            `json:"promedioEnRiesgo"`
}

// LeaderBoardDTO ranking mensual de asesores (orden descendente por TotalMes).
type LeaderBoardDTO struct {
	Year  int                 `json:"year"`
	Month int                 `json:"month"`
	Rows  []LeaderBoardRowDTO `json:"rows"`
}

// VentaEnProcesoDTO venta abierta con su antigüedad para el semáforo de proceso.
type VentaEnProcesoDTO struct {
	Venta            VentaResponse `json:"venta"`
	DiasTranscurridos int          `json:"diasTranscurridos"`
	ExcedeTiempo      bool         `json:"excedeTiempo"` // supera el máximo configurado
}

// ConteoDTO par nombre/valor para gráficas (barras o pastel).
type ConteoDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// KPIsDTO indicadores del embudo para el dashboard.
type KPIsDTO struct {
	TotalProspectos    int             `json:"totalProspectos"`
	NumeroCitas        int             `json:"numeroCitas"`
	TasaConversion     decimal.Decimal `json:"tasaConversion"` // % de prospectos en Apartado
	TotalInteracciones int             `json:"totalInteracciones"`
	ProspectosPorMes   []ConteoDTO     `json:"prospectosPorMes"`
	LugarProspeccion   []ConteoDTO     `json:"lugarProspeccion"`
}
