package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/reporting"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// ReportingHandler expone los reportes del CRM (protegido; los reportes de
// equipo los monta el router bajo RequireLider).
type ReportingHandler struct {
	svc *reporting.Service
	pdf reporting.CommissionPDF
}

// NewReportingHandler construye el handler.
func NewReportingHandler(svc *reporting.Service, pdf reporting.CommissionPDF) *ReportingHandler {
	return &ReportingHandler{svc: svc, pdf: pdf}
}

// Summary godoc
// @Summary      Resumen de ventas por período
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        periodType  query  string  false  "monthly | quarterly | yearly"  default(monthly)
// @Param        asesorId    query  string  false  "Filtrar por asesor (solo Líder)"
// @Param        startDate   query  string  false  "Desde (YYYY-MM-DD)"
// @Param        endDate     query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {object}  dto.SummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/resumen [get]
func (h *ReportingHandler) Summary(c *fiber.Ctx) error {
	var req dto.SummaryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query inválido"})
	}
	out, err := h.svc.Summary(c.Context(), GetScope(c), req)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// Commissions godoc
// @Summary      Comisiones del mes por asesor
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.CommissionReportDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/comisiones [get]
func (h *ReportingHandler) Commissions(c *fiber.Ctx) error {
	year, month := yearMonthOrNow(c)
	out, err := h.svc.Commissions(c.Context(), year, month)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// CommissionsPDF godoc
// @Summary      Comisiones del mes en PDF
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/comisiones/pdf [get]
func (h *ReportingHandler) CommissionsPDF(c *fiber.Ctx) error {
	year, month := yearMonthOrNow(c)
	report, err := h.svc.Commissions(c.Context(), year, month)
	if err != nil {
		return reportError(c, err)
	}
	doc, err := h.pdf.Render(*report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="comisiones-%04d-%02d.pdf"`, year, month))
	return c.Send(doc)
}

// GoalsDashboard godoc
// @Summary      Tablero de metas del mes
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.GoalsDashboardDTO
// @Router       /api/reportes/metas [get]
func (h *ReportingHandler) GoalsDashboard(c *fiber.Ctx) error {
	year, month := yearMonthOrNow(c)
	out, err := h.svc.GoalsDashboard(c.Context(), year, month)
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// LeaderBoard godoc
// @Summary      Ranking mensual de asesores
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {object}  dto.LeaderBoardDTO
// @Router       /api/reportes/tablero [get]
func (h *ReportingHandler) LeaderBoard(c *fiber.Ctx) error {
	year, month := yearMonthOrNow(c)
	out, err := h.svc.LeaderBoard(c.Context(), year, month, time.Now())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// VentasEnProceso godoc
// @Summary      Ventas abiertas con su antigüedad (semáforo de proceso)
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VentaEnProcesoDTO
// @Router       /api/reportes/en-proceso [get]
func (h *ReportingHandler) VentasEnProceso(c *fiber.Ctx) error {
	out, err := h.svc.VentasEnProceso(c.Context(), GetScope(c), time.Now())
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// KPIs godoc
// @Summary      Indicadores del embudo para el dashboard
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.KPIsDTO
// @Router       /api/reportes/kpis [get]
func (h *ReportingHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.svc.KPIs(c.Context(), GetScope(c))
	if err != nil {
		return reportError(c, err)
	}
	return c.JSON(out)
}

// yearMonthOrNow lee year/month del query; sin parámetros usa el mes actual.
func yearMonthOrNow(c *fiber.Ctx) (int, int) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	return year, month
}

func reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el filtro por asesor es solo para el rol Líder"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de reporte inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
