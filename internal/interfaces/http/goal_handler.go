package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// GoalHandler maneja las metas mensuales (protegido, escrituras solo Líder).
type GoalHandler struct {
	uc *usecase.GoalUseCase
}

// NewGoalHandler construye el handler.
func NewGoalHandler(uc *usecase.GoalUseCase) *GoalHandler {
	return &GoalHandler{uc: uc}
}

// Upsert godoc
// @Summary      Fijar la meta de un asesor para un mes (crea o actualiza)
// @Tags         metas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertGoalRequest  true  "Meta del mes"
// @Success      200   {object}  dto.GoalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/metas [put]
func (h *GoalHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertGoalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAsesorRequerido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASESOR_REQUERIDO", Message: "asesorId es requerido"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year, month (1-12) y goalAmount no negativo son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByMonth godoc
// @Summary      Listar metas de un mes
// @Tags         metas
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "Año"
// @Param        month  query  int  true  "Mes (1-12)"
// @Success      200    {array}  dto.GoalResponse
// @Router       /api/metas [get]
func (h *GoalHandler) ListByMonth(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	month := c.QueryInt("month", 0)
	out, err := h.uc.ListByMonth(c.Context(), year, month)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "year y month (1-12) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
