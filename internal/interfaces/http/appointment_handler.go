package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// AppointmentHandler maneja las citas del calendario (protegido).
type AppointmentHandler struct {
	uc *usecase.AppointmentUseCase
}

// NewAppointmentHandler construye el handler.
func NewAppointmentHandler(uc *usecase.AppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Create godoc
// @Summary      Agendar una cita
// @Tags         citas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentRequest  true  "Datos de la cita (fecha RFC 3339)"
// @Success      201   {object}  dto.AppointmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/citas [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAsesorRequerido):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASESOR_REQUERIDO", Message: "asesorId es requerido"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo y fecha (RFC 3339) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar citas visibles para la sesión
// @Tags         citas
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial (RFC 3339)"
// @Param        hasta  query  string  false  "Fecha final (RFC 3339)"
// @Success      200    {array}  dto.AppointmentResponse
// @Router       /api/citas [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	var desde, hasta time.Time
	if s := c.Query("desde"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde debe ser RFC 3339"})
		}
		desde = t
	}
	if s := c.Query("hasta"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hasta debe ser RFC 3339"})
		}
		hasta = t
	}
	out, err := h.uc.List(c.Context(), GetScope(c), desde, hasta)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Cancelar una cita
// @Tags         citas
// @Security     Bearer
// @Param        id  path  string  true  "ID de la cita"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/citas/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetScope(c), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cita no encontrada"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la cita no es visible para esta sesión"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
