package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// LoteHandler maneja el inventario de lotes (protegido, escrituras solo Líder).
type LoteHandler struct {
	uc *usecase.LoteUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *usecase.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLoteRequest  true  "Datos del lote"
// @Success      201   {object}  dto.LoteResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un lote con ese nombre"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombreLote es requerido y el precio no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  dto.LoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [get]
func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el inventario de lotes
// @Tags         lotes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LoteResponse
// @Router       /api/lotes [get]
func (h *LoteHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar lote
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateLoteRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LoteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [put]
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un lote con ese nombre"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote (rechazado si una venta En Progreso lo referencia)
// @Tags         lotes
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [delete]
func (h *LoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote no encontrado"})
		case errors.Is(err, domain.ErrLoteEnVentaEnProgreso):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LOTE_COMPROMETIDO", Message: "una venta en progreso referencia este lote"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
