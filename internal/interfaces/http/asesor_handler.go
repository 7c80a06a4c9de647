package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// AsesorHandler maneja las peticiones HTTP para Asesor (protegido).
// Las escrituras las monta el router solo bajo RequireLider.
type AsesorHandler struct {
	uc *usecase.AsesorUseCase
}

// NewAsesorHandler construye el handler.
func NewAsesorHandler(uc *usecase.AsesorUseCase) *AsesorHandler {
	return &AsesorHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un asesor
// @Tags         asesores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAsesorRequest  true  "Datos del asesor"
// @Success      201   {object}  dto.AsesorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/asesores [post]
func (h *AsesorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAsesorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DUPLICADO", Message: "ya existe un asesor con ese email"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombreCompleto, email y fechaIngreso son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener asesor por ID
// @Tags         asesores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del asesor"
// @Success      200  {object}  dto.AsesorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/asesores/{id} [get]
func (h *AsesorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asesor no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asesores
// @Tags         asesores
// @Security     Bearer
// @Produce      json
// @Param        soloActivos  query  bool  false  "Solo asesores con estatus Activo"
// @Success      200  {array}  dto.AsesorResponse
// @Router       /api/asesores [get]
func (h *AsesorHandler) List(c *fiber.Ctx) error {
	soloActivos := c.QueryBool("soloActivos", false)
	out, err := h.uc.List(c.Context(), soloActivos)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar asesor
// @Tags         asesores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del asesor"
// @Param        body  body  dto.UpdateAsesorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AsesorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/asesores/{id} [put]
func (h *AsesorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAsesorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DUPLICADO", Message: "ya existe un asesor con ese email"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "asesor no encontrado"})
	}
	return c.JSON(out)
}
