package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// VentaHandler maneja las peticiones HTTP para ventas (protegido).
type VentaHandler struct {
	uc *usecase.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar una venta
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVentaRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), in)
	if err != nil {
		return ventaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return ventaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas visibles para la sesión
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VentaResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetScope(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar venta (el estatus del proceso se rederiva de la etapa)
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.UpdateVentaRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.VentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return ventaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

func ventaError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la venta no es visible para esta sesión"})
	case errors.Is(err, domain.ErrAsesorRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASESOR_REQUERIDO", Message: "asesorPrincipalId es requerido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos (monto no negativo, etapa conocida, fechas YYYY-MM-DD)"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
