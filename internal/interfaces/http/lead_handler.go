package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kadosh-sales/crm-api/internal/application/dto"
	"github.com/kadosh-sales/crm-api/internal/application/usecase"
	"github.com/kadosh-sales/crm-api/internal/domain"
)

// LeadHandler maneja las peticiones HTTP para prospectos (protegido).
type LeadHandler struct {
	uc *usecase.LeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *usecase.LeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un prospecto
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadRequest  true  "Datos del prospecto"
// @Success      201   {object}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetScope(c), in)
	if err != nil {
		return leadError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateBatch godoc
// @Summary      Importar varios prospectos
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLeadsBatchRequest  true  "Prospectos a importar"
// @Success      201   {array}  dto.LeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/leads/batch [post]
func (h *LeadHandler) CreateBatch(c *fiber.Ctx) error {
	var in dto.CreateLeadsBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateBatch(c.Context(), GetScope(c), in)
	if err != nil {
		return leadError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener prospecto por ID
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del prospecto"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), GetScope(c), c.Params("id"))
	if err != nil {
		return leadError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar prospectos visibles para la sesión
// @Tags         leads
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LeadResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), GetScope(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar prospecto (sin cambio de etapa)
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del prospecto"
// @Param        body  body  dto.UpdateLeadRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.LeadResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return leadError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Cambiar la etapa de un prospecto (Kanban)
// @Description  Al entrar a Apartado sin venta previa del cliente se crea una venta automática; si esa segunda escritura falla el cambio de etapa se conserva y el error viaja en ventaCreadaError.
// @Tags         leads
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del prospecto"
// @Param        body  body  dto.TransitionLeadRequest  true  "Nueva etapa"
// @Success      200   {object}  dto.TransitionLeadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/transition [post]
func (h *LeadHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(c.Context(), GetScope(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrMotivoDescarteVacio) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MOTIVO_REQUERIDO", Message: "descartar un prospecto exige motivoDescarte"})
		}
		return leadError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar prospecto
// @Tags         leads
// @Security     Bearer
// @Param        id  path  string  true  "ID del prospecto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetScope(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "prospecto no encontrado"})
		}
		return leadError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func leadError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el prospecto no es visible para esta sesión"})
	case errors.Is(err, domain.ErrAsesorRequerido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ASESOR_REQUERIDO", Message: "asesorId es requerido"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
