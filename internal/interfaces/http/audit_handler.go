package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// AuditHandler maneja el registro de auditoría. Público en la variante
// observada del protocolo; los clientes reportan accesos aquí.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar una acción en el log
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditLogRequest  true  "username y action"
// @Success      200   {object}  dto.AuditLogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /logs [post]
func (h *AuditHandler) Record(c *fiber.Ctx) error {
	var in dto.CreateAuditLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Record(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y action son requeridos"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar el log (más reciente primero)
// @Tags         logs
// @Produce      json
// @Success      200  {array}  dto.AuditLogResponse
// @Router       /logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
