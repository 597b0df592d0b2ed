package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/backup"
	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
)

// RespaldoHandler maneja la exportación e importación del snapshot completo
// (protegido, solo administración).
type RespaldoHandler struct {
	uc *backup.BackupUseCase
}

// NewRespaldoHandler construye el handler.
func NewRespaldoHandler(uc *backup.BackupUseCase) *RespaldoHandler {
	return &RespaldoHandler{uc: uc}
}

// Exportar godoc
// @Summary      Descargar respaldo completo
// @Tags         respaldo
// @Security     Bearer
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/respaldo [get]
func (h *RespaldoHandler) Exportar(c *fiber.Ctx) error {
	raw, err := h.uc.Exportar()
	if err != nil {
		return responderError(c, err)
	}
	filename := fmt.Sprintf("respaldo-crm-%s.json", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}

// Restaurar godoc
// @Summary      Restaurar desde un respaldo
// @Description  Reemplaza el snapshot completo; única operación que toca el
// log de movimientos al por mayor.
// @Tags         respaldo
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/respaldo/restaurar [post]
func (h *RespaldoHandler) Restaurar(c *fiber.Ctx) error {
	raw := c.Body()
	if len(raw) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "respaldo vacío"})
	}
	if err := h.uc.Restaurar(raw); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
