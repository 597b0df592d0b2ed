package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/application/inventory"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
)

// InventarioHandler maneja los suministros y el log de movimientos (protegido).
type InventarioHandler struct {
	suministro  *inventory.SuministroUseCase
	movimientos *usecase.MovimientosUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(suministro *inventory.SuministroUseCase, movimientos *usecase.MovimientosUseCase) *InventarioHandler {
	return &InventarioHandler{suministro: suministro, movimientos: movimientos}
}

// Suministrar godoc
// @Summary      Transferir stock del central a un local
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuministroRequest  true  "productoId, cantidad, localId"
// @Success      201   {object}  entity.Movimiento
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/suministros [post]
func (h *InventarioHandler) Suministrar(c *fiber.Ctx) error {
	var in dto.SuministroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.suministro.Transferir(in.ProductoID, in.Cantidad, in.LocalID)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

// ListarMovimientos godoc
// @Summary      Consultar el log de movimientos
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        tipo   query  string  false  "entrada | salida | consumo | suministro"
// @Param        desde  query  string  false  "RFC 3339"
// @Param        hasta  query  string  false  "RFC 3339"
// @Success      200  {array}  entity.Movimiento
// @Router       /api/movimientos [get]
func (h *InventarioHandler) ListarMovimientos(c *fiber.Ctx) error {
	var q dto.MovimientosQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	var desde, hasta time.Time
	var err error
	if q.Desde != "" {
		if desde, err = time.Parse(time.RFC3339, q.Desde); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "desde: formato RFC 3339"})
		}
	}
	if q.Hasta != "" {
		if hasta, err = time.Parse(time.RFC3339, q.Hasta); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "hasta: formato RFC 3339"})
		}
	}
	movs, err := h.movimientos.Listar(q.Tipo, desde, hasta)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movs), "movimientos": movs})
}
