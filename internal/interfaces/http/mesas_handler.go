package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
)

// MesasHandler maneja los pedidos por mesa del punto de venta (protegido).
type MesasHandler struct {
	uc *usecase.MesasUseCase
}

// NewMesasHandler construye el handler.
func NewMesasHandler(uc *usecase.MesasUseCase) *MesasHandler {
	return &MesasHandler{uc: uc}
}

func parseMesa(c *fiber.Ctx) (int, bool) {
	mesa, err := strconv.Atoi(c.Params("mesa"))
	if err != nil || mesa <= 0 {
		return 0, false
	}
	return mesa, true
}

// Listar godoc
// @Summary      Pedidos activos por mesa
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[int]entity.PedidoMesa
// @Router       /api/mesas [get]
func (h *MesasHandler) Listar(c *fiber.Ctx) error {
	pedidos, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos)
}

// AgregarItem godoc
// @Summary      Agregar un consumo al pedido de la mesa
// @Description  Descuenta el stock del local y registra un movimiento de consumo.
// @Tags         mesas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        mesa  path  int  true  "número de mesa"
// @Param        body  body  dto.AgregarItemMesaRequest  true  "localId, productoId, cantidad"
// @Success      200   {object}  entity.PedidoMesa
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mesas/{mesa}/items [post]
func (h *MesasHandler) AgregarItem(c *fiber.Ctx) error {
	mesa, ok := parseMesa(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MESA", Message: "número de mesa inválido"})
	}
	var in dto.AgregarItemMesaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido, err := h.uc.AgregarItem(mesa, in.LocalID, in.ProductoID, in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedido)
}

// Cerrar godoc
// @Summary      Cerrar el pedido de la mesa
// @Tags         mesas
// @Security     Bearer
// @Produce      json
// @Param        mesa  path  int  true  "número de mesa"
// @Success      200   {object}  entity.PedidoMesa
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/mesas/{mesa}/cerrar [post]
func (h *MesasHandler) Cerrar(c *fiber.Ctx) error {
	mesa, ok := parseMesa(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MESA", Message: "número de mesa inválido"})
	}
	pedido, err := h.uc.Cerrar(mesa)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedido)
}
