package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
)

// AlmacenHandler maneja el libro de stock del almacén central (protegido).
type AlmacenHandler struct {
	uc *usecase.AlmacenUseCase
}

// NewAlmacenHandler construye el handler.
func NewAlmacenHandler(uc *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar el almacén central
// @Tags         almacen
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Producto
// @Router       /api/almacen [get]
func (h *AlmacenHandler) Listar(c *fiber.Ctx) error {
	productos, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(productos), "productos": productos})
}

// Agregar godoc
// @Summary      Dar de alta un producto en el central
// @Tags         almacen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarProductoRequest  true  "nombre, categoria, cantidad, unidad, precioUnitario"
// @Success      201   {object}  entity.Producto
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/almacen [post]
func (h *AlmacenHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Agregar(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

// Actualizar godoc
// @Summary      Editar un producto del central
// @Tags         almacen
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del producto"
// @Success      200   {object}  entity.Producto
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/almacen/{id} [put]
func (h *AlmacenHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	producto, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

// Eliminar godoc
// @Summary      Borrar un producto del central
// @Tags         almacen
// @Security     Bearer
// @Param        id  path  string  true  "id del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/almacen/{id} [delete]
func (h *AlmacenHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
