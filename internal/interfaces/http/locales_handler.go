package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
)

// LocalesHandler maneja los locales y sus sub-inventarios (protegido).
type LocalesHandler struct {
	uc *usecase.LocalesUseCase
}

// NewLocalesHandler construye el handler.
func NewLocalesHandler(uc *usecase.LocalesUseCase) *LocalesHandler {
	return &LocalesHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear un local
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearLocalRequest  true  "nombre"
// @Success      201   {object}  entity.Local
// @Router       /api/locales [post]
func (h *LocalesHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearLocalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	local, err := h.uc.Crear(in.Nombre)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(local)
}

// Listar godoc
// @Summary      Listar locales
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Local
// @Router       /api/locales [get]
func (h *LocalesHandler) Listar(c *fiber.Ctx) error {
	locales, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(locales), "locales": locales})
}

// Obtener godoc
// @Summary      Obtener un local con su almacén
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "id del local"
// @Success      200  {object}  entity.Local
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [get]
func (h *LocalesHandler) Obtener(c *fiber.Ctx) error {
	local, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(local)
}

// Eliminar godoc
// @Summary      Borrar un local (arrastra su stock)
// @Tags         locales
// @Security     Bearer
// @Param        id  path  string  true  "id del local"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [delete]
func (h *LocalesHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AjustarCantidad godoc
// @Summary      Ajustar la cantidad de un producto del local
// @Description  Una cantidad <= 0 elimina la entrada del almacén del local.
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Param        id          path  string  true  "id del local"
// @Param        productoId  path  string  true  "id del producto local"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id}/almacen/{productoId} [patch]
func (h *LocalesHandler) AjustarCantidad(c *fiber.Ctx) error {
	var in dto.AjustarCantidadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AjustarCantidad(c.Params("id"), c.Params("productoId"), in.Cantidad); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
