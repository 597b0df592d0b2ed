package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/application/informes"
)

// InformesHandler maneja los informes de inventario (protegido).
type InformesHandler struct {
	uc  *informes.InformesUseCase
	pdf *informes.PDFUseCase
}

// NewInformesHandler construye el handler.
func NewInformesHandler(uc *informes.InformesUseCase, pdf *informes.PDFUseCase) *InformesHandler {
	return &InformesHandler{uc: uc, pdf: pdf}
}

// Generar godoc
// @Summary      Informe de inventario del período
// @Tags         informes
// @Security     Bearer
// @Produce      json
// @Param        periodo    query  string  false  "dia | semana | mes (defecto: semana)"
// @Param        categoria  query  string  false  "cocina | cantina"
// @Param        localId    query  string  false  "vacío = central + todos los locales"
// @Success      200  {object}  dto.InformeResponse
// @Router       /api/informes [get]
func (h *InformesHandler) Generar(c *fiber.Ctx) error {
	var q dto.InformeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	informe, err := h.uc.Generar(q)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(informe)
}

// GenerarPDF godoc
// @Summary      Informe de inventario en PDF
// @Tags         informes
// @Security     Bearer
// @Produce      application/pdf
// @Param        periodo    query  string  false  "dia | semana | mes"
// @Param        categoria  query  string  false  "cocina | cantina"
// @Param        localId    query  string  false  "id de local"
// @Success      200  {file}  binary
// @Router       /api/informes/pdf [get]
func (h *InformesHandler) GenerarPDF(c *fiber.Ctx) error {
	var q dto.InformeQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	raw, err := h.pdf.Generar(q)
	if err != nil {
		return responderError(c, err)
	}
	filename := fmt.Sprintf("informe-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(raw)
}
