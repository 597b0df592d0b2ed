package dto

import "github.com/shopspring/decimal"

// AgregarProductoRequest body para POST /api/almacen.
type AgregarProductoRequest struct {
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"` // cocina | cantina
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// ActualizarProductoRequest body para PUT /api/almacen/:id.
type ActualizarProductoRequest struct {
	Nombre         string          `json:"nombre"`
	Categoria      string          `json:"categoria"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	Unidad         string          `json:"unidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
}

// CrearLocalRequest body para POST /api/locales.
type CrearLocalRequest struct {
	Nombre string `json:"nombre"`
}

// AjustarCantidadRequest body para PATCH /api/locales/:id/almacen/:productoId.
// Una cantidad <= 0 elimina la entrada del almacén del local.
type AjustarCantidadRequest struct {
	Cantidad decimal.Decimal `json:"cantidad"`
}
