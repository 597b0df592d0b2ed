package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto. Cada producto pertenece a la cocina o a la cantina.
const (
	CategoriaCocina  = "cocina"
	CategoriaCantina = "cantina"
)

// Producto representa una unidad de inventario (SKU), ya sea del almacén
// central o del almacén propio de un local.
// Cantidad nunca se persiste negativa; en el almacén central una entrada
// que llega a cero se elimina en lugar de conservarse.
type Producto struct {
	ID                 string          `json:"id"`
	Nombre             string          `json:"nombre"`
	Categoria          string          `json:"categoria"` // cocina | cantina
	Cantidad           decimal.Decimal `json:"cantidad"`
	Unidad             string          `json:"unidad"` // etiqueta libre: "kg", "u", "lt"...
	PrecioUnitario     decimal.Decimal `json:"precioUnitario"`
	FechaActualizacion time.Time       `json:"fechaActualizacion"`
}

// EsValido verifica los invariantes básicos de un producto persistible:
// nombre no vacío, cantidad >= 0 y precio >= 0.
func (p Producto) EsValido() bool {
	if p.Nombre == "" {
		return false
	}
	if p.Cantidad.IsNegative() || p.PrecioUnitario.IsNegative() {
		return false
	}
	return p.Categoria == CategoriaCocina || p.Categoria == CategoriaCantina
}

// MismaClave indica si otro producto coincide en la clave de fusión de
// transferencias: nombre, unidad y categoría. La clave NO es el id: las
// copias del lado del local reciben un id propio al materializarse.
func (p Producto) MismaClave(otro Producto) bool {
	return p.Nombre == otro.Nombre && p.Unidad == otro.Unidad && p.Categoria == otro.Categoria
}

// CantidadValida indica si una cantidad sirve como monto de transferencia
// o consumo: estrictamente mayor que cero.
func CantidadValida(cantidad decimal.Decimal) bool {
	return cantidad.IsPositive()
}
