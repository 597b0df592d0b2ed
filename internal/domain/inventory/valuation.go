package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
)

// StockTotal suma las cantidades de una lista de productos (servicio de
// dominio puro, usado por los informes).
func StockTotal(productos []entity.Producto) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.Cantidad)
	}
	return total
}

// ValorInventario calcula el valor monetario de una lista de productos:
// Σ cantidad * precio unitario.
func ValorInventario(productos []entity.Producto) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.Cantidad.Mul(p.PrecioUnitario))
	}
	return total
}
