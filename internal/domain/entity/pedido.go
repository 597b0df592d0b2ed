package entity

import "github.com/shopspring/decimal"

// PedidoItem es una línea de consumo dentro del pedido de una mesa.
type PedidoItem struct {
	ProductoID string          `json:"productoId"`
	Nombre     string          `json:"nombre"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// PedidoMesa representa el pedido activo de una mesa del punto de venta.
// Total acumula cantidad * precio unitario de cada item agregado.
type PedidoMesa struct {
	Items  []PedidoItem    `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Activa bool            `json:"activa"`
}
