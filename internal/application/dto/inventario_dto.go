package dto

import "github.com/shopspring/decimal"

// SuministroRequest body para POST /api/suministros: transferir cantidad
// unidades de un producto del almacén central al local destino.
type SuministroRequest struct {
	ProductoID string          `json:"productoId"`
	Cantidad   decimal.Decimal `json:"cantidad"`
	LocalID    string          `json:"localId"`
}

// AgregarItemMesaRequest body para POST /api/mesas/:mesa/items.
type AgregarItemMesaRequest struct {
	LocalID    string          `json:"localId"`
	ProductoID string          `json:"productoId"`
	Cantidad   decimal.Decimal `json:"cantidad"`
}

// MovimientosQuery filtros para GET /api/movimientos.
type MovimientosQuery struct {
	Tipo  string `query:"tipo"`
	Desde string `query:"desde"` // RFC 3339, opcional
	Hasta string `query:"hasta"` // RFC 3339, opcional
}
