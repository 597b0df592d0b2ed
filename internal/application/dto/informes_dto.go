package dto

import "github.com/shopspring/decimal"

// InformeQuery filtros para GET /api/informes.
type InformeQuery struct {
	Periodo   string `query:"periodo"`   // dia | semana | mes (defecto: semana)
	Categoria string `query:"categoria"` // cocina | cantina | vacío = todas
	LocalID   string `query:"localId"`   // vacío = central + todos los locales
}

// InformeMetricas métricas agregadas del período.
type InformeMetricas struct {
	Entradas        decimal.Decimal `json:"entradas"` // suministros + entradas
	Consumos        decimal.Decimal `json:"consumos"`
	StockActual     decimal.Decimal `json:"stockActual"`
	ValorInventario decimal.Decimal `json:"valorInventario"`
}

// InformeSeriePunto un día de la serie de entradas/consumos.
type InformeSeriePunto struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Entradas decimal.Decimal `json:"entradas"`
	Consumos decimal.Decimal `json:"consumos"`
}

// InformeProducto desglose por producto dentro del período.
type InformeProducto struct {
	Nombre   string          `json:"nombre"`
	Entradas decimal.Decimal `json:"entradas"`
	Consumos decimal.Decimal `json:"consumos"`
	Stock    decimal.Decimal `json:"stock"`
}

// InformeResponse respuesta de GET /api/informes.
type InformeResponse struct {
	Periodo   string              `json:"periodo"`
	Metricas  InformeMetricas     `json:"metricas"`
	Serie     []InformeSeriePunto `json:"serie"`
	Productos []InformeProducto   `json:"productos"`
}
