package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada    = "entrada"    // ingreso al almacén central
	MovimientoSalida     = "salida"     // egreso del almacén central o de un local
	MovimientoConsumo    = "consumo"    // consumo en mesa de un local
	MovimientoSuministro = "suministro" // traslado del almacén central a un local
)

// OrigenAlmacenCentral es la etiqueta de origen de todo suministro.
const OrigenAlmacenCentral = "Almacén Central"

// Movimiento es un registro de auditoría inmutable de un cambio de stock.
// Una vez anexado al log nunca se modifica ni se elimina; solo un
// restablecimiento completo de datos (restauración de respaldo) lo toca.
type Movimiento struct {
	ID             string          `json:"id"`
	Tipo           string          `json:"tipo"` // entrada | salida | consumo | suministro
	ProductoID     string          `json:"productoId"`
	ProductoNombre string          `json:"productoNombre,omitempty"` // denormalizado para informes
	Cantidad       decimal.Decimal `json:"cantidad"`
	Origen         string          `json:"origen,omitempty"`
	Destino        string          `json:"destino,omitempty"`
	Fecha          time.Time       `json:"fecha"`
	Mesa           *int            `json:"mesa,omitempty"` // solo consumos de punto de venta
}
