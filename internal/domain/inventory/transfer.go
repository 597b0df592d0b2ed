package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
)

// TransferResult es el resultado de una transferencia aceptada: el nuevo
// snapshot y el movimiento de suministro anexado a su log.
type TransferResult struct {
	Datos      *entity.AppData
	Movimiento *entity.Movimiento
}

// ApplyTransfer mueve cantidad unidades del producto productoID del almacén
// central hacia el stock del local localID (servicio de dominio puro, sin I/O).
//
// Nunca muta el snapshot de entrada: opera sobre una copia por valor, de modo
// que el llamador conserva una referencia segura al estado previo. La
// persistencia del resultado es responsabilidad del llamador.
//
// Rechazos, verificados en este orden de precedencia:
//  1. cantidad <= 0                      -> ErrCantidadInvalida
//  2. producto inexistente en el central -> ErrProductoNoEncontrado
//  3. stock central < cantidad (todo o nada, sin parciales) -> ErrStockInsuficiente
//  4. local inexistente                  -> ErrLocalNoEncontrado
//
// En caso de éxito:
//   - El producto central se decrementa; si queda en cero se elimina la
//     entrada (nunca se persiste cantidad <= 0 en el central).
//   - El stock del local se fusiona por clave (nombre, unidad, categoría);
//     si no hay coincidencia se materializa una entrada nueva con id uuid
//     propio, distinto del id central.
//   - Se anexa exactamente un Movimiento de tipo suministro con origen
//     "Almacén Central", destino el nombre del local y fecha now.
func ApplyTransfer(datosIn *entity.AppData, productoID string, cantidad decimal.Decimal, localID string, now time.Time) (*TransferResult, error) {
	if !entity.CantidadValida(cantidad) {
		return nil, domain.ErrCantidadInvalida
	}

	prodIdx := datosIn.BuscarCentral(productoID)
	if prodIdx == -1 {
		return nil, domain.ErrProductoNoEncontrado
	}
	if datosIn.AlmacenCentral[prodIdx].Cantidad.LessThan(cantidad) {
		return nil, domain.ErrStockInsuficiente
	}

	localIdx := datosIn.BuscarLocal(localID)
	if localIdx == -1 {
		return nil, domain.ErrLocalNoEncontrado
	}

	datos := datosIn.Clone()

	// Restar del central; una entrada que llega a cero se elimina.
	central := datos.AlmacenCentral[prodIdx]
	central.Cantidad = central.Cantidad.Sub(cantidad)
	central.FechaActualizacion = now
	if central.Cantidad.IsPositive() {
		datos.AlmacenCentral[prodIdx] = central
	} else {
		datos.AlmacenCentral = append(datos.AlmacenCentral[:prodIdx], datos.AlmacenCentral[prodIdx+1:]...)
	}

	// Fusionar en el local por (nombre, unidad, categoría). La copia del
	// local nunca reutiliza el id central.
	local := &datos.Locales[localIdx]
	if i := local.BuscarEnAlmacen(central); i >= 0 {
		local.Almacen[i].Cantidad = local.Almacen[i].Cantidad.Add(cantidad)
		local.Almacen[i].FechaActualizacion = now
	} else {
		local.Almacen = append(local.Almacen, entity.Producto{
			ID:                 uuid.NewString(),
			Nombre:             central.Nombre,
			Categoria:          central.Categoria,
			Cantidad:           cantidad,
			Unidad:             central.Unidad,
			PrecioUnitario:     central.PrecioUnitario,
			FechaActualizacion: now,
		})
	}

	mov := entity.Movimiento{
		ID:             uuid.NewString(),
		Tipo:           entity.MovimientoSuministro,
		ProductoID:     central.ID,
		ProductoNombre: central.Nombre,
		Cantidad:       cantidad,
		Origen:         entity.OrigenAlmacenCentral,
		Destino:        local.Nombre,
		Fecha:          now,
	}
	datos.Movimientos = append(datos.Movimientos, mov)

	return &TransferResult{Datos: datos, Movimiento: &mov}, nil
}
