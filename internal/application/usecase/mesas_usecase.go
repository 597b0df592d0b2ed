package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// MesasUseCase gestiona los pedidos por mesa del punto de venta. Cada item
// agregado consume stock del local y deja un movimiento de consumo con el
// número de mesa.
type MesasUseCase struct {
	runner repository.SnapshotRunner
}

// NewMesasUseCase construye el caso de uso.
func NewMesasUseCase(runner repository.SnapshotRunner) *MesasUseCase {
	return &MesasUseCase{runner: runner}
}

// Listar devuelve los pedidos activos por mesa.
func (uc *MesasUseCase) Listar() (map[int]entity.PedidoMesa, error) {
	var pedidos map[int]entity.PedidoMesa
	err := uc.runner.View(func(datos *entity.AppData) error {
		pedidos = datos.PedidosMesas
		return nil
	})
	return pedidos, err
}

// AgregarItem agrega cantidad unidades de un producto del local al pedido
// de la mesa: valida y descuenta el stock del local (una entrada que llega
// a cero se elimina), acumula el total al precio unitario del producto y
// anexa un movimiento de consumo con la mesa.
func (uc *MesasUseCase) AgregarItem(mesa int, localID, productoID string, cantidad decimal.Decimal) (*entity.PedidoMesa, error) {
	if !entity.CantidadValida(cantidad) {
		return nil, domain.ErrCantidadInvalida
	}
	var resultado entity.PedidoMesa
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		li := datos.BuscarLocal(localID)
		if li == -1 {
			return nil, domain.ErrLocalNoEncontrado
		}
		local := &datos.Locales[li]
		pi := local.BuscarPorID(productoID)
		if pi == -1 {
			return nil, domain.ErrProductoNoEncontrado
		}
		producto := local.Almacen[pi]
		if producto.Cantidad.LessThan(cantidad) {
			return nil, domain.ErrStockInsuficiente
		}

		now := time.Now()

		// Descontar del stock del local.
		producto.Cantidad = producto.Cantidad.Sub(cantidad)
		producto.FechaActualizacion = now
		if producto.Cantidad.IsPositive() {
			local.Almacen[pi] = producto
		} else {
			local.Almacen = append(local.Almacen[:pi], local.Almacen[pi+1:]...)
		}

		// Acumular en el pedido de la mesa; misma línea si repite producto.
		pedido := datos.PedidosMesas[mesa]
		pedido.Activa = true
		agregado := false
		for i := range pedido.Items {
			if pedido.Items[i].ProductoID == productoID {
				pedido.Items[i].Cantidad = pedido.Items[i].Cantidad.Add(cantidad)
				agregado = true
				break
			}
		}
		if !agregado {
			pedido.Items = append(pedido.Items, entity.PedidoItem{
				ProductoID: productoID,
				Nombre:     producto.Nombre,
				Cantidad:   cantidad,
			})
		}
		pedido.Total = pedido.Total.Add(cantidad.Mul(producto.PrecioUnitario))
		datos.PedidosMesas[mesa] = pedido

		m := mesa
		datos.Movimientos = append(datos.Movimientos, entity.Movimiento{
			ID:             uuid.NewString(),
			Tipo:           entity.MovimientoConsumo,
			ProductoID:     productoID,
			ProductoNombre: producto.Nombre,
			Cantidad:       cantidad,
			Origen:         local.Nombre,
			Fecha:          now,
			Mesa:           &m,
		})

		resultado = pedido
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}

// Cerrar desactiva el pedido de la mesa y lo vacía, devolviendo el pedido
// tal como quedó al cierre. El stock ya fue descontado item a item.
func (uc *MesasUseCase) Cerrar(mesa int) (*entity.PedidoMesa, error) {
	var cerrado entity.PedidoMesa
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		pedido, ok := datos.PedidosMesas[mesa]
		if !ok || !pedido.Activa {
			return nil, domain.ErrMesaInactiva
		}
		cerrado = pedido
		delete(datos.PedidosMesas, mesa)
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	cerrado.Activa = false
	return &cerrado, nil
}
