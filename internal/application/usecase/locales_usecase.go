package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// LocalesUseCase administra los locales y sus sub-inventarios.
type LocalesUseCase struct {
	runner repository.SnapshotRunner
}

// NewLocalesUseCase construye el caso de uso.
func NewLocalesUseCase(runner repository.SnapshotRunner) *LocalesUseCase {
	return &LocalesUseCase{runner: runner}
}

// Crear da de alta un local activo con almacén vacío.
func (uc *LocalesUseCase) Crear(nombre string) (*entity.Local, error) {
	if nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	nuevo := entity.Local{
		ID:      uuid.NewString(),
		Nombre:  nombre,
		Activo:  true,
		Almacen: []entity.Producto{},
	}
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		datos.Locales = append(datos.Locales, nuevo)
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	return &nuevo, nil
}

// Listar devuelve todos los locales.
func (uc *LocalesUseCase) Listar() ([]entity.Local, error) {
	var locales []entity.Local
	err := uc.runner.View(func(datos *entity.AppData) error {
		locales = datos.Locales
		return nil
	})
	return locales, err
}

// Obtener devuelve el local con ese id.
func (uc *LocalesUseCase) Obtener(localID string) (*entity.Local, error) {
	var local *entity.Local
	err := uc.runner.View(func(datos *entity.AppData) error {
		idx := datos.BuscarLocal(localID)
		if idx == -1 {
			return domain.ErrLocalNoEncontrado
		}
		l := datos.Locales[idx]
		local = &l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return local, nil
}

// Eliminar borra el local. El borrado arrastra en cascada su stock: el
// local es dueño exclusivo de su almacén.
func (uc *LocalesUseCase) Eliminar(localID string) error {
	return uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		idx := datos.BuscarLocal(localID)
		if idx == -1 {
			return nil, domain.ErrLocalNoEncontrado
		}
		datos.Locales = append(datos.Locales[:idx], datos.Locales[idx+1:]...)
		return datos, nil
	})
}

// AjustarCantidad fija la cantidad de un producto del almacén del local.
// Una cantidad <= 0 elimina la entrada: en un local la destrucción por
// ajuste a cero es parte del ciclo de vida del producto. La diferencia
// queda auditada como movimiento de entrada o salida según el signo.
func (uc *LocalesUseCase) AjustarCantidad(localID, productoID string, nuevaCantidad decimal.Decimal) error {
	return uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
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
		if nuevaCantidad.IsNegative() {
			nuevaCantidad = decimal.Zero
		}
		delta := nuevaCantidad.Sub(producto.Cantidad)

		now := time.Now()
		if nuevaCantidad.IsPositive() {
			local.Almacen[pi].Cantidad = nuevaCantidad
			local.Almacen[pi].FechaActualizacion = now
		} else {
			local.Almacen = append(local.Almacen[:pi], local.Almacen[pi+1:]...)
		}

		if !delta.IsZero() {
			mov := entity.Movimiento{
				ID:             uuid.NewString(),
				ProductoID:     producto.ID,
				ProductoNombre: producto.Nombre,
				Cantidad:       delta.Abs(),
				Fecha:          now,
			}
			if delta.IsPositive() {
				mov.Tipo = entity.MovimientoEntrada
				mov.Destino = local.Nombre
			} else {
				mov.Tipo = entity.MovimientoSalida
				mov.Origen = local.Nombre
			}
			datos.Movimientos = append(datos.Movimientos, mov)
		}
		return datos, nil
	})
}
