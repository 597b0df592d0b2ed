package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// AlmacenUseCase administra el libro de stock del almacén central.
type AlmacenUseCase struct {
	runner repository.SnapshotRunner
}

// NewAlmacenUseCase construye el caso de uso.
func NewAlmacenUseCase(runner repository.SnapshotRunner) *AlmacenUseCase {
	return &AlmacenUseCase{runner: runner}
}

// Listar devuelve el libro del almacén central.
func (uc *AlmacenUseCase) Listar() ([]entity.Producto, error) {
	var productos []entity.Producto
	err := uc.runner.View(func(datos *entity.AppData) error {
		productos = datos.AlmacenCentral
		return nil
	})
	return productos, err
}

// Agregar da de alta un producto en el almacén central con id nuevo y
// fecha fresca, y registra un movimiento de entrada.
func (uc *AlmacenUseCase) Agregar(in dto.AgregarProductoRequest) (*entity.Producto, error) {
	now := time.Now()
	nuevo := entity.Producto{
		ID:                 uuid.NewString(),
		Nombre:             in.Nombre,
		Categoria:          in.Categoria,
		Cantidad:           in.Cantidad,
		Unidad:             in.Unidad,
		PrecioUnitario:     in.PrecioUnitario,
		FechaActualizacion: now,
	}
	if !nuevo.EsValido() {
		return nil, domain.ErrInvalidInput
	}
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		datos.AlmacenCentral = append(datos.AlmacenCentral, nuevo)
		datos.Movimientos = append(datos.Movimientos, entity.Movimiento{
			ID:             uuid.NewString(),
			Tipo:           entity.MovimientoEntrada,
			ProductoID:     nuevo.ID,
			ProductoNombre: nuevo.Nombre,
			Cantidad:       nuevo.Cantidad,
			Destino:        entity.OrigenAlmacenCentral,
			Fecha:          now,
		})
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	return &nuevo, nil
}

// Actualizar reemplaza los campos editables del producto identificado.
func (uc *AlmacenUseCase) Actualizar(productoID string, in dto.ActualizarProductoRequest) (*entity.Producto, error) {
	var actualizado entity.Producto
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		idx := datos.BuscarCentral(productoID)
		if idx == -1 {
			return nil, domain.ErrProductoNoEncontrado
		}
		p := datos.AlmacenCentral[idx]
		p.Nombre = in.Nombre
		p.Categoria = in.Categoria
		p.Cantidad = in.Cantidad
		p.Unidad = in.Unidad
		p.PrecioUnitario = in.PrecioUnitario
		p.FechaActualizacion = time.Now()
		if !p.EsValido() {
			return nil, domain.ErrInvalidInput
		}
		datos.AlmacenCentral[idx] = p
		actualizado = p
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	return &actualizado, nil
}

// Eliminar borra el producto del almacén central.
func (uc *AlmacenUseCase) Eliminar(productoID string) error {
	return uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		idx := datos.BuscarCentral(productoID)
		if idx == -1 {
			return nil, domain.ErrProductoNoEncontrado
		}
		datos.AlmacenCentral = append(datos.AlmacenCentral[:idx], datos.AlmacenCentral[idx+1:]...)
		return datos, nil
	})
}
