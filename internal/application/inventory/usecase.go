package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	domaininv "github.com/cafeavellaneda/almacen-api/internal/domain/inventory"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// SuministroUseCase orquesta las transferencias del almacén central hacia
// los locales: cargar snapshot → ApplyTransfer (dominio puro) → guardar.
// El runner serializa la secuencia contra otros casos de uso.
type SuministroUseCase struct {
	runner repository.SnapshotRunner
}

// NewSuministroUseCase construye el caso de uso.
func NewSuministroUseCase(runner repository.SnapshotRunner) *SuministroUseCase {
	return &SuministroUseCase{runner: runner}
}

// Transferir mueve cantidad unidades del producto del central al local y
// devuelve el movimiento de suministro registrado. Los rechazos del motor
// (cantidad inválida, producto o local inexistente, stock insuficiente)
// llegan como errores de dominio y no tocan el estado persistido.
func (uc *SuministroUseCase) Transferir(productoID string, cantidad decimal.Decimal, localID string) (*entity.Movimiento, error) {
	var mov *entity.Movimiento
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		res, err := domaininv.ApplyTransfer(datos, productoID, cantidad, localID, time.Now())
		if err != nil {
			return nil, err
		}
		mov = res.Movimiento
		return res.Datos, nil
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
