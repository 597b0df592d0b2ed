package usecase

import (
	"time"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// MovimientosUseCase consulta el log de auditoría. El log es de solo
// anexado: este caso de uso nunca lo modifica.
type MovimientosUseCase struct {
	runner repository.SnapshotRunner
}

// NewMovimientosUseCase construye el caso de uso.
func NewMovimientosUseCase(runner repository.SnapshotRunner) *MovimientosUseCase {
	return &MovimientosUseCase{runner: runner}
}

// Listar devuelve los movimientos, opcionalmente filtrados por tipo y por
// rango de fechas (desde/hasta inclusive; el tiempo cero desactiva el filtro).
func (uc *MovimientosUseCase) Listar(tipo string, desde, hasta time.Time) ([]entity.Movimiento, error) {
	var out []entity.Movimiento
	err := uc.runner.View(func(datos *entity.AppData) error {
		for _, m := range datos.Movimientos {
			if tipo != "" && m.Tipo != tipo {
				continue
			}
			if !desde.IsZero() && m.Fecha.Before(desde) {
				continue
			}
			if !hasta.IsZero() && m.Fecha.After(hasta) {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	return out, err
}
