// Package backup exporta e importa el snapshot completo. El respaldo
// round-tripea exactamente la misma estructura JSON que persiste el store.
package backup

import (
	"encoding/json"
	"time"

	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
)

// BackupUseCase casos de uso de respaldo y restauración.
type BackupUseCase struct {
	runner repository.SnapshotRunner
	now    func() time.Time
}

// NewBackupUseCase construye el caso de uso. now nil usa time.Now.
func NewBackupUseCase(runner repository.SnapshotRunner, now func() time.Time) *BackupUseCase {
	if now == nil {
		now = time.Now
	}
	return &BackupUseCase{runner: runner, now: now}
}

// Exportar serializa el snapshot completo, estampando UltimoRespaldo, y
// fuerza el flush a disco antes de entregar los bytes.
func (uc *BackupUseCase) Exportar() ([]byte, error) {
	var raw []byte
	err := uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		datos.UltimoRespaldo = uc.now()
		var err error
		raw, err = json.Marshal(datos)
		if err != nil {
			return nil, err
		}
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	if err := uc.runner.Flush(); err != nil {
		return nil, err
	}
	return raw, nil
}

// Restaurar reemplaza el snapshot completo por el contenido del respaldo.
// Valida la forma mínima antes de aceptar: los productos del central deben
// cumplir sus invariantes (nombre no vacío, cantidades y precios >= 0).
func (uc *BackupUseCase) Restaurar(raw []byte) error {
	var datos entity.AppData
	if err := json.Unmarshal(raw, &datos); err != nil {
		return domain.ErrInvalidInput
	}
	for _, p := range datos.AlmacenCentral {
		if !p.EsValido() {
			return domain.ErrInvalidInput
		}
	}
	for _, l := range datos.Locales {
		for _, p := range l.Almacen {
			if !p.EsValido() {
				return domain.ErrInvalidInput
			}
		}
	}
	if datos.PedidosMesas == nil {
		datos.PedidosMesas = map[int]entity.PedidoMesa{}
	}
	err := uc.runner.Update(func(_ *entity.AppData) (*entity.AppData, error) {
		return &datos, nil
	})
	if err != nil {
		return err
	}
	return uc.runner.Flush()
}
