package backup_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeavellaneda/almacen-api/internal/application/backup"
	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

var ahora = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func runnerConDatos(t *testing.T) (*store.Runner, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crm-locales-data.json")
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := store.New(store.Config{Path: path, Debounce: time.Second}, log)
	runner := store.NewRunner(s)

	err := runner.Update(func(_ *entity.AppData) (*entity.AppData, error) {
		datos := entity.NuevaAppData(ahora.AddDate(0, 0, -30))
		datos.AlmacenCentral = append(datos.AlmacenCentral, entity.Producto{
			ID:             "p-1",
			Nombre:         "Azúcar",
			Categoria:      entity.CategoriaCocina,
			Cantidad:       decimal.NewFromInt(10),
			Unidad:         "kg",
			PrecioUnitario: decimal.NewFromFloat(1.5),
		})
		return datos, nil
	})
	require.NoError(t, err)
	return runner, path
}

// Exportar estampa UltimoRespaldo con el presente y fuerza el flush a disco
// antes de entregar los bytes: el respaldo y el archivo coinciden.
func TestBackup_Exportar(t *testing.T) {
	runner, path := runnerConDatos(t)
	uc := backup.NewBackupUseCase(runner, func() time.Time { return ahora })

	raw, err := uc.Exportar()
	require.NoError(t, err)

	var exportado entity.AppData
	require.NoError(t, json.Unmarshal(raw, &exportado))
	assert.True(t, exportado.UltimoRespaldo.Equal(ahora), "Exportar estampa el momento del respaldo")
	require.Len(t, exportado.AlmacenCentral, 1)

	enDisco, err := os.ReadFile(path)
	require.NoError(t, err, "Exportar debe dejar el snapshot ya escrito en disco")
	assert.JSONEq(t, string(raw), string(enDisco))
}

// Un respaldo exportado se restaura intacto (round-trip completo).
func TestBackup_RoundTrip(t *testing.T) {
	runner, _ := runnerConDatos(t)
	uc := backup.NewBackupUseCase(runner, func() time.Time { return ahora })

	raw, err := uc.Exportar()
	require.NoError(t, err)

	// Vaciar el estado y restaurar desde el respaldo.
	require.NoError(t, runner.Update(func(_ *entity.AppData) (*entity.AppData, error) {
		return entity.NuevaAppData(ahora), nil
	}))
	require.NoError(t, uc.Restaurar(raw))

	require.NoError(t, runner.View(func(datos *entity.AppData) error {
		require.Len(t, datos.AlmacenCentral, 1)
		assert.Equal(t, "Azúcar", datos.AlmacenCentral[0].Nombre)
		assert.True(t, datos.AlmacenCentral[0].Cantidad.Equal(decimal.NewFromInt(10)))
		assert.NotNil(t, datos.PedidosMesas)
		return nil
	}))
}

// Restaurar rechaza JSON malformado y productos que violan sus invariantes,
// sin tocar el estado vigente.
func TestBackup_RestaurarInvalido(t *testing.T) {
	runner, _ := runnerConDatos(t)
	uc := backup.NewBackupUseCase(runner, func() time.Time { return ahora })

	err := uc.Restaurar([]byte("{esto no es json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	corrupto := entity.NuevaAppData(ahora)
	corrupto.AlmacenCentral = append(corrupto.AlmacenCentral, entity.Producto{
		ID:        "malo",
		Nombre:    "Fantasma",
		Categoria: entity.CategoriaCocina,
		Cantidad:  decimal.NewFromInt(-5), // cantidad negativa jamás se persiste
	})
	raw, err := json.Marshal(corrupto)
	require.NoError(t, err)
	err = uc.Restaurar(raw)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, runner.View(func(datos *entity.AppData) error {
		require.Len(t, datos.AlmacenCentral, 1, "el estado vigente debe quedar intacto")
		assert.Equal(t, "Azúcar", datos.AlmacenCentral[0].Nombre)
		return nil
	}))
}
