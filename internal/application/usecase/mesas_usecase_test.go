package usecase_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// runnerConLocal deja un runner con un local que vende café: 20 tazas a 2.5.
func runnerConLocal(t *testing.T) *store.Runner {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := store.New(store.Config{
		Path:     filepath.Join(t.TempDir(), "crm-locales-data.json"),
		Debounce: time.Second,
	}, log)
	runner := store.NewRunner(s)

	err := runner.Update(func(_ *entity.AppData) (*entity.AppData, error) {
		datos := entity.NuevaAppData(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
		datos.Locales = append(datos.Locales, entity.Local{
			ID:     "local-1",
			Nombre: "Local A",
			Activo: true,
			Almacen: []entity.Producto{
				{
					ID:             "cafe-1",
					Nombre:         "Café",
					Categoria:      entity.CategoriaCantina,
					Cantidad:       decimal.NewFromInt(20),
					Unidad:         "taza",
					PrecioUnitario: decimal.NewFromFloat(2.5),
				},
			},
		})
		return datos, nil
	})
	require.NoError(t, err)
	return runner
}

func snapshotDe(t *testing.T, runner *store.Runner) *entity.AppData {
	t.Helper()
	var datos *entity.AppData
	require.NoError(t, runner.View(func(d *entity.AppData) error {
		datos = d
		return nil
	}))
	return datos
}

// ──────────────────────────────────────────────────────────────────────────────
// Pedidos por mesa
// ──────────────────────────────────────────────────────────────────────────────

// Agregar un item descuenta stock del local, acumula el total y deja un
// movimiento de consumo con el número de mesa.
func TestMesas_AgregarItem(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	pedido, err := uc.AgregarItem(3, "local-1", "cafe-1", decimal.NewFromInt(2))
	require.NoError(t, err)
	assert.True(t, pedido.Activa)
	require.Len(t, pedido.Items, 1)
	assert.Equal(t, "Café", pedido.Items[0].Nombre)
	assert.True(t, pedido.Total.Equal(decimal.NewFromInt(5)), "2 tazas * 2.5 = 5")

	datos := snapshotDe(t, runner)
	assert.True(t, datos.Locales[0].Almacen[0].Cantidad.Equal(decimal.NewFromInt(18)))
	require.Len(t, datos.Movimientos, 1)
	mov := datos.Movimientos[0]
	assert.Equal(t, entity.MovimientoConsumo, mov.Tipo)
	assert.Equal(t, "Local A", mov.Origen)
	require.NotNil(t, mov.Mesa)
	assert.Equal(t, 3, *mov.Mesa)
}

// Repetir el producto acumula sobre la misma línea del pedido.
func TestMesas_ItemRepetidoAcumulaLinea(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	_, err := uc.AgregarItem(3, "local-1", "cafe-1", decimal.NewFromInt(2))
	require.NoError(t, err)
	pedido, err := uc.AgregarItem(3, "local-1", "cafe-1", decimal.NewFromInt(1))
	require.NoError(t, err)

	require.Len(t, pedido.Items, 1, "mismo producto = misma línea")
	assert.True(t, pedido.Items[0].Cantidad.Equal(decimal.NewFromInt(3)))
	assert.True(t, pedido.Total.Equal(decimal.NewFromFloat(7.5)))
}

// Consumir todo el stock elimina la entrada del almacén del local.
func TestMesas_ConsumoTotalEliminaEntrada(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	_, err := uc.AgregarItem(1, "local-1", "cafe-1", decimal.NewFromInt(20))
	require.NoError(t, err)

	datos := snapshotDe(t, runner)
	assert.Empty(t, datos.Locales[0].Almacen, "stock en cero elimina la entrada")
}

// Rechazos: cantidad inválida, stock insuficiente, producto y local
// inexistentes. Ninguno toca el estado.
func TestMesas_AgregarItemRechazos(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	_, err := uc.AgregarItem(1, "local-1", "cafe-1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	_, err = uc.AgregarItem(1, "local-1", "cafe-1", decimal.NewFromInt(50))
	assert.ErrorIs(t, err, domain.ErrStockInsuficiente)

	_, err = uc.AgregarItem(1, "local-1", "no-existe", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrProductoNoEncontrado)

	_, err = uc.AgregarItem(1, "no-local", "cafe-1", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrLocalNoEncontrado)

	datos := snapshotDe(t, runner)
	assert.True(t, datos.Locales[0].Almacen[0].Cantidad.Equal(decimal.NewFromInt(20)))
	assert.Empty(t, datos.Movimientos)
	assert.Empty(t, datos.PedidosMesas)
}

// Cerrar devuelve el pedido final y lo retira del mapa de mesas activas.
func TestMesas_Cerrar(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	_, err := uc.AgregarItem(5, "local-1", "cafe-1", decimal.NewFromInt(2))
	require.NoError(t, err)

	cerrado, err := uc.Cerrar(5)
	require.NoError(t, err)
	assert.False(t, cerrado.Activa)
	assert.True(t, cerrado.Total.Equal(decimal.NewFromInt(5)))

	datos := snapshotDe(t, runner)
	assert.Empty(t, datos.PedidosMesas, "la mesa cerrada deja de estar activa")
	assert.Len(t, datos.Movimientos, 1, "cerrar no registra movimientos; el consumo ya quedó item a item")
}

// Cerrar una mesa sin pedido activo es un error.
func TestMesas_CerrarMesaInactiva(t *testing.T) {
	runner := runnerConLocal(t)
	uc := usecase.NewMesasUseCase(runner)

	_, err := uc.Cerrar(9)
	assert.ErrorIs(t, err, domain.ErrMesaInactiva)
}
