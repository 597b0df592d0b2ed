package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Temporizador falso: captura los callbacks para dispararlos a mano.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) factory(_ time.Duration, fn func()) store.Timer {
	t := &fakeTimer{fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// fire dispara el último timer programado si nadie lo detuvo.
func (s *fakeScheduler) fire() {
	if len(s.timers) == 0 {
		return
	}
	last := s.timers[len(s.timers)-1]
	if !last.stopped {
		last.fn()
	}
}

func newTestStore(t *testing.T) (*store.SnapshotStore, *fakeScheduler, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crm-locales-data.json")
	sched := &fakeScheduler{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := store.New(store.Config{
		Path:     path,
		Debounce: 500 * time.Millisecond,
		NewTimer: sched.factory,
	}, log)
	return s, sched, path
}

func datosConProducto() *entity.AppData {
	datos := entity.NuevaAppData(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	datos.AlmacenCentral = append(datos.AlmacenCentral, entity.Producto{
		ID:             "p-1",
		Nombre:         "Azúcar",
		Categoria:      entity.CategoriaCocina,
		Cantidad:       decimal.NewFromInt(10),
		Unidad:         "kg",
		PrecioUnitario: decimal.NewFromFloat(1.5),
	})
	return datos
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Sin archivo previo, Load devuelve un snapshot inicial vacío: la siembra
// es un paso explícito, no un efecto escondido de la carga.
func TestLoad_SinArchivoDevuelveSnapshotVacio(t *testing.T) {
	s, _, path := newTestStore(t)

	datos, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, datos.Usuarios, "Load no debe aprovisionar usuarios por defecto")
	assert.Empty(t, datos.AlmacenCentral)
	assert.NotNil(t, datos.PedidosMesas)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Load no debe crear el archivo")
}

// Save no escribe a disco hasta que vence la ventana de debounce.
func TestSave_EscrituraDebounced(t *testing.T) {
	s, sched, path := newTestStore(t)

	s.Save(datosConProducto())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "antes del flush no debe existir el archivo")

	sched.fire()
	_, err = os.Stat(path)
	require.NoError(t, err, "tras vencer el debounce el archivo debe existir")
}

// Guardados consecutivos dentro de la ventana colapsan: cada Save detiene
// el timer anterior y el flush persiste el último estado.
func TestSave_GuardadosConsecutivosColapsan(t *testing.T) {
	s, sched, path := newTestStore(t)

	d1 := datosConProducto()
	s.Save(d1)
	d2 := d1.Clone()
	d2.AlmacenCentral[0].Cantidad = decimal.NewFromInt(7)
	s.Save(d2)

	require.Len(t, sched.timers, 2)
	assert.True(t, sched.timers[0].stopped, "el segundo Save debe cancelar el timer del primero")

	sched.fire()

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s2 := store.New(store.Config{Path: path, Debounce: time.Second}, log)
	datos, err := s2.Load()
	require.NoError(t, err)
	assert.True(t, datos.AlmacenCentral[0].Cantidad.Equal(decimal.NewFromInt(7)),
		"el flush debe persistir el último estado guardado")
}

// El flush escribe JSON que un store nuevo puede recargar intacto.
func TestFlushYRecarga(t *testing.T) {
	s, _, path := newTestStore(t)

	s.Save(datosConProducto())
	require.NoError(t, s.Flush())

	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s2 := store.New(store.Config{Path: path, Debounce: time.Second}, log)
	datos, err := s2.Load()
	require.NoError(t, err)
	require.Len(t, datos.AlmacenCentral, 1)
	assert.Equal(t, "Azúcar", datos.AlmacenCentral[0].Nombre)
	assert.True(t, datos.AlmacenCentral[0].Cantidad.Equal(decimal.NewFromInt(10)))
}

// Flush sin guardado pendiente es un no-op.
func TestFlush_SinPendienteEsNoOp(t *testing.T) {
	s, _, path := newTestStore(t)

	require.NoError(t, s.Flush())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

// Load devuelve copias: mutar lo cargado no contamina la caché del store.
func TestLoad_DevuelveCopiaIndependiente(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.Save(datosConProducto())

	a, err := s.Load()
	require.NoError(t, err)
	a.AlmacenCentral[0].Cantidad = decimal.NewFromInt(0)

	b, err := s.Load()
	require.NoError(t, err)
	assert.True(t, b.AlmacenCentral[0].Cantidad.Equal(decimal.NewFromInt(10)),
		"la caché no debe verse afectada por mutaciones del llamador")
}

// Close fuerza el flush pendiente.
func TestClose_FuerzaFlush(t *testing.T) {
	s, _, path := newTestStore(t)
	s.Save(datosConProducto())

	require.NoError(t, s.Close())
	_, err := os.Stat(path)
	require.NoError(t, err)
}
