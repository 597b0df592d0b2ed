// Package store implementa la pasarela de persistencia: un único blob JSON
// en disco con caché en memoria y escritura debounced. Reemplaza la caché
// global a nivel de módulo y el temporizador implícito de la versión móvil
// por un objeto de servicio explícito con Flush() y temporizador inyectable.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

// Timer es la porción de *time.Timer que el almacén necesita; los tests
// inyectan una implementación falsa para controlar el tiempo.
type Timer interface {
	Stop() bool
}

// TimerFactory programa fn para ejecutarse tras d. La fábrica por defecto
// envuelve time.AfterFunc.
type TimerFactory func(d time.Duration, fn func()) Timer

func afterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Config opciones del SnapshotStore.
type Config struct {
	Path     string           // ruta del archivo JSON
	Debounce time.Duration    // ventana de coalescencia de escrituras
	NewTimer TimerFactory     // nil = time.AfterFunc
	Now      func() time.Time // nil = time.Now
}

// SnapshotStore guarda y carga el snapshot completo de AppData.
// Save encola una escritura debounced: guardados consecutivos dentro de la
// ventana colapsan en un único flush a disco. Flush fuerza la escritura
// pendiente de inmediato.
//
// El store serializa el acceso a su caché con un mutex propio; la
// serialización de secuencias cargar → transformar → guardar contra el
// mismo snapshot es responsabilidad de los casos de uso.
type SnapshotStore struct {
	mu       sync.Mutex
	path     string
	debounce time.Duration
	newTimer TimerFactory
	now      func() time.Time
	log      *logger.Logger

	cache *entity.AppData
	dirty bool
	timer Timer
}

// New construye el store. No toca el disco hasta el primer Load o Flush.
func New(cfg Config, log *logger.Logger) *SnapshotStore {
	if cfg.NewTimer == nil {
		cfg.NewTimer = afterFunc
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SnapshotStore{
		path:     cfg.Path,
		debounce: cfg.Debounce,
		newTimer: cfg.NewTimer,
		now:      cfg.Now,
		log:      log,
	}
}

// Load devuelve una copia del snapshot vigente: la caché si hay una, el
// archivo si existe, o un AppData inicial vacío si nunca se ha guardado
// nada. La siembra de datos por defecto es un paso explícito (cmd/seed),
// no parte de la carga.
func (s *SnapshotStore) Load() (*entity.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cache != nil {
		return s.cache.Clone(), nil
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.cache = entity.NuevaAppData(s.now())
		return s.cache.Clone(), nil
	}
	if err != nil {
		return nil, err
	}

	var datos entity.AppData
	if err := json.Unmarshal(raw, &datos); err != nil {
		return nil, err
	}
	if datos.PedidosMesas == nil {
		datos.PedidosMesas = map[int]entity.PedidoMesa{}
	}
	s.cache = &datos
	return s.cache.Clone(), nil
}

// Save toma el snapshot como nuevo estado vigente y programa la escritura
// a disco. La durabilidad es eventual: el flush ocurre al vencer la ventana
// de debounce o al llamar Flush/Close.
func (s *SnapshotStore) Save(datos *entity.AppData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = datos.Clone()
	s.dirty = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.newTimer(s.debounce, func() {
		if err := s.Flush(); err != nil {
			s.log.Error().Err(err).Str("path", s.path).Msg("flush debounced del snapshot")
		}
	})
}

// Flush escribe la caché pendiente de forma inmediata y atómica
// (archivo temporal + rename). Sin escritura pendiente es un no-op.
func (s *SnapshotStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty || s.cache == nil {
		return nil
	}

	raw, err := json.Marshal(s.cache)
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Close fuerza el flush pendiente. Debe llamarse en el apagado del servicio.
func (s *SnapshotStore) Close() error {
	return s.Flush()
}
