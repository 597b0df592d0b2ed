package store

import (
	"sync"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
)

// Runner implementa repository.SnapshotRunner sobre un SnapshotStore,
// serializando las secuencias cargar → transformar → guardar con un mutex.
// Sin esta serialización dos llamadas rápidas podrían leer-modificar-escribir
// el mismo snapshot persistido y perderse actualizaciones.
type Runner struct {
	mu sync.Mutex
	s  *SnapshotStore
}

// NewRunner construye el runner sobre el store dado.
func NewRunner(s *SnapshotStore) *Runner {
	return &Runner{s: s}
}

// Update carga el snapshot vigente, aplica fn y guarda el resultado si fn
// devuelve un snapshot no nil sin error. Un error de fn deja el estado
// persistido intacto.
func (r *Runner) Update(fn func(datos *entity.AppData) (*entity.AppData, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	datos, err := r.s.Load()
	if err != nil {
		return err
	}
	nuevo, err := fn(datos)
	if err != nil {
		return err
	}
	if nuevo != nil {
		r.s.Save(nuevo)
	}
	return nil
}

// View ejecuta fn con una copia del snapshot vigente, sin persistir nada.
func (r *Runner) View(fn func(datos *entity.AppData) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	datos, err := r.s.Load()
	if err != nil {
		return err
	}
	return fn(datos)
}

// Flush delega en el store.
func (r *Runner) Flush() error {
	return r.s.Flush()
}
