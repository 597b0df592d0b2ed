package repository

import "github.com/cafeavellaneda/almacen-api/internal/domain/entity"

// SnapshotRunner es el contrato de los casos de uso con la pasarela de
// persistencia. El motor de transferencias no hace I/O: los casos de uso
// cargan el snapshot, derivan uno nuevo y lo guardan entero. Update
// serializa esas secuencias cargar → transformar → guardar para evitar
// actualizaciones perdidas entre llamadas concurrentes; View da acceso de
// solo lectura.
type SnapshotRunner interface {
	// Update ejecuta fn con el snapshot vigente; si fn devuelve un snapshot
	// no nil sin error, pasa a ser el nuevo estado persistido.
	Update(fn func(datos *entity.AppData) (*entity.AppData, error)) error
	// View ejecuta fn con una copia del snapshot vigente.
	View(fn func(datos *entity.AppData) error) error
	// Flush fuerza la escritura pendiente a disco.
	Flush() error
}
