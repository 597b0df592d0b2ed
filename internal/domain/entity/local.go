package entity

// Local representa un punto de venta con su propio sub-inventario.
// El local es dueño exclusivo de su lista Almacen: ningún producto es
// compartido entre dos locales, y eliminar el local elimina su stock.
type Local struct {
	ID      string     `json:"id"`
	Nombre  string     `json:"nombre"`
	Activo  bool       `json:"activo"`
	Almacen []Producto `json:"almacen"`
}

// BuscarEnAlmacen devuelve el índice del primer producto del local que
// coincide con la clave de fusión (nombre, unidad, categoría), o -1.
func (l Local) BuscarEnAlmacen(clave Producto) int {
	for i, p := range l.Almacen {
		if p.MismaClave(clave) {
			return i
		}
	}
	return -1
}

// BuscarPorID devuelve el índice del producto con ese id dentro del
// almacén del local, o -1.
func (l Local) BuscarPorID(productoID string) int {
	for i, p := range l.Almacen {
		if p.ID == productoID {
			return i
		}
	}
	return -1
}
