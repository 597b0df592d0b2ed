package entity

import "time"

// AppData es el agregado raíz y la unidad de persistencia: toda operación
// del núcleo lee el snapshot completo, deriva uno nuevo y el llamador lo
// escribe entero. No existe persistencia parcial por campo.
type AppData struct {
	Usuarios       []Usuario          `json:"usuarios"`
	AlmacenCentral []Producto         `json:"almacenCentral"`
	Locales        []Local            `json:"locales"`
	Movimientos    []Movimiento       `json:"movimientos"`
	PedidosMesas   map[int]PedidoMesa `json:"pedidosMesas"`
	UltimoRespaldo time.Time          `json:"ultimoRespaldo"`
}

// NuevaAppData devuelve un snapshot inicial vacío. El aprovisionamiento de
// usuarios y locales por defecto es un paso de siembra explícito (cmd/seed),
// no parte de la carga.
func NuevaAppData(now time.Time) *AppData {
	return &AppData{
		Usuarios:       []Usuario{},
		AlmacenCentral: []Producto{},
		Locales:        []Local{},
		Movimientos:    []Movimiento{},
		PedidosMesas:   map[int]PedidoMesa{},
		UltimoRespaldo: now,
	}
}

// Clone devuelve una copia por valor independiente del snapshot, sin pasar
// por serialización. Los elementos son tipos valor, así que basta con
// copiar cada slice y cada mapa de forma explícita.
func (d *AppData) Clone() *AppData {
	c := &AppData{
		Usuarios:       make([]Usuario, len(d.Usuarios)),
		AlmacenCentral: make([]Producto, len(d.AlmacenCentral)),
		Locales:        make([]Local, len(d.Locales)),
		Movimientos:    make([]Movimiento, len(d.Movimientos)),
		PedidosMesas:   make(map[int]PedidoMesa, len(d.PedidosMesas)),
		UltimoRespaldo: d.UltimoRespaldo,
	}
	copy(c.Usuarios, d.Usuarios)
	copy(c.AlmacenCentral, d.AlmacenCentral)
	copy(c.Movimientos, d.Movimientos)
	for i, l := range d.Locales {
		almacen := make([]Producto, len(l.Almacen))
		copy(almacen, l.Almacen)
		l.Almacen = almacen
		c.Locales[i] = l
	}
	for mesa, pedido := range d.PedidosMesas {
		items := make([]PedidoItem, len(pedido.Items))
		copy(items, pedido.Items)
		pedido.Items = items
		c.PedidosMesas[mesa] = pedido
	}
	return c
}

// BuscarCentral devuelve el índice del producto con ese id en el almacén
// central, o -1.
func (d *AppData) BuscarCentral(productoID string) int {
	for i, p := range d.AlmacenCentral {
		if p.ID == productoID {
			return i
		}
	}
	return -1
}

// BuscarLocal devuelve el índice del local con ese id, o -1.
func (d *AppData) BuscarLocal(localID string) int {
	for i, l := range d.Locales {
		if l.ID == localID {
			return i
		}
	}
	return -1
}

// BuscarUsuario devuelve el usuario con ese nombre, o nil.
func (d *AppData) BuscarUsuario(nombre string) *Usuario {
	for i := range d.Usuarios {
		if d.Usuarios[i].Nombre == nombre {
			return &d.Usuarios[i]
		}
	}
	return nil
}
