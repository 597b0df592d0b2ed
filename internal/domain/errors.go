package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las causas de rechazo
// del motor de inventario son condiciones de negocio esperadas y
// recuperables: se señalan por valor de retorno, nunca con panic.
var (
	ErrCantidadInvalida     = errors.New("cantidad inválida")
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrStockInsuficiente    = errors.New("stock insuficiente")
	ErrLocalNoEncontrado    = errors.New("local no encontrado")

	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrNombreYaExiste      = errors.New("el nombre ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrMesaInactiva        = errors.New("la mesa no tiene un pedido activo")
)
