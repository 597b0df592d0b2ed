package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cafeavellaneda/almacen-api/internal/application/auth"
	"github.com/cafeavellaneda/almacen-api/internal/application/backup"
	"github.com/cafeavellaneda/almacen-api/internal/application/informes"
	"github.com/cafeavellaneda/almacen-api/internal/application/inventory"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AlmacenUC     *usecase.AlmacenUseCase
	LocalesUC     *usecase.LocalesUseCase
	MesasUC       *usecase.MesasUseCase
	MovimientosUC *usecase.MovimientosUseCase
	SuministroUC  *inventory.SuministroUseCase
	InformesUC    *informes.InformesUseCase
	InformesPDF   *informes.PDFUseCase
	BackupUC      *backup.BackupUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; alta de usuarios protegida más abajo)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	soloAdmin := RequireRole(entity.RolSuperadmin, entity.RolAdmin)

	// Usuarios (solo administración)
	protected.Post("/auth/usuarios", soloAdmin, authHandler.RegistrarUsuario)

	// Almacén central
	almacen := protected.Group("/almacen")
	almacenHandler := NewAlmacenHandler(deps.AlmacenUC)
	almacen.Get("/", almacenHandler.Listar)
	almacen.Post("/", soloAdmin, almacenHandler.Agregar)
	almacen.Put("/:id", soloAdmin, almacenHandler.Actualizar)
	almacen.Delete("/:id", soloAdmin, almacenHandler.Eliminar)

	// Locales
	locales := protected.Group("/locales")
	localesHandler := NewLocalesHandler(deps.LocalesUC)
	locales.Post("/", soloAdmin, localesHandler.Crear)
	locales.Get("/", localesHandler.Listar)
	locales.Get("/:id", localesHandler.Obtener)
	locales.Delete("/:id", soloAdmin, localesHandler.Eliminar)
	locales.Patch("/:id/almacen/:productoId", localesHandler.AjustarCantidad)

	// Suministros y movimientos
	inventarioHandler := NewInventarioHandler(deps.SuministroUC, deps.MovimientosUC)
	protected.Post("/suministros", inventarioHandler.Suministrar)
	protected.Get("/movimientos", inventarioHandler.ListarMovimientos)

	// Mesas (punto de venta)
	mesas := protected.Group("/mesas")
	mesasHandler := NewMesasHandler(deps.MesasUC)
	mesas.Get("/", mesasHandler.Listar)
	mesas.Post("/:mesa/items", mesasHandler.AgregarItem)
	mesas.Post("/:mesa/cerrar", mesasHandler.Cerrar)

	// Informes
	informesHandler := NewInformesHandler(deps.InformesUC, deps.InformesPDF)
	protected.Get("/informes", informesHandler.Generar)
	protected.Get("/informes/pdf", informesHandler.GenerarPDF)

	// Respaldo (solo administración)
	respaldoHandler := NewRespaldoHandler(deps.BackupUC)
	protected.Get("/respaldo", soloAdmin, respaldoHandler.Exportar)
	protected.Post("/respaldo/restaurar", soloAdmin, respaldoHandler.Restaurar)
}
