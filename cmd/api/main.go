package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/cafeavellaneda/almacen-api/internal/application/auth"
	"github.com/cafeavellaneda/almacen-api/internal/application/backup"
	"github.com/cafeavellaneda/almacen-api/internal/application/informes"
	"github.com/cafeavellaneda/almacen-api/internal/application/inventory"
	"github.com/cafeavellaneda/almacen-api/internal/application/usecase"
	infrapdf "github.com/cafeavellaneda/almacen-api/internal/infrastructure/pdf"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	httpRouter "github.com/cafeavellaneda/almacen-api/internal/interfaces/http"
	"github.com/cafeavellaneda/almacen-api/pkg/config"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Path).
		Msg("iniciando aplicación")

	snapshots := store.New(store.Config{
		Path:     cfg.Store.Path,
		Debounce: cfg.Store.Debounce(),
	}, log)
	runner := store.NewRunner(snapshots)

	authUC := auth.NewAuthUseCase(runner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	almacenUC := usecase.NewAlmacenUseCase(runner)
	localesUC := usecase.NewLocalesUseCase(runner)
	mesasUC := usecase.NewMesasUseCase(runner)
	movimientosUC := usecase.NewMovimientosUseCase(runner)
	suministroUC := inventory.NewSuministroUseCase(runner)
	informesUC := informes.NewInformesUseCase(runner, nil)
	informesPDF := informes.NewPDFUseCase(informesUC, infrapdf.NewMarotoInformeGenerator(), cfg.App.Name)
	backupUC := backup.NewBackupUseCase(runner, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AlmacenUC:     almacenUC,
		LocalesUC:     localesUC,
		MesasUC:       mesasUC,
		MovimientosUC: movimientosUC,
		SuministroUC:  suministroUC,
		InformesUC:    informesUC,
		InformesPDF:   informesPDF,
		BackupUC:      backupUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando aplicación")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("apagar servidor HTTP")
	}
	// El último guardado puede seguir en la ventana de debounce.
	if err := snapshots.Close(); err != nil {
		log.Error().Err(err).Msg("flush final del snapshot")
	}
}
