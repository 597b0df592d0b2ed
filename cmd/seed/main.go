// Siembra explícita del snapshot inicial: usuario gerente y locales por
// defecto. Se ejecuta una vez en el despliegue (o en el setup de un
// entorno de pruebas); la carga normal de datos nunca aprovisiona nada.
package main

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	"github.com/cafeavellaneda/almacen-api/pkg/config"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD es obligatorio para sembrar")
	}

	snapshots := store.New(store.Config{
		Path:     cfg.Store.Path,
		Debounce: cfg.Store.Debounce(),
	}, log)

	datos, err := snapshots.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar snapshot")
	}
	if len(datos.Usuarios) > 0 {
		log.Warn().Int("usuarios", len(datos.Usuarios)).Msg("el snapshot ya está sembrado; no se hace nada")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña del gerente")
	}
	datos.Usuarios = append(datos.Usuarios, entity.Usuario{
		ID:           uuid.NewString(),
		Nombre:       cfg.Seed.AdminNombre,
		Rol:          entity.RolSuperadmin,
		PasswordHash: string(hash),
	})

	for _, nombre := range strings.Split(cfg.Seed.Locales, ",") {
		nombre = strings.TrimSpace(nombre)
		if nombre == "" {
			continue
		}
		datos.Locales = append(datos.Locales, entity.Local{
			ID:      uuid.NewString(),
			Nombre:  nombre,
			Activo:  true,
			Almacen: []entity.Producto{},
		})
	}
	datos.UltimoRespaldo = time.Now()

	snapshots.Save(datos)
	if err := snapshots.Flush(); err != nil {
		log.Fatal().Err(err).Msg("escribir snapshot sembrado")
	}
	log.Info().
		Str("gerente", cfg.Seed.AdminNombre).
		Int("locales", len(datos.Locales)).
		Str("path", cfg.Store.Path).
		Msg("snapshot inicial sembrado")
}
