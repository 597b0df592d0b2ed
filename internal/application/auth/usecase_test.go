package auth_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeavellaneda/almacen-api/internal/application/auth"
	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/infrastructure/store"
	"github.com/cafeavellaneda/almacen-api/pkg/jwt"
	"github.com/cafeavellaneda/almacen-api/pkg/logger"
)

const secreto = "secreto-de-test"

func nuevoAuthUseCase(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	s := store.New(store.Config{
		Path:     filepath.Join(t.TempDir(), "crm-locales-data.json"),
		Debounce: time.Second,
	}, log)
	return auth.NewAuthUseCase(store.NewRunner(s), auth.JWTConfig{
		Secret:     secreto,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
}

// El alta hashea la contraseña y el login la verifica; el token resultante
// lleva el rol del usuario.
func TestAuth_RegistroYLogin(t *testing.T) {
	uc := nuevoAuthUseCase(t)

	creado, err := uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{
		Nombre:     "Gerente",
		Contrasena: "muy-secreta",
		Rol:        entity.RolSuperadmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, creado.ID)
	assert.Equal(t, entity.RolSuperadmin, creado.Rol)

	resp, err := uc.Login(dto.LoginRequest{Nombre: "Gerente", Contrasena: "muy-secreta"})
	require.NoError(t, err)
	assert.Equal(t, "Gerente", resp.Usuario.Nombre)

	userID, nombre, rol, err := jwt.Parse(secreto, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, creado.ID, userID)
	assert.Equal(t, "Gerente", nombre)
	assert.Equal(t, entity.RolSuperadmin, rol)
}

// Contraseña equivocada y usuario inexistente se distinguen como errores.
func TestAuth_LoginRechazos(t *testing.T) {
	uc := nuevoAuthUseCase(t)
	_, err := uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{
		Nombre: "Gerente", Contrasena: "muy-secreta", Rol: entity.RolSuperadmin,
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Nombre: "Gerente", Contrasena: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Nombre: "Nadie", Contrasena: "da igual"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNoEncontrado)
}

// Reglas del alta: nombre único, rol conocido, campos obligatorios, rol por
// defecto empleado.
func TestAuth_RegistrarUsuarioReglas(t *testing.T) {
	uc := nuevoAuthUseCase(t)

	_, err := uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{Nombre: "Ana", Contrasena: "x"})
	require.NoError(t, err)

	_, err = uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{Nombre: "Ana", Contrasena: "otra"})
	assert.ErrorIs(t, err, domain.ErrNombreYaExiste)

	_, err = uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{Nombre: "", Contrasena: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{Nombre: "Luis", Contrasena: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{
		Nombre: "Luis", Contrasena: "x", Rol: "gerente-general",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	creado, err := uc.RegistrarUsuario(dto.RegistrarUsuarioRequest{Nombre: "Luis", Contrasena: "x"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolEmpleado, creado.Rol, "sin rol explícito se asigna empleado")
}
