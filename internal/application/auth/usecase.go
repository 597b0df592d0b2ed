package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/cafeavellaneda/almacen-api/internal/application/dto"
	"github.com/cafeavellaneda/almacen-api/internal/domain"
	"github.com/cafeavellaneda/almacen-api/internal/domain/entity"
	"github.com/cafeavellaneda/almacen-api/internal/domain/repository"
	"github.com/cafeavellaneda/almacen-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y alta de usuarios.
// Las contraseñas se verifican y almacenan como hash bcrypt.
type AuthUseCase struct {
	runner repository.SnapshotRunner
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(runner repository.SnapshotRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{runner: runner, jwtCfg: jwtCfg}
}

// Login verifica nombre/contraseña contra el snapshot, genera el JWT con el
// rol del usuario y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	var usuario *entity.Usuario
	err := uc.runner.View(func(datos *entity.AppData) error {
		if u := datos.BuscarUsuario(in.Nombre); u != nil {
			copia := *u
			usuario = &copia
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nombre, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

// RegistrarUsuario crea un usuario: hashea la contraseña con bcrypt y la
// persiste en el snapshot. Devuelve ErrNombreYaExiste si el nombre ya está
// en uso.
func (uc *AuthUseCase) RegistrarUsuario(in dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Nombre == "" || in.Contrasena == "" {
		return nil, domain.ErrInvalidInput
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolEmpleado
	}
	switch rol {
	case entity.RolSuperadmin, entity.RolAdmin, entity.RolEmpleado:
	default:
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nuevo := entity.Usuario{
		ID:           uuid.NewString(),
		Nombre:       in.Nombre,
		Rol:          rol,
		PasswordHash: string(hash),
	}
	err = uc.runner.Update(func(datos *entity.AppData) (*entity.AppData, error) {
		if datos.BuscarUsuario(in.Nombre) != nil {
			return nil, domain.ErrNombreYaExiste
		}
		datos.Usuarios = append(datos.Usuarios, nuevo)
		return datos, nil
	})
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(&nuevo), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Rol:    u.Rol,
	}
}
