package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contrasena"`
}

// RegistrarUsuarioRequest body para POST /api/auth/usuarios (solo admin+).
type RegistrarUsuarioRequest struct {
	Nombre     string `json:"nombre"`
	Contrasena string `json:"contrasena"`
	Rol        string `json:"rol"` // superadmin | admin | empleado
}

// UsuarioResponse representación externa de un usuario. Nunca incluye el
// hash de la contraseña.
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
