package entity

// Roles válidos para Usuario.
const (
	RolSuperadmin = "superadmin"
	RolAdmin      = "admin"
	RolEmpleado   = "empleado"
)

// Usuario representa un usuario de la aplicación.
// PasswordHash es un hash bcrypt; la contraseña nunca se persiste en claro.
type Usuario struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Rol          string `json:"rol"` // superadmin | admin | empleado
	PasswordHash string `json:"passwordHash"`
}
