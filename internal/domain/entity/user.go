package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleEmpleado = "empleado"
)

// User representa un usuario del sistema. La tabla de credenciales se siembra
// al iniciar (demo sin backend real: las credenciales son visibles y falsificables).
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"` // bcrypt, nunca plano después de la siembra
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"` // admin, empleado
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"modifiedAt"`
}
