package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador" // puede registrar producción
	RoleConsulta = "consulta" // solo lectura (análisis, historiales)
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
