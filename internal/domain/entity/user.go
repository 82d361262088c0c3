package entity

import (
	"time"

	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// User representa un usuario del sistema. El rol se asigna al registrarse
// (LANDLORD por defecto) y define su alcance sobre el resto de entidades.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         scope.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
