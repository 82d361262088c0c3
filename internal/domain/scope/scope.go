// Package scope concentra las reglas de visibilidad por rol.
// Toda la matriz de autorización vive aquí y en los filtros SQL de
// infraestructura; los handlers y casos de uso no ramifican por rol.
package scope

import "fmt"

// Role es el rol de un usuario. Conjunto cerrado: cualquier otro valor es inválido.
type Role string

const (
	RoleLandlord Role = "LANDLORD"
	RoleManager  Role = "MANAGER"
	RoleTenant   Role = "TENANT"
)

// DefaultRole es el rol asignado al registrarse si no se indica otro.
const DefaultRole = RoleLandlord

// ParseRole valida y normaliza un rol recibido como string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleLandlord, RoleManager, RoleTenant:
		return Role(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Access identifica al usuario autenticado y su rol. Se pasa explícitamente
// a cada consulta; no hay contexto global de request.
type Access struct {
	UserID string
	Role   Role
}

// CanManage indica si el rol puede crear, editar o borrar registros.
//
//	MANAGER  -> sí, sobre cualquier registro
//	LANDLORD -> sí, solo dentro de su alcance
//	TENANT   -> no, solo lectura
func (a Access) CanManage() bool {
	switch a.Role {
	case RoleManager, RoleLandlord:
		return true
	default:
		return false
	}
}

// SeesEverything indica si el rol ve la colección completa sin filtrar.
// Solo MANAGER; LANDLORD y TENANT se filtran por sus aristas de propiedad.
func (a Access) SeesEverything() bool {
	return a.Role == RoleManager
}
