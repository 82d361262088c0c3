package postgres

import (
	"fmt"

	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// Filtros de alcance por rol, compilados a fragmentos WHERE. Toda la matriz de
// visibilidad vive en este archivo:
//
//	MANAGER  -> colección completa
//	LANDLORD -> registros alcanzables desde sus propiedades
//	TENANT   -> solo sus propios registros (vía tenants.user_id)
//	otro     -> nada (denegar por defecto)
//
// Cada función recibe el alias/tabla a calificar y el índice del siguiente
// placeholder, y devuelve la cláusula con sus argumentos. Filtrar en la propia
// consulta evita fugas de existencia: lo que está fuera de alcance no retorna filas.

// propertyScope alcance sobre properties.
func propertyScope(access scope.Access, alias string, arg int) (string, []any) {
	switch access.Role {
	case scope.RoleManager:
		return "TRUE", nil
	case scope.RoleLandlord:
		return fmt.Sprintf("%s.owner_id = $%d", alias, arg), []any{access.UserID}
	case scope.RoleTenant:
		return fmt.Sprintf("%s.id IN (SELECT property_id FROM tenants WHERE user_id = $%d)", alias, arg), []any{access.UserID}
	default:
		return "FALSE", nil
	}
}

// tenantScope alcance sobre tenants.
func tenantScope(access scope.Access, alias string, arg int) (string, []any) {
	switch access.Role {
	case scope.RoleManager:
		return "TRUE", nil
	case scope.RoleLandlord:
		return fmt.Sprintf("%s.property_id IN (SELECT id FROM properties WHERE owner_id = $%d)", alias, arg), []any{access.UserID}
	case scope.RoleTenant:
		return fmt.Sprintf("%s.user_id = $%d", alias, arg), []any{access.UserID}
	default:
		return "FALSE", nil
	}
}

// rentScope alcance sobre rent_payments.
func rentScope(access scope.Access, alias string, arg int) (string, []any) {
	switch access.Role {
	case scope.RoleManager:
		return "TRUE", nil
	case scope.RoleLandlord:
		return fmt.Sprintf(
			"%s.tenant_id IN (SELECT t.id FROM tenants t JOIN properties p ON p.id = t.property_id WHERE p.owner_id = $%d)",
			alias, arg), []any{access.UserID}
	case scope.RoleTenant:
		return fmt.Sprintf("%s.tenant_id IN (SELECT id FROM tenants WHERE user_id = $%d)", alias, arg), []any{access.UserID}
	default:
		return "FALSE", nil
	}
}

// maintenanceScope alcance sobre maintenance_requests.
func maintenanceScope(access scope.Access, alias string, arg int) (string, []any) {
	switch access.Role {
	case scope.RoleManager:
		return "TRUE", nil
	case scope.RoleLandlord:
		return fmt.Sprintf("%s.property_id IN (SELECT id FROM properties WHERE owner_id = $%d)", alias, arg), []any{access.UserID}
	case scope.RoleTenant:
		return fmt.Sprintf("%s.property_id IN (SELECT property_id FROM tenants WHERE user_id = $%d)", alias, arg), []any{access.UserID}
	default:
		return "FALSE", nil
	}
}

// manage envuelve un filtro de visibilidad para mutaciones: el conjunto
// gestionable es vacío para roles sin capacidad de gestión y coincide con el
// visible para el resto.
func manage(access scope.Access, filter func(scope.Access, string, int) (string, []any), alias string, arg int) (string, []any) {
	if !access.CanManage() {
		return "FALSE", nil
	}
	return filter(access, alias, arg)
}
