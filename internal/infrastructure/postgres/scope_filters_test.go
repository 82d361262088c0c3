package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

// Valida la matriz de visibilidad compilada a SQL: por rol y por entidad, el
// fragmento WHERE y sus argumentos. Las cláusulas son funciones puras, así que
// se verifican sin base de datos.

type scopeFilter func(scope.Access, string, int) (string, []any)

func landlordAccess(userID string) scope.Access {
	return scope.Access{UserID: userID, Role: scope.RoleLandlord}
}

func entityFilters() map[string]scopeFilter {
	return map[string]scopeFilter{
		"properties":           propertyScope,
		"tenants":              tenantScope,
		"rent_payments":        rentScope,
		"maintenance_requests": maintenanceScope,
	}
}

// MANAGER ve la colección completa: la cláusula no filtra ni liga argumentos.
func TestScopeFilters_ManagerVeTodo(t *testing.T) {
	access := scope.Access{UserID: "m-1", Role: scope.RoleManager}
	for name, filter := range entityFilters() {
		clause, args := filter(access, "x", 1)
		assert.Equal(t, "TRUE", clause, "entidad %s", name)
		assert.Empty(t, args, "entidad %s", name)
	}
}

// LANDLORD solo alcanza lo que cuelga de sus propiedades; el id del usuario
// queda ligado como argumento, nunca interpolado en el SQL.
func TestScopeFilters_LandlordFiltraPorPropietario(t *testing.T) {
	access := landlordAccess("duenio-1")

	clause, args := propertyScope(access, "p", 1)
	assert.Equal(t, "p.owner_id = $1", clause)
	assert.Equal(t, []any{"duenio-1"}, args)

	clause, args = tenantScope(access, "t", 1)
	assert.Equal(t, "t.property_id IN (SELECT id FROM properties WHERE owner_id = $1)", clause)
	assert.Equal(t, []any{"duenio-1"}, args)

	clause, args = rentScope(access, "rp", 1)
	assert.Equal(t,
		"rp.tenant_id IN (SELECT t.id FROM tenants t JOIN properties p ON p.id = t.property_id WHERE p.owner_id = $1)",
		clause)
	assert.Equal(t, []any{"duenio-1"}, args)

	clause, args = maintenanceScope(access, "m", 1)
	assert.Equal(t, "m.property_id IN (SELECT id FROM properties WHERE owner_id = $1)", clause)
	assert.Equal(t, []any{"duenio-1"}, args)
}

// Dos propietarios distintos generan cláusulas ancladas a ids distintos: sus
// conjuntos visibles no pueden solaparse porque cada propiedad tiene un solo dueño.
func TestScopeFilters_PropietariosDisjuntos(t *testing.T) {
	for name, filter := range entityFilters() {
		clauseA, argsA := filter(landlordAccess("duenio-a"), "x", 1)
		clauseB, argsB := filter(landlordAccess("duenio-b"), "x", 1)

		assert.Equal(t, clauseA, clauseB, "entidad %s: misma forma de cláusula", name)
		assert.Equal(t, []any{"duenio-a"}, argsA, "entidad %s", name)
		assert.Equal(t, []any{"duenio-b"}, argsB, "entidad %s", name)
	}
}

// TENANT solo ve lo propio, resuelto vía tenants.user_id.
func TestScopeFilters_TenantSoloLoPropio(t *testing.T) {
	access := scope.Access{UserID: "inq-1", Role: scope.RoleTenant}

	clause, args := propertyScope(access, "p", 1)
	assert.Equal(t, "p.id IN (SELECT property_id FROM tenants WHERE user_id = $1)", clause)
	assert.Equal(t, []any{"inq-1"}, args)

	clause, args = tenantScope(access, "t", 1)
	assert.Equal(t, "t.user_id = $1", clause)
	assert.Equal(t, []any{"inq-1"}, args)

	clause, args = rentScope(access, "rp", 1)
	assert.Equal(t, "rp.tenant_id IN (SELECT id FROM tenants WHERE user_id = $1)", clause)
	assert.Equal(t, []any{"inq-1"}, args)

	clause, args = maintenanceScope(access, "m", 1)
	assert.Equal(t, "m.property_id IN (SELECT property_id FROM tenants WHERE user_id = $1)", clause)
	assert.Equal(t, []any{"inq-1"}, args)
}

// Un rol desconocido o vacío no ve nada: denegar por defecto.
func TestScopeFilters_RolDesconocidoNoVeNada(t *testing.T) {
	for _, role := range []scope.Role{"", "SUPERUSER", "admin"} {
		access := scope.Access{UserID: "u-1", Role: role}
		for name, filter := range entityFilters() {
			clause, args := filter(access, "x", 1)
			assert.Equal(t, "FALSE", clause, "entidad %s, rol %q", name, role)
			assert.Empty(t, args, "entidad %s, rol %q", name, role)
		}
	}
}

// El índice de placeholder se propaga: las cláusulas se insertan después de
// los argumentos posicionales de cada consulta.
func TestScopeFilters_IndiceDePlaceholder(t *testing.T) {
	clause, args := propertyScope(landlordAccess("duenio-1"), "p", 3)
	assert.Equal(t, "p.owner_id = $3", clause)
	assert.Equal(t, []any{"duenio-1"}, args)

	clause, args = rentScope(scope.Access{UserID: "inq-1", Role: scope.RoleTenant}, "rp", 4)
	assert.Equal(t, "rp.tenant_id IN (SELECT id FROM tenants WHERE user_id = $4)", clause)
	assert.Equal(t, []any{"inq-1"}, args)
}

// manage reduce el conjunto gestionable a vacío para roles de solo lectura y
// delega en el filtro de visibilidad para el resto.
func TestScopeFilters_ManageBloqueaSoloLectura(t *testing.T) {
	for name, filter := range entityFilters() {
		clause, args := manage(scope.Access{UserID: "inq-1", Role: scope.RoleTenant}, filter, "x", 1)
		assert.Equal(t, "FALSE", clause, "entidad %s: TENANT no gestiona", name)
		assert.Empty(t, args)

		clause, args = manage(scope.Access{UserID: "u-1", Role: ""}, filter, "x", 1)
		assert.Equal(t, "FALSE", clause, "entidad %s: rol vacío no gestiona", name)
		assert.Empty(t, args)
	}

	clause, args := manage(scope.Access{UserID: "m-1", Role: scope.RoleManager}, tenantScope, "tenants", 2)
	assert.Equal(t, "TRUE", clause)
	assert.Empty(t, args)

	clause, args = manage(landlordAccess("duenio-1"), tenantScope, "tenants", 2)
	assert.Equal(t, "tenants.property_id IN (SELECT id FROM properties WHERE owner_id = $2)", clause)
	assert.Equal(t, []any{"duenio-1"}, args)
}
