package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inmuebles-api/internal/domain/scope"
)

func TestParseRole_Validos(t *testing.T) {
	for _, s := range []string{"LANDLORD", "MANAGER", "TENANT"} {
		r, err := scope.ParseRole(s)
		require.NoError(t, err, "rol %s debe ser válido", s)
		assert.Equal(t, scope.Role(s), r)
		assert.True(t, r.Valid())
	}
}

func TestParseRole_Invalidos(t *testing.T) {
	for _, s := range []string{"", "ADMIN", "landlord", "OWNER"} {
		_, err := scope.ParseRole(s)
		assert.Error(t, err, "rol %q debe rechazarse", s)
	}
}

// Matriz de gestión: TENANT nunca puede mutar, LANDLORD y MANAGER sí.
func TestAccess_CanManage(t *testing.T) {
	cases := []struct {
		role scope.Role
		want bool
	}{
		{scope.RoleManager, true},
		{scope.RoleLandlord, true},
		{scope.RoleTenant, false},
		{scope.Role("OTRO"), false},
	}
	for _, c := range cases {
		a := scope.Access{UserID: "u1", Role: c.role}
		assert.Equal(t, c.want, a.CanManage(), "CanManage para rol %s", c.role)
	}
}

func TestAccess_SeesEverything_SoloManager(t *testing.T) {
	assert.True(t, scope.Access{Role: scope.RoleManager}.SeesEverything())
	assert.False(t, scope.Access{Role: scope.RoleLandlord}.SeesEverything())
	assert.False(t, scope.Access{Role: scope.RoleTenant}.SeesEverything())
}

func TestDefaultRole_EsLandlord(t *testing.T) {
	assert.Equal(t, scope.RoleLandlord, scope.DefaultRole)
}
