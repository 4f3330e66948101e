package security

import (
	"testing"

	"github.com/goodmem/goodmem/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestPermissionsForRoles(t *testing.T) {
	perms, unrestricted := permissionsForRoles([]store.RoleName{store.RoleUser})
	assert.False(t, unrestricted)
	assert.True(t, perms[DisplayUserOwn])
	assert.True(t, perms[CreateSpaceOwn])
	assert.True(t, perms[DeleteMemoryOwn])
	assert.False(t, perms[DisplayUserAny])
	assert.False(t, perms[CreateSpaceAny])

	_, unrestricted = permissionsForRoles([]store.RoleName{store.RoleRoot})
	assert.True(t, unrestricted)

	_, unrestricted = permissionsForRoles([]store.RoleName{store.RoleAdmin})
	assert.True(t, unrestricted)

	_, unrestricted = permissionsForRoles([]store.RoleName{store.RoleUser, store.RoleAdmin})
	assert.True(t, unrestricted)

	perms, unrestricted = permissionsForRoles(nil)
	assert.False(t, unrestricted)
	assert.Empty(t, perms)
}

func TestPrincipalHas(t *testing.T) {
	user := NewPrincipal(store.User{Roles: []store.RoleName{store.RoleUser}})
	assert.True(t, user.Has(UpdateApiKeyOwn))
	assert.False(t, user.Has(UpdateApiKeyAny))
	assert.False(t, user.Unrestricted())

	admin := NewPrincipal(store.User{Roles: []store.RoleName{store.RoleAdmin}})
	assert.True(t, admin.Has(UpdateApiKeyAny))
	assert.True(t, admin.Unrestricted())

	var nobody *Principal
	assert.False(t, nobody.Has(DisplaySpaceOwn))
	assert.False(t, nobody.Unrestricted())
}
