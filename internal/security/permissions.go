// Package security resolves API keys to principals and carries the
// authorization primitives handlers check against. It also owns the
// ambient request middleware: access logging, metrics, and panic
// recovery for both the gRPC and REST surfaces.
package security

import (
	"github.com/goodmem/goodmem/internal/store"
)

// Permission names follow VERB_RESOURCE_SCOPE. OWN permissions constrain
// the operation to rows owned by the caller; ANY permissions lift that
// constraint.
type Permission string

const (
	DisplayUserOwn Permission = "DISPLAY_USER_OWN"
	DisplayUserAny Permission = "DISPLAY_USER_ANY"

	CreateSpaceOwn  Permission = "CREATE_SPACE_OWN"
	CreateSpaceAny  Permission = "CREATE_SPACE_ANY"
	DisplaySpaceOwn Permission = "DISPLAY_SPACE_OWN"
	DisplaySpaceAny Permission = "DISPLAY_SPACE_ANY"
	UpdateSpaceOwn  Permission = "UPDATE_SPACE_OWN"
	UpdateSpaceAny  Permission = "UPDATE_SPACE_ANY"
	DeleteSpaceOwn  Permission = "DELETE_SPACE_OWN"
	DeleteSpaceAny  Permission = "DELETE_SPACE_ANY"

	CreateEmbedderOwn  Permission = "CREATE_EMBEDDER_OWN"
	CreateEmbedderAny  Permission = "CREATE_EMBEDDER_ANY"
	DisplayEmbedderOwn Permission = "DISPLAY_EMBEDDER_OWN"
	DisplayEmbedderAny Permission = "DISPLAY_EMBEDDER_ANY"
	UpdateEmbedderOwn  Permission = "UPDATE_EMBEDDER_OWN"
	UpdateEmbedderAny  Permission = "UPDATE_EMBEDDER_ANY"
	DeleteEmbedderOwn  Permission = "DELETE_EMBEDDER_OWN"
	DeleteEmbedderAny  Permission = "DELETE_EMBEDDER_ANY"

	CreateApiKeyOwn  Permission = "CREATE_APIKEY_OWN"
	CreateApiKeyAny  Permission = "CREATE_APIKEY_ANY"
	DisplayApiKeyOwn Permission = "DISPLAY_APIKEY_OWN"
	DisplayApiKeyAny Permission = "DISPLAY_APIKEY_ANY"
	UpdateApiKeyOwn  Permission = "UPDATE_APIKEY_OWN"
	UpdateApiKeyAny  Permission = "UPDATE_APIKEY_ANY"
	DeleteApiKeyOwn  Permission = "DELETE_APIKEY_OWN"
	DeleteApiKeyAny  Permission = "DELETE_APIKEY_ANY"

	CreateMemoryOwn  Permission = "CREATE_MEMORY_OWN"
	CreateMemoryAny  Permission = "CREATE_MEMORY_ANY"
	DisplayMemoryOwn Permission = "DISPLAY_MEMORY_OWN"
	DisplayMemoryAny Permission = "DISPLAY_MEMORY_ANY"
	UpdateMemoryOwn  Permission = "UPDATE_MEMORY_OWN"
	UpdateMemoryAny  Permission = "UPDATE_MEMORY_ANY"
	DeleteMemoryOwn  Permission = "DELETE_MEMORY_OWN"
	DeleteMemoryAny  Permission = "DELETE_MEMORY_ANY"
)

// userPermissions is the USER role's bundle: everything scoped to the
// caller's own rows.
var userPermissions = []Permission{
	DisplayUserOwn,
	CreateSpaceOwn, DisplaySpaceOwn, UpdateSpaceOwn, DeleteSpaceOwn,
	CreateEmbedderOwn, DisplayEmbedderOwn, UpdateEmbedderOwn, DeleteEmbedderOwn,
	CreateApiKeyOwn, DisplayApiKeyOwn, UpdateApiKeyOwn, DeleteApiKeyOwn,
	CreateMemoryOwn, DisplayMemoryOwn, UpdateMemoryOwn, DeleteMemoryOwn,
}

// permissionsForRoles computes the union permission set for the given
// roles. ROOT and ADMIN are unrestricted: they hold every permission and
// the returned set is not consulted for them.
func permissionsForRoles(roles []store.RoleName) (perms map[Permission]bool, unrestricted bool) {
	perms = map[Permission]bool{}
	for _, role := range roles {
		switch role {
		case store.RoleRoot, store.RoleAdmin:
			unrestricted = true
		case store.RoleUser:
			for _, p := range userPermissions {
				perms[p] = true
			}
		}
	}
	return perms, unrestricted
}
