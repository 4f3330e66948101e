package route_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApiKeyLifecycle(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, aliceID := env.newUser(t, "alice@example.com")

	expires := time.Now().Add(24 * time.Hour).UnixMilli()
	created := env.do(t, http.MethodPost, "/v1/apikeys", alice, map[string]any{
		"labels":    map[string]string{"purpose": "ci"},
		"expiresAt": expires,
	})
	require.Equal(t, http.StatusOK, created.Code, "body: %s", created.Body.String())
	body := decode(t, created)

	rawKey, _ := body["rawApiKey"].(string)
	require.NotEmpty(t, rawKey)
	meta, _ := body["apiKeyMetadata"].(map[string]any)
	require.NotNil(t, meta)
	require.Equal(t, aliceID, meta["userId"])
	require.Equal(t, "ACTIVE", meta["status"])
	require.True(t, strings.HasPrefix(rawKey, meta["keyPrefix"].(string)))
	require.Equal(t, float64(expires), meta["expiresAt"])
	keyID, _ := meta["apiKeyId"].(string)
	require.Len(t, keyID, 36)

	// The minted key authenticates.
	me := env.do(t, http.MethodGet, "/v1/users", rawKey, nil)
	require.Equal(t, http.StatusOK, me.Code)

	// Listing shows both of alice's keys, without hashes.
	list := env.do(t, http.MethodGet, "/v1/apikeys", alice, nil)
	require.Equal(t, http.StatusOK, list.Code)
	keys, _ := decode(t, list)["keys"].([]any)
	require.Len(t, keys, 2)
	for _, k := range keys {
		km := k.(map[string]any)
		_, leaked := km["hashedKey"]
		require.False(t, leaked)
	}

	// Deactivating the key cuts off authentication.
	updated := env.do(t, http.MethodPut, "/v1/apikeys/"+keyID, alice, map[string]any{
		"status":      "INACTIVE",
		"mergeLabels": map[string]string{"rotated": "true"},
	})
	require.Equal(t, http.StatusOK, updated.Code)
	um := decode(t, updated)
	require.Equal(t, "INACTIVE", um["status"])
	require.Equal(t, map[string]any{"purpose": "ci", "rotated": "true"}, um["labels"])

	denied := env.do(t, http.MethodGet, "/v1/users", rawKey, nil)
	require.Equal(t, http.StatusUnauthorized, denied.Code)

	// Bad status string.
	badStatus := env.do(t, http.MethodPut, "/v1/apikeys/"+keyID, alice, map[string]any{"status": "PAUSED"})
	require.Equal(t, http.StatusBadRequest, badStatus.Code)

	del := env.do(t, http.MethodDelete, "/v1/apikeys/"+keyID, alice, nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	require.Empty(t, del.Body.String())

	again := env.do(t, http.MethodDelete, "/v1/apikeys/"+keyID, alice, nil)
	require.Equal(t, http.StatusNotFound, again.Code)
}

func TestEmbedderLifecycle(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, aliceID := env.newUser(t, "alice@example.com")
	bob, _ := env.newUser(t, "bob@example.com")

	created := env.do(t, http.MethodPost, "/v1/embedders", alice, map[string]any{
		"displayName":     "team-embedder",
		"providerType":    "openai",
		"endpointUrl":     "https://api.openai.com",
		"modelIdentifier": "text-embedding-3-small",
		"dimensionality":  1536,
		"credentials":     "sk-secret",
		"labels":          map[string]string{"team": "ml"},
	})
	require.Equal(t, http.StatusOK, created.Code, "body: %s", created.Body.String())
	e := decode(t, created)
	require.Equal(t, "OPENAI", e["providerType"])
	require.Equal(t, "/v1/embeddings", e["apiPath"])
	require.Equal(t, []any{"TEXT"}, e["supportedModalities"])
	require.Equal(t, aliceID, e["ownerId"])
	require.Equal(t, "sk-secret", e["credentials"])
	id, _ := e["embedderId"].(string)
	require.Len(t, id, 36)

	// List never exposes credentials.
	list := env.do(t, http.MethodGet, "/v1/embedders", alice, nil)
	require.Equal(t, http.StatusOK, list.Code)
	embedders, _ := decode(t, list)["embedders"].([]any)
	require.Len(t, embedders, 1)
	_, leaked := embedders[0].(map[string]any)["credentials"]
	require.False(t, leaked)

	// Get returns them to the owner; a stranger is denied outright.
	got := env.do(t, http.MethodGet, "/v1/embedders/"+id, alice, nil)
	require.Equal(t, http.StatusOK, got.Code)
	require.Equal(t, "sk-secret", decode(t, got)["credentials"])
	denied := env.do(t, http.MethodGet, "/v1/embedders/"+id, bob, nil)
	require.Equal(t, http.StatusForbidden, denied.Code)

	// Unknown provider type in a filter or body is a 400.
	badFilter := env.do(t, http.MethodGet, "/v1/embedders?provider_type=HUGGING", alice, nil)
	require.Equal(t, http.StatusBadRequest, badFilter.Code)
	badCreate := env.do(t, http.MethodPost, "/v1/embedders", alice, map[string]any{
		"displayName":     "x",
		"providerType":    "HUGGING",
		"endpointUrl":     "https://x",
		"modelIdentifier": "m",
		"dimensionality":  8,
		"credentials":     "c",
	})
	require.Equal(t, http.StatusBadRequest, badCreate.Code)

	// Provider type is immutable.
	frozen := env.do(t, http.MethodPut, "/v1/embedders/"+id, alice, map[string]any{"providerType": "TEI"})
	require.Equal(t, http.StatusBadRequest, frozen.Code)

	updated := env.do(t, http.MethodPut, "/v1/embedders/"+id, alice, map[string]any{
		"displayName":         "team-embedder-v2",
		"maxSequenceLength":   8192,
		"supportedModalities": []string{"TEXT", "IMAGE"},
		"replaceLabels":       map[string]string{"team": "platform"},
	})
	require.Equal(t, http.StatusOK, updated.Code, "body: %s", updated.Body.String())
	ue := decode(t, updated)
	require.Equal(t, "team-embedder-v2", ue["displayName"])
	require.Equal(t, float64(8192), ue["maxSequenceLength"])
	require.Equal(t, []any{"TEXT", "IMAGE"}, ue["supportedModalities"])
	require.Equal(t, map[string]any{"team": "platform"}, ue["labels"])

	del := env.do(t, http.MethodDelete, "/v1/embedders/"+id, alice, nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	missing := env.do(t, http.MethodGet, "/v1/embedders/"+id, alice, nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
}

func TestSpaceLifecycle(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, aliceID := env.newUser(t, "alice@example.com")
	embedderID := env.newEmbedder(t, alice, "space-embedder")

	created := env.do(t, http.MethodPost, "/v1/spaces", alice, map[string]any{
		"name":       "research",
		"embedderId": embedderID,
		"labels":     map[string]string{"project": "alpha"},
	})
	require.Equal(t, http.StatusOK, created.Code, "body: %s", created.Body.String())
	sp := decode(t, created)
	require.Equal(t, "research", sp["name"])
	require.Equal(t, embedderID, sp["embedderId"])
	require.Equal(t, aliceID, sp["ownerId"])
	require.Equal(t, false, sp["publicRead"])
	require.Greater(t, sp["createdAt"], float64(0))
	id, _ := sp["spaceId"].(string)
	require.Len(t, id, 36)

	got := env.do(t, http.MethodGet, "/v1/spaces/"+id, alice, nil)
	require.Equal(t, http.StatusOK, got.Code)

	// Both label strategies at once cannot be expressed on the wire and is
	// rejected before the service sees it.
	conflict := env.do(t, http.MethodPut, "/v1/spaces/"+id, alice, map[string]any{
		"replaceLabels": map[string]string{"a": "1"},
		"mergeLabels":   map[string]string{"b": "2"},
	})
	require.Equal(t, http.StatusBadRequest, conflict.Code)
	require.Contains(t, decode(t, conflict)["error"], "mutually exclusive")

	updated := env.do(t, http.MethodPut, "/v1/spaces/"+id, alice, map[string]any{
		"name":        "research-v2",
		"publicRead":  true,
		"mergeLabels": map[string]string{"stage": "beta"},
	})
	require.Equal(t, http.StatusOK, updated.Code)
	us := decode(t, updated)
	require.Equal(t, "research-v2", us["name"])
	require.Equal(t, true, us["publicRead"])
	require.Equal(t, map[string]any{"project": "alpha", "stage": "beta"}, us["labels"])

	del := env.do(t, http.MethodDelete, "/v1/spaces/"+id, alice, nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	gone := env.do(t, http.MethodGet, "/v1/spaces/"+id, alice, nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

func TestSpaceListQueryParams(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, _ := env.newUser(t, "alice@example.com")
	embedderID := env.newEmbedder(t, alice, "list-embedder")

	for i := 0; i < 5; i++ {
		tier := "cold"
		if i%2 == 0 {
			tier = "hot"
		}
		w := env.do(t, http.MethodPost, "/v1/spaces", alice, map[string]any{
			"name":       fmt.Sprintf("page-%d", i),
			"embedderId": embedderID,
			"labels":     map[string]string{"tier": tier},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	names := func(w *httptest.ResponseRecorder) []string {
		var out []string
		for _, s := range decode(t, w)["spaces"].([]any) {
			out = append(out, s.(map[string]any)["name"].(string))
		}
		return out
	}

	// First page of two, name-ascending.
	first := env.do(t, http.MethodGet, "/v1/spaces?max_results=2&sort_by=name&sort_order=asc", alice, nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, []string{"page-0", "page-1"}, names(first))
	token, _ := decode(t, first)["nextToken"].(string)
	require.NotEmpty(t, token)

	// Follow-up carries only the token and keeps the page shape.
	second := env.do(t, http.MethodGet, "/v1/spaces?next_token="+url.QueryEscape(token), alice, nil)
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, []string{"page-2", "page-3"}, names(second))

	// Label selector filtering.
	hot := env.do(t, http.MethodGet, "/v1/spaces?label.tier=hot&sort_by=name", alice, nil)
	require.Equal(t, http.StatusOK, hot.Code)
	require.Equal(t, []string{"page-0", "page-2", "page-4"}, names(hot))

	// Glob name filter.
	glob := env.do(t, http.MethodGet, "/v1/spaces?name_filter=page-4*", alice, nil)
	require.Equal(t, http.StatusOK, glob.Code)
	require.Equal(t, []string{"page-4"}, names(glob))

	// Descending sort.
	desc := env.do(t, http.MethodGet, "/v1/spaces?sort_by=name&sort_order=DESC", alice, nil)
	require.Equal(t, http.StatusOK, desc.Code)
	require.Equal(t, []string{"page-4", "page-3", "page-2", "page-1", "page-0"}, names(desc))

	bad := env.do(t, http.MethodGet, "/v1/spaces?sort_order=sideways", alice, nil)
	require.Equal(t, http.StatusBadRequest, bad.Code)

	badMax := env.do(t, http.MethodGet, "/v1/spaces?max_results=lots", alice, nil)
	require.Equal(t, http.StatusBadRequest, badMax.Code)
}

func TestMemoryLifecycle(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, aliceID := env.newUser(t, "alice@example.com")
	embedderID := env.newEmbedder(t, alice, "memory-embedder")

	w := env.do(t, http.MethodPost, "/v1/spaces", alice, map[string]any{
		"name":       "notes",
		"embedderId": embedderID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	spaceID, _ := decode(t, w)["spaceId"].(string)

	created := env.do(t, http.MethodPost, "/v1/memories", alice, map[string]any{
		"spaceId":            spaceID,
		"originalContentRef": "s3://bucket/notes/1.txt",
		"contentType":        "text/plain",
		"metadata":           map[string]string{"source": "upload"},
	})
	require.Equal(t, http.StatusOK, created.Code, "body: %s", created.Body.String())
	m := decode(t, created)
	require.Equal(t, "PENDING", m["processingStatus"])
	require.Equal(t, spaceID, m["spaceId"])
	require.Equal(t, aliceID, m["createdById"])
	memoryID, _ := m["memoryId"].(string)
	require.Len(t, memoryID, 36)

	// Missing content ref.
	noRef := env.do(t, http.MethodPost, "/v1/memories", alice, map[string]any{"spaceId": spaceID})
	require.Equal(t, http.StatusBadRequest, noRef.Code)

	list := env.do(t, http.MethodGet, "/v1/memories?space_id="+spaceID, alice, nil)
	require.Equal(t, http.StatusOK, list.Code)
	memories, _ := decode(t, list)["memories"].([]any)
	require.Len(t, memories, 1)

	noSpace := env.do(t, http.MethodGet, "/v1/memories", alice, nil)
	require.Equal(t, http.StatusBadRequest, noSpace.Code)

	got := env.do(t, http.MethodGet, "/v1/memories/"+memoryID, alice, nil)
	require.Equal(t, http.StatusOK, got.Code)
	require.Equal(t, "s3://bucket/notes/1.txt", decode(t, got)["originalContentRef"])

	del := env.do(t, http.MethodDelete, "/v1/memories/"+memoryID, alice, nil)
	require.Equal(t, http.StatusNoContent, del.Code)
	gone := env.do(t, http.MethodGet, "/v1/memories/"+memoryID, alice, nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}
