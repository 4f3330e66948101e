package route_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/goodmem/goodmem/internal/config"
	"github.com/goodmem/goodmem/internal/grpcapi"
	"github.com/goodmem/goodmem/internal/route"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/goodmem/goodmem/internal/store/postgres"
	"github.com/goodmem/goodmem/internal/testutil/testpg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type restEnv struct {
	router *gin.Engine
	store  store.Store
	ctx    context.Context
	dbURL  string
}

// setupRouter stands up the full REST stack against a throwaway postgres:
// real store, real key resolver, real auth middleware. Tests authenticate
// with raw API keys exactly like external clients.
func setupRouter(t *testing.T) *restEnv {
	t.Helper()

	dbURL := testpg.StartPostgres(t)

	cfg := config.DefaultConfig()
	cfg.DBURL = dbURL
	cfg.CredentialEncryptionKey = testEncryptionKey
	ctx := config.WithContext(context.Background(), &cfg)

	require.NoError(t, postgres.Migrate(ctx, &cfg))
	st, err := postgres.Open(ctx, &cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	gin.SetMode(gin.TestMode)
	router := gin.New()
	svc := route.Services{
		System:    &grpcapi.SystemServer{Store: st},
		Users:     &grpcapi.UserServer{Store: st},
		ApiKeys:   &grpcapi.ApiKeyServer{Store: st},
		Embedders: &grpcapi.EmbedderServer{Store: st},
		Spaces:    &grpcapi.SpaceServer{Store: st},
		Memories:  &grpcapi.MemoryServer{Store: st},
	}
	route.MountRoutes(router, svc, security.AuthMiddleware(security.NewResolver(st)))
	route.MountManagementRoutes(router, st)
	return &restEnv{router: router, store: st, ctx: ctx, dbURL: dbURL}
}

func (e *restEnv) do(t *testing.T, method, path, key string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if key != "" {
		req.Header.Set(security.HeaderAPIKey, key)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

// bootstrap initializes the system and returns the root API key.
func (e *restEnv) bootstrap(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/system/init", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	key, _ := body["rootApiKey"].(string)
	require.NotEmpty(t, key)
	return key
}

// newUser seeds a regular user with the USER role and mints an API key for
// it, returning the raw key and the user's textual id.
func (e *restEnv) newUser(t *testing.T, email string) (string, string) {
	t.Helper()

	conn, err := pgx.Connect(e.ctx, e.dbURL)
	require.NoError(t, err)
	defer conn.Close(e.ctx)

	id := uuid.New()
	_, err = conn.Exec(e.ctx,
		`INSERT INTO users (user_id, username, email, display_name) VALUES ($1, $2, $3, $4)`,
		id, email, email, "Test "+email)
	require.NoError(t, err)
	_, err = conn.Exec(e.ctx,
		`INSERT INTO user_roles (user_id, role_name) VALUES ($1, 'USER')`, id)
	require.NoError(t, err)

	material, err := apikey.New()
	require.NoError(t, err)
	_, err = e.store.CreateApiKey(e.ctx, &store.ApiKey{
		UserID:      id,
		KeyPrefix:   material.Prefix,
		HashedKey:   material.Hash,
		Status:      store.ApiKeyActive,
		CreatedByID: id,
		UpdatedByID: id,
	})
	require.NoError(t, err)
	return material.Raw, id.String()
}

// newEmbedder creates an embedder over REST as the given key and returns
// its textual id.
func (e *restEnv) newEmbedder(t *testing.T, key, name string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/v1/embedders", key, map[string]any{
		"displayName":     name,
		"providerType":    "OPENAI",
		"endpointUrl":     "https://api.openai.com",
		"modelIdentifier": "text-embedding-3-small",
		"dimensionality":  1536,
		"credentials":     "sk-test-credentials",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	id, _ := decode(t, w)["embedderId"].(string)
	require.Len(t, id, 36)
	return id
}

func TestSystemInitEndpoint(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/v1/system/init", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode(t, w)
	require.Equal(t, false, first["alreadyInitialized"])
	rootKey, _ := first["rootApiKey"].(string)
	require.True(t, apikey.ValidFormat(rootKey))
	userID, _ := first["userId"].(string)
	require.Len(t, userID, 36)
	require.NotEmpty(t, first["message"])

	// The returned key authenticates as the root user.
	me := env.do(t, http.MethodGet, "/v1/users", rootKey, nil)
	require.Equal(t, http.StatusOK, me.Code)
	user := decode(t, me)
	require.Equal(t, userID, user["userId"])
	require.Equal(t, "root@goodmem.ai", user["email"])

	// Repeat bootstrap reports already-initialized and leaks nothing.
	again := env.do(t, http.MethodPost, "/v1/system/init", "", nil)
	require.Equal(t, http.StatusOK, again.Code)
	second := decode(t, again)
	require.Equal(t, true, second["alreadyInitialized"])
	_, hasKey := second["rootApiKey"]
	require.False(t, hasKey)
	require.Equal(t, "System is already initialized", second["message"])
}

func TestAuthRequired(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)

	missing := env.do(t, http.MethodGet, "/v1/spaces", "", nil)
	require.Equal(t, http.StatusUnauthorized, missing.Code)
	require.Equal(t, "no API key provided", decode(t, missing)["error"])

	bogus := env.do(t, http.MethodGet, "/v1/spaces", "gm_notarealkey0000000000000000", nil)
	require.Equal(t, http.StatusUnauthorized, bogus.Code)
	require.Equal(t, "invalid API key", decode(t, bogus)["error"])

	badFormat := env.do(t, http.MethodGet, "/v1/spaces", "Bearer whatever", nil)
	require.Equal(t, http.StatusUnauthorized, badFormat.Code)
}

func TestManagementEndpoints(t *testing.T) {
	env := setupRouter(t)

	health := env.do(t, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, health.Code)
	require.Equal(t, "ok", decode(t, health)["status"])

	ready := env.do(t, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusServiceUnavailable, ready.Code)
	require.Equal(t, "starting", decode(t, ready)["status"])

	route.MarkReady()
	ready = env.do(t, http.MethodGet, "/health/ready", "", nil)
	require.Equal(t, http.StatusOK, ready.Code)
	require.Equal(t, "ready", decode(t, ready)["status"])

	metrics := env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, metrics.Code)
	require.True(t, strings.Contains(metrics.Body.String(), "go_goroutines"))
}

func TestErrorMapping(t *testing.T) {
	env := setupRouter(t)
	env.bootstrap(t)
	alice, _ := env.newUser(t, "alice@example.com")
	bob, _ := env.newUser(t, "bob@example.com")

	// Malformed path id.
	bad := env.do(t, http.MethodGet, "/v1/spaces/not-a-uuid", alice, nil)
	require.Equal(t, http.StatusBadRequest, bad.Code)
	require.Equal(t, "invalid id", decode(t, bad)["error"])

	// Unknown but well-formed id.
	gone := env.do(t, http.MethodGet, "/v1/spaces/"+uuid.NewString(), alice, nil)
	require.Equal(t, http.StatusNotFound, gone.Code)

	embedderID := env.newEmbedder(t, alice, "map-embedder")
	created := env.do(t, http.MethodPost, "/v1/spaces", alice, map[string]any{
		"name":       "mapping-space",
		"embedderId": embedderID,
	})
	require.Equal(t, http.StatusOK, created.Code)
	spaceID, _ := decode(t, created)["spaceId"].(string)

	// Duplicate name for the same owner.
	dup := env.do(t, http.MethodPost, "/v1/spaces", alice, map[string]any{
		"name":       "mapping-space",
		"embedderId": embedderID,
	})
	require.Equal(t, http.StatusConflict, dup.Code)

	// A stranger updating a private space is forbidden... but reads of a
	// private space are hidden as 404, not 403.
	forbidden := env.do(t, http.MethodPut, "/v1/spaces/"+spaceID, bob, map[string]any{"publicRead": true})
	require.Equal(t, http.StatusForbidden, forbidden.Code)
	hidden := env.do(t, http.MethodGet, "/v1/spaces/"+spaceID, bob, nil)
	require.Equal(t, http.StatusNotFound, hidden.Code)

	// Unparseable JSON body.
	raw := httptest.NewRequest(http.MethodPost, "/v1/spaces", strings.NewReader("{nope"))
	raw.Header.Set("Content-Type", "application/json")
	raw.Header.Set(security.HeaderAPIKey, alice)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, raw)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
