package security

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type fakeAuthStore struct {
	lookup *store.AuthLookup
	err    error

	mu      sync.Mutex
	hashes  [][]byte
	touched []uuid.UUID
}

func (f *fakeAuthStore) GetApiKeyForAuth(_ context.Context, hash []byte) (*store.AuthLookup, error) {
	f.mu.Lock()
	f.hashes = append(f.hashes, hash)
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.lookup, nil
}

func (f *fakeAuthStore) TouchApiKeyLastUsed(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.mu.Lock()
	f.touched = append(f.touched, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeAuthStore) touchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.touched)
}

func newTestLookup(t *testing.T, roles ...store.RoleName) (*store.AuthLookup, string) {
	t.Helper()
	mat, err := apikey.New()
	require.NoError(t, err)
	userID := uuid.New()
	return &store.AuthLookup{
		Key: store.ApiKey{
			ID:        uuid.New(),
			UserID:    userID,
			KeyPrefix: mat.Prefix,
			Status:    store.ApiKeyActive,
		},
		User: store.User{
			ID:          userID,
			Email:       "alice@example.com",
			DisplayName: "Alice",
			Roles:       roles,
		},
	}, mat.Raw
}

func TestResolverResolve(t *testing.T) {
	lookup, raw := newTestLookup(t, store.RoleUser)
	fake := &fakeAuthStore{lookup: lookup}
	r := NewResolver(fake)

	p, err := r.Resolve(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, lookup.User.ID, p.UserID)
	assert.Equal(t, "alice@example.com", p.Email)
	assert.True(t, p.Has(CreateSpaceOwn))
	assert.False(t, p.Has(CreateSpaceAny))

	// The hash sent to the store matches the raw material.
	require.Len(t, fake.hashes, 1)
	assert.Equal(t, apikey.HashRaw(raw), fake.hashes[0])

	// Usage is recorded asynchronously.
	assert.Eventually(t, func() bool { return fake.touchCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestResolverRejectsMalformedKey(t *testing.T) {
	fake := &fakeAuthStore{}
	r := NewResolver(fake)

	_, err := r.Resolve(context.Background(), "not-a-key")
	var unauth *store.UnauthenticatedError
	require.ErrorAs(t, err, &unauth)
	// Malformed keys never reach the store.
	assert.Empty(t, fake.hashes)
}

func TestResolverRejectsUnknownKey(t *testing.T) {
	_, raw := newTestLookup(t, store.RoleUser)
	fake := &fakeAuthStore{err: &store.NotFoundError{Resource: "api key"}}
	r := NewResolver(fake)

	_, err := r.Resolve(context.Background(), raw)
	var unauth *store.UnauthenticatedError
	require.ErrorAs(t, err, &unauth)
}

func TestResolverRejectsInactiveKey(t *testing.T) {
	lookup, raw := newTestLookup(t, store.RoleUser)
	lookup.Key.Status = store.ApiKeyInactive
	r := NewResolver(&fakeAuthStore{lookup: lookup})

	_, err := r.Resolve(context.Background(), raw)
	var unauth *store.UnauthenticatedError
	require.ErrorAs(t, err, &unauth)
}

func TestResolverRejectsExpiredKey(t *testing.T) {
	lookup, raw := newTestLookup(t, store.RoleUser)
	past := time.Now().Add(-time.Hour)
	lookup.Key.ExpiresAt = &past
	r := NewResolver(&fakeAuthStore{lookup: lookup})

	_, err := r.Resolve(context.Background(), raw)
	var unauth *store.UnauthenticatedError
	require.ErrorAs(t, err, &unauth)
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lookup, raw := newTestLookup(t, store.RoleUser)
	resolver := NewResolver(&fakeAuthStore{lookup: lookup})

	var seen *Principal
	router := gin.New()
	router.GET("/v1/ping", AuthMiddleware(resolver), func(c *gin.Context) {
		seen = PrincipalFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	// Missing header.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no API key provided")

	// Invalid key.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("x-api-key", "gm_bogus")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid key reaches the handler with a principal attached.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/ping", nil)
	req.Header.Set("x-api-key", raw)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, lookup.User.ID, seen.UserID)
}

func TestGRPCUnaryInterceptor(t *testing.T) {
	lookup, raw := newTestLookup(t, store.RoleAdmin)
	resolver := NewResolver(&fakeAuthStore{lookup: lookup})
	interceptor := GRPCUnaryInterceptor(resolver)

	var seen *Principal
	handlerRan := false
	handler := func(ctx context.Context, req any) (any, error) {
		handlerRan = true
		seen = PrincipalFromContext(ctx)
		return nil, nil
	}
	info := &grpc.UnaryServerInfo{FullMethod: "/goodmem.v1.SpaceService/GetSpace"}

	// With valid metadata the principal is attached.
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderAPIKey, raw))
	_, err := interceptor(ctx, nil, info, handler)
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, seen.Unrestricted())

	// Without metadata the call is rejected before the handler.
	handlerRan = false
	_, err = interceptor(context.Background(), nil, info, handler)
	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.False(t, handlerRan)

	// A bad key is rejected too.
	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs(HeaderAPIKey, "gm_bogus"))
	_, err = interceptor(ctx, nil, info, handler)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// Bootstrap passes through without a key and without a principal.
	handlerRan = false
	seen = NewPrincipal(store.User{})
	bootInfo := &grpc.UnaryServerInfo{FullMethod: "/goodmem.v1.SystemService/InitializeSystem"}
	_, err = interceptor(context.Background(), nil, bootInfo, handler)
	require.NoError(t, err)
	assert.True(t, handlerRan)
	assert.Nil(t, seen)
}
