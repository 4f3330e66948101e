package grpcapi_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/goodmem/goodmem/internal/config"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/goodmem/goodmem/internal/store/postgres"
	"github.com/goodmem/goodmem/internal/testutil/testpg"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

// testEnv wires every service server against one throwaway database so
// tests exercise the same store the process would.
type testEnv struct {
	store     store.Store
	ctx       context.Context
	dbURL     string
	system    *grpcapi.SystemServer
	users     *grpcapi.UserServer
	apiKeys   *grpcapi.ApiKeyServer
	embedders *grpcapi.EmbedderServer
	spaces    *grpcapi.SpaceServer
	memories  *grpcapi.MemoryServer
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	dbURL := testpg.StartPostgres(t)

	cfg := config.DefaultConfig()
	cfg.DBURL = dbURL
	cfg.CredentialEncryptionKey = testEncryptionKey
	ctx := config.WithContext(context.Background(), &cfg)

	require.NoError(t, postgres.Migrate(ctx, &cfg))

	s, err := postgres.Open(ctx, &cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return &testEnv{
		store:     s,
		ctx:       ctx,
		dbURL:     dbURL,
		system:    &grpcapi.SystemServer{Store: s},
		users:     &grpcapi.UserServer{Store: s},
		apiKeys:   &grpcapi.ApiKeyServer{Store: s},
		embedders: &grpcapi.EmbedderServer{Store: s},
		spaces:    &grpcapi.SpaceServer{Store: s},
		memories:  &grpcapi.MemoryServer{Store: s},
	}
}

// seedUser provisions a user row directly, standing in for the external
// account provisioning the server itself does not expose.
func (e *testEnv) seedUser(t *testing.T, email string) uuid.UUID {
	t.Helper()
	conn, err := pgx.Connect(e.ctx, e.dbURL)
	require.NoError(t, err)
	defer conn.Close(e.ctx)

	id := uuid.New()
	_, err = conn.Exec(e.ctx,
		"INSERT INTO users (user_id, email, display_name, username) VALUES ($1::uuid, $2, $3, $4)",
		id.String(), email, "Test User", email)
	require.NoError(t, err)
	return id
}

// as returns a request context carrying a principal with the given roles.
// Handlers authorize on the principal alone, so no role rows are needed.
func (e *testEnv) as(id uuid.UUID, email string, roles ...store.RoleName) context.Context {
	p := security.NewPrincipal(store.User{ID: id, Email: email, Roles: roles})
	return security.WithPrincipal(e.ctx, p)
}

// bootstrap runs InitializeSystem and returns the root's id and context.
func (e *testEnv) bootstrap(t *testing.T) (uuid.UUID, context.Context) {
	t.Helper()
	resp, err := e.system.InitializeSystem(e.ctx, &pb.InitializeSystemRequest{})
	require.NoError(t, err)
	require.False(t, resp.GetAlreadyInitialized())
	rootID, err := ident.FromBytes(resp.GetUserId())
	require.NoError(t, err)
	return rootID, e.as(rootID, "root@goodmem.ai", store.RoleRoot)
}

func requireStatusCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a gRPC status, got %v", err)
	require.Equal(t, want, st.Code(), "status: %v", st.Message())
}

func TestInitializeSystem(t *testing.T) {
	env := setupEnv(t)

	resp, err := env.system.InitializeSystem(env.ctx, &pb.InitializeSystemRequest{})
	require.NoError(t, err)
	assert.False(t, resp.GetAlreadyInitialized())
	assert.True(t, apikey.ValidFormat(resp.GetRootApiKey()))
	assert.Len(t, resp.GetUserId(), 16)
	assert.NotEmpty(t, resp.GetMessage())

	// The returned key authenticates as the root user.
	lookup, err := env.store.GetApiKeyForAuth(env.ctx, apikey.HashRaw(resp.GetRootApiKey()))
	require.NoError(t, err)
	assert.Equal(t, "root@goodmem.ai", lookup.User.Email)
	assert.Equal(t, "System Root User", lookup.User.DisplayName)
	assert.Equal(t, "root", lookup.User.Username)
	assert.Equal(t, []store.RoleName{store.RoleRoot}, lookup.User.Roles)

	// Idempotent: the second call reports the state and leaks no material.
	again, err := env.system.InitializeSystem(env.ctx, &pb.InitializeSystemRequest{})
	require.NoError(t, err)
	assert.True(t, again.GetAlreadyInitialized())
	assert.Equal(t, "System is already initialized", again.GetMessage())
	assert.Empty(t, again.GetRootApiKey())
	assert.Empty(t, again.GetUserId())
}

func TestGetUserSelf(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)

	// Empty request returns the caller.
	u, err := env.users.GetUser(ctx, &pb.GetUserRequest{})
	require.NoError(t, err)
	assert.Equal(t, ident.ToBytes(userID), u.GetUserId())
	assert.Equal(t, "alice@example.com", u.GetEmail())
	assert.NotNil(t, u.GetCreatedAt())

	// Lookup by own id and by own email both work.
	u, err = env.users.GetUser(ctx, &pb.GetUserRequest{UserId: ident.ToBytes(userID)})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.GetEmail())

	u, err = env.users.GetUser(ctx, &pb.GetUserRequest{Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, ident.ToBytes(userID), u.GetUserId())

	// Emails match byte-exact: a case variant names someone else.
	_, err = env.users.GetUser(ctx, &pb.GetUserRequest{Email: "ALICE@example.com"})
	requireStatusCode(t, err, codes.PermissionDenied)
}

func TestGetUserIdWinsOverEmail(t *testing.T) {
	env := setupEnv(t)
	rootID, rootCtx := env.bootstrap(t)
	otherID := env.seedUser(t, "bob@example.com")

	// Both set: the id is used and the (mismatching) email is ignored.
	u, err := env.users.GetUser(rootCtx, &pb.GetUserRequest{
		UserId: ident.ToBytes(otherID),
		Email:  "root@goodmem.ai",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", u.GetEmail())

	u, err = env.users.GetUser(rootCtx, &pb.GetUserRequest{UserId: ident.ToBytes(rootID)})
	require.NoError(t, err)
	assert.Equal(t, "root@goodmem.ai", u.GetEmail())
}

func TestGetUserScope(t *testing.T) {
	env := setupEnv(t)
	aliceID := env.seedUser(t, "alice@example.com")
	bobID := env.seedUser(t, "bob@example.com")
	aliceCtx := env.as(aliceID, "alice@example.com", store.RoleUser)

	// A plain user may not look up anyone else, by id or email.
	_, err := env.users.GetUser(aliceCtx, &pb.GetUserRequest{UserId: ident.ToBytes(bobID)})
	requireStatusCode(t, err, codes.PermissionDenied)
	_, err = env.users.GetUser(aliceCtx, &pb.GetUserRequest{Email: "bob@example.com"})
	requireStatusCode(t, err, codes.PermissionDenied)

	// Root can.
	_, rootCtx := env.bootstrap(t)
	u, err := env.users.GetUser(rootCtx, &pb.GetUserRequest{Email: "bob@example.com"})
	require.NoError(t, err)
	assert.Equal(t, ident.ToBytes(bobID), u.GetUserId())

	// Unknown target is NotFound for a caller allowed to ask.
	_, err = env.users.GetUser(rootCtx, &pb.GetUserRequest{Email: "nobody@example.com"})
	requireStatusCode(t, err, codes.NotFound)

	// Malformed id bytes.
	_, err = env.users.GetUser(rootCtx, &pb.GetUserRequest{UserId: []byte{1, 2, 3}})
	requireStatusCode(t, err, codes.InvalidArgument)
}

func TestRequestsWithoutPrincipal(t *testing.T) {
	env := setupEnv(t)

	_, err := env.users.GetUser(env.ctx, &pb.GetUserRequest{})
	requireStatusCode(t, err, codes.Unauthenticated)
	_, err = env.spaces.ListSpaces(env.ctx, &pb.ListSpacesRequest{})
	requireStatusCode(t, err, codes.Unauthenticated)
	_, err = env.apiKeys.ListApiKeys(env.ctx, &pb.ListApiKeysRequest{})
	requireStatusCode(t, err, codes.Unauthenticated)
}
