package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/goodmem/goodmem/internal/config"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/goodmem/goodmem/internal/store/postgres"
	"github.com/goodmem/goodmem/internal/testutil/testpg"
)

// 32-byte hex key so embedder credentials are sealed in these tests.
const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

type testEnv struct {
	store store.Store
	ctx   context.Context
	dbURL string
}

func setupTestStore(t *testing.T) *testEnv {
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

	return &testEnv{store: s, ctx: ctx, dbURL: dbURL}
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

func (e *testEnv) seedEmbedder(t *testing.T, owner uuid.UUID, name string, dim int) *store.Embedder {
	t.Helper()
	emb, err := e.store.CreateEmbedder(e.ctx, &store.Embedder{
		DisplayName:         name,
		ProviderType:        store.ProviderOpenAI,
		EndpointURL:         "https://api.openai.com",
		ApiPath:             "/v1/embeddings",
		ModelIdentifier:     "text-embedding-3-small",
		Dimensionality:      dim,
		SupportedModalities: []store.Modality{store.ModalityText},
		Credentials:         "sk-test-credentials",
		OwnerID:             owner,
		CreatedByID:         owner,
		UpdatedByID:         owner,
	})
	require.NoError(t, err)
	return emb
}

func (e *testEnv) seedSpace(t *testing.T, owner, embedderID uuid.UUID, name string, public bool) *store.Space {
	t.Helper()
	sp, err := e.store.CreateSpace(e.ctx, &store.Space{
		Name:        name,
		EmbedderID:  embedderID,
		OwnerID:     owner,
		PublicRead:  public,
		CreatedByID: owner,
		UpdatedByID: owner,
	})
	require.NoError(t, err)
	return sp
}

func newBootstrap(t *testing.T) (store.RootBootstrap, apikey.Material) {
	t.Helper()
	mat, err := apikey.New()
	require.NoError(t, err)
	return store.RootBootstrap{
		Email:       "root@goodmem.ai",
		DisplayName: "System Root User",
		Username:    "root",
		KeyPrefix:   mat.Prefix,
		KeyHash:     mat.Hash,
	}, mat
}

func TestInitializeRoot(t *testing.T) {
	env := setupTestStore(t)

	boot, mat := newBootstrap(t)
	user, key, created, err := env.store.InitializeRoot(env.ctx, boot)
	require.NoError(t, err)
	require.True(t, created)
	require.NotNil(t, user)
	require.NotNil(t, key)
	assert.Equal(t, "root@goodmem.ai", user.Email)
	assert.Equal(t, "root", user.Username)
	assert.Equal(t, []store.RoleName{store.RoleRoot}, user.Roles)
	assert.Equal(t, mat.Prefix, key.KeyPrefix)
	assert.Equal(t, store.ApiKeyActive, key.Status)

	// Second call is a no-op observing the existing root.
	boot2, _ := newBootstrap(t)
	user2, key2, created2, err := env.store.InitializeRoot(env.ctx, boot2)
	require.NoError(t, err)
	assert.False(t, created2)
	assert.Nil(t, user2)
	assert.Nil(t, key2)

	// The key authenticates.
	lookup, err := env.store.GetApiKeyForAuth(env.ctx, mat.Hash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, lookup.User.ID)
	assert.Equal(t, []store.RoleName{store.RoleRoot}, lookup.User.Roles)
}

func TestInitializeRootConcurrent(t *testing.T) {
	env := setupTestStore(t)

	const callers = 4
	type outcome struct {
		created bool
		err     error
	}
	results := make(chan outcome, callers)
	for i := 0; i < callers; i++ {
		go func() {
			boot, _ := newBootstrap(t)
			_, _, created, err := env.store.InitializeRoot(env.ctx, boot)
			results <- outcome{created: created, err: err}
		}()
	}

	wins := 0
	for i := 0; i < callers; i++ {
		r := <-results
		require.NoError(t, r.err)
		if r.created {
			wins++
		}
	}
	assert.Equal(t, 1, wins, "exactly one caller should create the root")
}

func TestGetUser(t *testing.T) {
	env := setupTestStore(t)

	id := env.seedUser(t, "alice@example.com")

	byID, err := env.store.GetUserByID(env.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Empty(t, byID.Roles)

	byEmail, err := env.store.GetUserByEmail(env.ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	_, err = env.store.GetUserByID(env.ctx, uuid.New())
	var nf *store.NotFoundError
	require.True(t, errors.As(err, &nf), "expected not found, got %T", err)

	_, err = env.store.GetUserByEmail(env.ctx, "nobody@example.com")
	require.True(t, errors.As(err, &nf))
}

func TestApiKeyLifecycle(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "keys@example.com")
	mat, err := apikey.New()
	require.NoError(t, err)

	created, err := env.store.CreateApiKey(env.ctx, &store.ApiKey{
		UserID:      owner,
		KeyPrefix:   mat.Prefix,
		HashedKey:   mat.Hash,
		Labels:      map[string]string{"env": "test"},
		CreatedByID: owner,
		UpdatedByID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, store.ApiKeyActive, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := env.store.GetApiKey(env.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, mat.Prefix, got.KeyPrefix)
	assert.Equal(t, map[string]string{"env": "test"}, got.Labels)

	keys, err := env.store.ListApiKeysByUser(env.ctx, owner)
	require.NoError(t, err)
	require.Len(t, keys, 1)

	// Deactivate and merge labels.
	inactive := store.ApiKeyInactive
	updated, err := env.store.UpdateApiKey(env.ctx, created.ID, store.ApiKeyUpdate{
		Status:      &inactive,
		Labels:      store.MergeLabels(map[string]string{"team": "core"}),
		UpdatedByID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, store.ApiKeyInactive, updated.Status)
	assert.Equal(t, map[string]string{"env": "test", "team": "core"}, updated.Labels)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))

	require.NoError(t, env.store.DeleteApiKey(env.ctx, created.ID))

	var nf *store.NotFoundError
	_, err = env.store.GetApiKey(env.ctx, created.ID)
	require.True(t, errors.As(err, &nf))
	err = env.store.DeleteApiKey(env.ctx, created.ID)
	require.True(t, errors.As(err, &nf))
}

func TestGetApiKeyForAuth(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "auth@example.com")
	mat, err := apikey.New()
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour).UTC()
	created, err := env.store.CreateApiKey(env.ctx, &store.ApiKey{
		UserID:      owner,
		KeyPrefix:   mat.Prefix,
		HashedKey:   mat.Hash,
		ExpiresAt:   &expires,
		CreatedByID: owner,
		UpdatedByID: owner,
	})
	require.NoError(t, err)

	lookup, err := env.store.GetApiKeyForAuth(env.ctx, mat.Hash)
	require.NoError(t, err)
	assert.Equal(t, created.ID, lookup.Key.ID)
	assert.Equal(t, store.ApiKeyActive, lookup.Key.Status)
	require.NotNil(t, lookup.Key.ExpiresAt)
	assert.WithinDuration(t, expires, *lookup.Key.ExpiresAt, time.Second)
	assert.Equal(t, owner, lookup.User.ID)
	assert.Equal(t, "auth@example.com", lookup.User.Email)
	assert.Empty(t, lookup.User.Roles)

	var nf *store.NotFoundError
	_, err = env.store.GetApiKeyForAuth(env.ctx, make([]byte, 32))
	require.True(t, errors.As(err, &nf))

	// last_used_at write is observable on the next lookup.
	used := time.Now().UTC()
	require.NoError(t, env.store.TouchApiKeyLastUsed(env.ctx, created.ID, used))
	lookup, err = env.store.GetApiKeyForAuth(env.ctx, mat.Hash)
	require.NoError(t, err)
	require.NotNil(t, lookup.Key.LastUsedAt)
	assert.WithinDuration(t, used, *lookup.Key.LastUsedAt, time.Second)

	// Touching a deleted key is not an error.
	require.NoError(t, env.store.DeleteApiKey(env.ctx, created.ID))
	require.NoError(t, env.store.TouchApiKeyLastUsed(env.ctx, created.ID, time.Now()))
}

func TestEmbedderLifecycle(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "emb@example.com")
	emb := env.seedEmbedder(t, owner, "openai-small", 1536)
	assert.Equal(t, "sk-test-credentials", emb.Credentials)

	// Credentials are sealed at rest.
	conn, err := pgx.Connect(env.ctx, env.dbURL)
	require.NoError(t, err)
	defer conn.Close(env.ctx)
	var raw []byte
	err = conn.QueryRow(env.ctx,
		"SELECT credentials FROM embedders WHERE embedder_id = $1::uuid", emb.ID.String()).Scan(&raw)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("sk-test-credentials"), raw)

	got, err := env.store.GetEmbedder(env.ctx, emb.ID)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-credentials", got.Credentials)
	assert.Equal(t, []store.Modality{store.ModalityText}, got.SupportedModalities)

	// Duplicate display name for same owner conflicts.
	_, err = env.store.CreateEmbedder(env.ctx, &store.Embedder{
		DisplayName:     "openai-small",
		ProviderType:    store.ProviderVLLM,
		EndpointURL:     "http://vllm:8000",
		ApiPath:         "/v1/embeddings",
		ModelIdentifier: "bge-m3",
		Dimensionality:  1024,
		Credentials:     "none",
		OwnerID:         owner,
		CreatedByID:     owner,
		UpdatedByID:     owner,
	})
	var conflict *store.ConflictError
	require.True(t, errors.As(err, &conflict), "expected conflict, got %T", err)

	// Same name under a different owner is fine.
	other := env.seedUser(t, "emb2@example.com")
	env.seedEmbedder(t, other, "openai-small", 1536)

	newName := "openai-large"
	newCreds := "sk-rotated"
	updated, err := env.store.UpdateEmbedder(env.ctx, emb.ID, store.EmbedderUpdate{
		DisplayName: &newName,
		Credentials: &newCreds,
		Modalities:  []store.Modality{store.ModalityText, store.ModalityImage},
		Labels:      store.ReplaceLabels(map[string]string{"tier": "prod"}),
		UpdatedByID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "openai-large", updated.DisplayName)
	assert.Equal(t, "sk-rotated", updated.Credentials)
	assert.Equal(t, []store.Modality{store.ModalityText, store.ModalityImage}, updated.SupportedModalities)
	assert.Equal(t, map[string]string{"tier": "prod"}, updated.Labels)
	assert.Equal(t, store.ProviderOpenAI, updated.ProviderType)

	require.NoError(t, env.store.DeleteEmbedder(env.ctx, emb.ID))
	var nf *store.NotFoundError
	_, err = env.store.GetEmbedder(env.ctx, emb.ID)
	require.True(t, errors.As(err, &nf))
}

func TestListEmbeddersFiltersAndOmitsCredentials(t *testing.T) {
	env := setupTestStore(t)

	alice := env.seedUser(t, "alice@example.com")
	bob := env.seedUser(t, "bob@example.com")

	env.seedEmbedder(t, alice, "alice-openai", 1536)
	vllm, err := env.store.CreateEmbedder(env.ctx, &store.Embedder{
		DisplayName:     "alice-vllm",
		ProviderType:    store.ProviderVLLM,
		EndpointURL:     "http://vllm:8000",
		ApiPath:         "/v1/embeddings",
		ModelIdentifier: "bge-m3",
		Dimensionality:  1024,
		Credentials:     "none",
		Labels:          map[string]string{"tier": "prod", "region": "eu"},
		OwnerID:         alice,
		CreatedByID:     alice,
		UpdatedByID:     alice,
	})
	require.NoError(t, err)
	env.seedEmbedder(t, bob, "bob-openai", 1536)

	all, err := env.store.ListEmbedders(env.ctx, store.EmbedderQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.Empty(t, e.Credentials)
	}

	mine, err := env.store.ListEmbedders(env.ctx, store.EmbedderQuery{OwnerID: &alice})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	pt := store.ProviderVLLM
	byProvider, err := env.store.ListEmbedders(env.ctx, store.EmbedderQuery{ProviderType: &pt})
	require.NoError(t, err)
	require.Len(t, byProvider, 1)
	assert.Equal(t, vllm.ID, byProvider[0].ID)

	byLabels, err := env.store.ListEmbedders(env.ctx, store.EmbedderQuery{
		LabelSelectors: map[string]string{"tier": "prod"},
	})
	require.NoError(t, err)
	require.Len(t, byLabels, 1)
	assert.Equal(t, vllm.ID, byLabels[0].ID)

	none, err := env.store.ListEmbedders(env.ctx, store.EmbedderQuery{
		LabelSelectors: map[string]string{"tier": "prod", "region": "us"},
	})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDeleteEmbedderInUse(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "inuse@example.com")
	emb := env.seedEmbedder(t, owner, "shared", 8)
	env.seedSpace(t, owner, emb.ID, "uses-embedder", false)

	err := env.store.DeleteEmbedder(env.ctx, emb.ID)
	var pre *store.PreconditionError
	require.True(t, errors.As(err, &pre), "expected precondition error, got %T", err)
}

func TestSpaceLifecycle(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "spaces@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 8)

	sp := env.seedSpace(t, owner, emb.ID, "notes", false)
	assert.False(t, sp.PublicRead)

	// Referencing a missing embedder is NotFound.
	var nf *store.NotFoundError
	_, err := env.store.CreateSpace(env.ctx, &store.Space{
		Name:        "bad-embedder",
		EmbedderID:  uuid.New(),
		OwnerID:     owner,
		CreatedByID: owner,
		UpdatedByID: owner,
	})
	require.True(t, errors.As(err, &nf))

	// Duplicate (owner, name) conflicts; another owner may reuse the name.
	var conflict *store.ConflictError
	_, err = env.store.CreateSpace(env.ctx, &store.Space{
		Name: "notes", EmbedderID: emb.ID, OwnerID: owner, CreatedByID: owner, UpdatedByID: owner,
	})
	require.True(t, errors.As(err, &conflict))
	other := env.seedUser(t, "other@example.com")
	env.seedSpace(t, other, emb.ID, "notes", false)

	got, err := env.store.GetSpace(env.ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, "notes", got.Name)
	assert.Equal(t, emb.ID, got.EmbedderID)

	public := true
	newName := "notes-v2"
	updated, err := env.store.UpdateSpace(env.ctx, sp.ID, store.SpaceUpdate{
		Name:        &newName,
		PublicRead:  &public,
		Labels:      store.MergeLabels(map[string]string{"project": "demo"}),
		UpdatedByID: owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "notes-v2", updated.Name)
	assert.True(t, updated.PublicRead)
	assert.Equal(t, map[string]string{"project": "demo"}, updated.Labels)
	assert.Equal(t, emb.ID, updated.EmbedderID)

	// Renaming onto an existing (owner, name) pair conflicts.
	env.seedSpace(t, owner, emb.ID, "taken", false)
	taken := "taken"
	_, err = env.store.UpdateSpace(env.ctx, sp.ID, store.SpaceUpdate{Name: &taken, UpdatedByID: owner})
	require.True(t, errors.As(err, &conflict))

	require.NoError(t, env.store.DeleteSpace(env.ctx, sp.ID))
	_, err = env.store.GetSpace(env.ctx, sp.ID)
	require.True(t, errors.As(err, &nf))
	err = env.store.DeleteSpace(env.ctx, sp.ID)
	require.True(t, errors.As(err, &nf))
}

func TestQuerySpacesVisibilityAndFilters(t *testing.T) {
	env := setupTestStore(t)

	alice := env.seedUser(t, "alice@example.com")
	bob := env.seedUser(t, "bob@example.com")
	emb := env.seedEmbedder(t, alice, "emb", 8)

	alicePrivate := env.seedSpace(t, alice, emb.ID, "alice-private", false)
	alicePublic := env.seedSpace(t, alice, emb.ID, "alice-public", true)
	bobPrivate := env.seedSpace(t, bob, emb.ID, "bob-private", false)

	// Bob sees his own spaces plus public ones.
	page, err := env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   bob,
		IncludePublic: true,
		SortBy:        store.SortByName,
		SortAscending: true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.TotalCount)
	assert.Equal(t, alicePublic.ID, page.Spaces[0].ID)
	assert.Equal(t, bobPrivate.ID, page.Spaces[1].ID)

	// Owner filter narrows within the visible set.
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   bob,
		IncludePublic: true,
		OwnerFilter:   &alice,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, alicePublic.ID, page.Spaces[0].ID)

	// Unrestricted bypasses visibility.
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:  bob,
		Unrestricted: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalCount)

	// Label subset match.
	_, err = env.store.UpdateSpace(env.ctx, alicePrivate.ID, store.SpaceUpdate{
		Labels:      store.ReplaceLabels(map[string]string{"team": "core", "env": "prod"}),
		UpdatedByID: alice,
	})
	require.NoError(t, err)
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:    alice,
		IncludePublic:  true,
		LabelSelectors: map[string]string{"team": "core"},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
	assert.Equal(t, alicePrivate.ID, page.Spaces[0].ID)

	// Name LIKE pattern (glob translated at the edge).
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   alice,
		IncludePublic: true,
		NameLike:      store.GlobToLike("alice-*"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.TotalCount)
}

func TestQuerySpacesSortAndPaging(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "pager@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 8)

	names := []string{"charlie", "alpha", "echo", "bravo", "delta"}
	for _, name := range names {
		env.seedSpace(t, owner, emb.ID, name, false)
		time.Sleep(10 * time.Millisecond) // ensure distinct created_at ordering
	}

	page, err := env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   owner,
		SortBy:        store.SortByName,
		SortAscending: true,
		PageSize:      2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalCount)
	require.Len(t, page.Spaces, 2)
	assert.Equal(t, "alpha", page.Spaces[0].Name)
	assert.Equal(t, "bravo", page.Spaces[1].Name)

	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   owner,
		SortBy:        store.SortByName,
		SortAscending: true,
		PageSize:      2,
		Offset:        4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalCount)
	require.Len(t, page.Spaces, 1)
	assert.Equal(t, "echo", page.Spaces[0].Name)

	// Descending by name.
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID: owner,
		SortBy:      store.SortByName,
		PageSize:    1,
	})
	require.NoError(t, err)
	require.Len(t, page.Spaces, 1)
	assert.Equal(t, "echo", page.Spaces[0].Name)

	// created_at ascending follows insertion order.
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   owner,
		SortBy:        store.SortByCreatedAt,
		SortAscending: true,
	})
	require.NoError(t, err)
	require.Len(t, page.Spaces, 5)
	for i, name := range names {
		assert.Equal(t, name, page.Spaces[i].Name)
	}

	// An unknown sort column falls back to created_at instead of erroring.
	page, err = env.store.QuerySpaces(env.ctx, store.SpaceQuery{
		RequestorID:   owner,
		SortBy:        "name; DROP TABLE spaces",
		SortAscending: true,
	})
	require.NoError(t, err)
	require.Len(t, page.Spaces, 5)
	assert.Equal(t, "charlie", page.Spaces[0].Name)
}

func TestMemoryLifecycle(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "mem@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 3)
	sp := env.seedSpace(t, owner, emb.ID, "mem-space", false)

	mem, err := env.store.CreateMemory(env.ctx, &store.Memory{
		SpaceID:            sp.ID,
		OriginalContentRef: "s3://bucket/object",
		ContentType:        "text/plain",
		Metadata:           map[string]string{"source": "upload"},
		CreatedByID:        owner,
		UpdatedByID:        owner,
	})
	require.NoError(t, err)
	assert.Equal(t, store.ProcessingPending, mem.ProcessingStatus)

	var nf *store.NotFoundError
	_, err = env.store.CreateMemory(env.ctx, &store.Memory{
		SpaceID:     uuid.New(),
		CreatedByID: owner,
		UpdatedByID: owner,
	})
	require.True(t, errors.As(err, &nf))

	got, err := env.store.GetMemory(env.ctx, mem.ID)
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/object", got.OriginalContentRef)
	assert.Equal(t, map[string]string{"source": "upload"}, got.Metadata)

	list, err := env.store.ListMemories(env.ctx, sp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, env.store.DeleteMemory(env.ctx, mem.ID))
	_, err = env.store.GetMemory(env.ctx, mem.ID)
	require.True(t, errors.As(err, &nf))
}

func TestProcessingStatusTransitions(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "worker@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 3)
	sp := env.seedSpace(t, owner, emb.ID, "worker-space", false)
	mem, err := env.store.CreateMemory(env.ctx, &store.Memory{
		SpaceID: sp.ID, CreatedByID: owner, UpdatedByID: owner,
	})
	require.NoError(t, err)

	// Skipping PROCESSING is not a legal edge.
	err = env.store.SetMemoryProcessingStatus(env.ctx, mem.ID, store.ProcessingPending, store.ProcessingCompleted)
	var val *store.ValidationError
	require.True(t, errors.As(err, &val), "expected validation error, got %T", err)

	require.NoError(t, env.store.SetMemoryProcessingStatus(env.ctx, mem.ID, store.ProcessingPending, store.ProcessingProcessing))

	// Re-running the same transition fails: the row is no longer PENDING.
	err = env.store.SetMemoryProcessingStatus(env.ctx, mem.ID, store.ProcessingPending, store.ProcessingProcessing)
	var pre *store.PreconditionError
	require.True(t, errors.As(err, &pre), "expected precondition error, got %T", err)

	require.NoError(t, env.store.SetMemoryProcessingStatus(env.ctx, mem.ID, store.ProcessingProcessing, store.ProcessingCompleted))
	got, err := env.store.GetMemory(env.ctx, mem.ID)
	require.NoError(t, err)
	assert.Equal(t, store.ProcessingCompleted, got.ProcessingStatus)

	var nf *store.NotFoundError
	err = env.store.SetMemoryProcessingStatus(env.ctx, uuid.New(), store.ProcessingPending, store.ProcessingProcessing)
	require.True(t, errors.As(err, &nf))
}

func seqUUID(n byte) uuid.UUID {
	var b [16]byte
	b[15] = n
	return uuid.UUID(b)
}

func TestChunksAndNearestSearch(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "vec@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 3)
	sp := env.seedSpace(t, owner, emb.ID, "vec-space", false)
	mem, err := env.store.CreateMemory(env.ctx, &store.Memory{
		SpaceID: sp.ID, CreatedByID: owner, UpdatedByID: owner,
	})
	require.NoError(t, err)

	chunks, err := env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
		{ID: seqUUID(1), MemoryID: mem.ID, SequenceNumber: 0, ChunkText: "east", Embedding: []float32{1, 0, 0}, VectorStatus: store.VectorGenerated},
		{ID: seqUUID(2), MemoryID: mem.ID, SequenceNumber: 1, ChunkText: "north", Embedding: []float32{0, 1, 0}, VectorStatus: store.VectorGenerated},
		{ID: seqUUID(3), MemoryID: mem.ID, SequenceNumber: 2, ChunkText: "up", Embedding: []float32{0, 0, 1}, VectorStatus: store.VectorGenerated},
		{ID: seqUUID(4), MemoryID: mem.ID, SequenceNumber: 3, ChunkText: "pending"},
	})
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	assert.Equal(t, store.VectorPending, chunks[3].VectorStatus)

	// GENERATED without a vector is rejected.
	_, err = env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
		{MemoryID: mem.ID, SequenceNumber: 9, VectorStatus: store.VectorGenerated},
	})
	var val *store.ValidationError
	require.True(t, errors.As(err, &val), "expected validation error, got %T", err)

	// Vector width must match the space's embedder dimensionality.
	_, err = env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
		{MemoryID: mem.ID, SequenceNumber: 9, ChunkText: "wide", Embedding: []float32{1, 0, 0, 0}, VectorStatus: store.VectorGenerated},
	})
	require.True(t, errors.As(err, &val), "expected validation error, got %T", err)

	// Duplicate sequence number conflicts.
	_, err = env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
		{MemoryID: mem.ID, SequenceNumber: 0, ChunkText: "dup"},
	})
	var conflict *store.ConflictError
	require.True(t, errors.As(err, &conflict), "expected conflict, got %T", err)

	// Nearest to [1,0,0]: exact match first, then the two equidistant
	// chunks ordered by chunk id. The PENDING chunk never appears.
	got, err := env.store.NearestChunks(env.ctx, sp.ID, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "east", got[0].ChunkText)
	assert.Equal(t, seqUUID(2), got[1].ID)
	assert.Equal(t, seqUUID(3), got[2].ID)
	assert.Equal(t, []float32{1, 0, 0}, got[0].Embedding)

	// k bounds the result.
	got, err = env.store.NearestChunks(env.ctx, sp.ID, []float32{0, 1, 0}, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "north", got[0].ChunkText)

	// Chunks in other spaces are invisible.
	got, err = env.store.NearestChunks(env.ctx, uuid.New(), []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSetChunkEmbedding(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "late@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 3)
	sp := env.seedSpace(t, owner, emb.ID, "late-space", false)
	mem, err := env.store.CreateMemory(env.ctx, &store.Memory{
		SpaceID: sp.ID, CreatedByID: owner, UpdatedByID: owner,
	})
	require.NoError(t, err)

	chunks, err := env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
		{MemoryID: mem.ID, SequenceNumber: 0, ChunkText: "later"},
	})
	require.NoError(t, err)
	chunk := chunks[0]

	// Not searchable while PENDING.
	got, err := env.store.NearestChunks(env.ctx, sp.ID, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	err = env.store.SetChunkEmbedding(env.ctx, chunk.ID, nil, store.VectorGenerated)
	var val *store.ValidationError
	require.True(t, errors.As(err, &val))

	err = env.store.SetChunkEmbedding(env.ctx, chunk.ID, []float32{1, 0}, store.VectorGenerated)
	require.True(t, errors.As(err, &val), "expected validation error, got %T", err)

	require.NoError(t, env.store.SetChunkEmbedding(env.ctx, chunk.ID, []float32{0.5, 0.5, 0}, store.VectorGenerated))
	got, err = env.store.NearestChunks(env.ctx, sp.ID, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []float32{0.5, 0.5, 0}, got[0].Embedding)

	// Marking FAILED clears the vector and removes it from search.
	require.NoError(t, env.store.SetChunkEmbedding(env.ctx, chunk.ID, nil, store.VectorFailed))
	got, err = env.store.NearestChunks(env.ctx, sp.ID, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	var nf *store.NotFoundError
	err = env.store.SetChunkEmbedding(env.ctx, uuid.New(), []float32{1, 0, 0}, store.VectorGenerated)
	require.True(t, errors.As(err, &nf))
}

func TestCascadeDeletes(t *testing.T) {
	env := setupTestStore(t)

	owner := env.seedUser(t, "cascade@example.com")
	emb := env.seedEmbedder(t, owner, "emb", 3)
	sp := env.seedSpace(t, owner, emb.ID, "cascade-space", false)

	var memories []*store.Memory
	for i := 0; i < 2; i++ {
		mem, err := env.store.CreateMemory(env.ctx, &store.Memory{
			SpaceID: sp.ID, CreatedByID: owner, UpdatedByID: owner,
		})
		require.NoError(t, err)
		_, err = env.store.CreateMemoryChunks(env.ctx, []store.MemoryChunk{
			{MemoryID: mem.ID, SequenceNumber: 0, ChunkText: "a", Embedding: []float32{1, 0, 0}, VectorStatus: store.VectorGenerated},
			{MemoryID: mem.ID, SequenceNumber: 1, ChunkText: "b", Embedding: []float32{0, 1, 0}, VectorStatus: store.VectorGenerated},
		})
		require.NoError(t, err)
		memories = append(memories, mem)
	}

	// Deleting one memory drops only its chunks.
	require.NoError(t, env.store.DeleteMemory(env.ctx, memories[0].ID))
	got, err := env.store.NearestChunks(env.ctx, sp.ID, []float32{1, 0, 0}, 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Deleting the space drops everything beneath it.
	require.NoError(t, env.store.DeleteSpace(env.ctx, sp.ID))
	var nf *store.NotFoundError
	_, err = env.store.GetMemory(env.ctx, memories[1].ID)
	require.True(t, errors.As(err, &nf))

	conn, err := pgx.Connect(env.ctx, env.dbURL)
	require.NoError(t, err)
	defer conn.Close(env.ctx)
	var remaining int
	require.NoError(t, conn.QueryRow(env.ctx, "SELECT count(*) FROM memory_chunks").Scan(&remaining))
	assert.Zero(t, remaining)
}
