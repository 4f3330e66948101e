package grpcapi_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/store"
)

// seedEmbedder creates an embedder through the service as the given user.
func seedEmbedderFor(t *testing.T, env *testEnv, userID uuid.UUID, email string) []byte {
	t.Helper()
	ctx := env.as(userID, email, store.RoleUser)
	e, err := env.embedders.CreateEmbedder(ctx, validCreateEmbedder("embedder-"+email))
	require.NoError(t, err)
	return e.GetEmbedderId()
}

func TestCreateSpace(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	sp, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
		Name:       "project-x",
		EmbedderId: embedderID,
		Labels:     map[string]string{"env": "dev"},
	})
	require.NoError(t, err)
	assert.Equal(t, "project-x", sp.GetName())
	assert.Equal(t, ident.ToBytes(userID), sp.GetOwnerId())
	assert.Equal(t, embedderID, sp.GetEmbedderId())
	assert.False(t, sp.GetPublicRead())
	assert.Equal(t, map[string]string{"env": "dev"}, sp.GetLabels())

	// Duplicate (owner, name).
	_, err = env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: "project-x", EmbedderId: embedderID})
	requireStatusCode(t, err, codes.AlreadyExists)

	// Unknown embedder.
	_, err = env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
		Name:       "project-y",
		EmbedderId: ident.ToBytes(uuid.New()),
	})
	requireStatusCode(t, err, codes.NotFound)

	// Name bounds.
	_, err = env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: "", EmbedderId: embedderID})
	requireStatusCode(t, err, codes.InvalidArgument)
	_, err = env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
		Name:       strings.Repeat("x", 256),
		EmbedderId: embedderID,
	})
	requireStatusCode(t, err, codes.InvalidArgument)
}

func TestGetSpaceVisibility(t *testing.T) {
	env := setupEnv(t)
	aliceID := env.seedUser(t, "alice@example.com")
	bobID := env.seedUser(t, "bob@example.com")
	aliceCtx := env.as(aliceID, "alice@example.com", store.RoleUser)
	bobCtx := env.as(bobID, "bob@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, aliceID, "alice@example.com")

	private, err := env.spaces.CreateSpace(aliceCtx, &pb.CreateSpaceRequest{Name: "private", EmbedderId: embedderID})
	require.NoError(t, err)
	public, err := env.spaces.CreateSpace(aliceCtx, &pb.CreateSpaceRequest{
		Name:       "public",
		EmbedderId: embedderID,
		PublicRead: true,
	})
	require.NoError(t, err)

	// Owner reads both.
	_, err = env.spaces.GetSpace(aliceCtx, &pb.GetSpaceRequest{SpaceId: private.GetSpaceId()})
	require.NoError(t, err)

	// A stranger gets NotFound for the private space, not PermissionDenied:
	// existence is not disclosed.
	_, err = env.spaces.GetSpace(bobCtx, &pb.GetSpaceRequest{SpaceId: private.GetSpaceId()})
	requireStatusCode(t, err, codes.NotFound)

	// public_read makes it readable by anyone.
	got, err := env.spaces.GetSpace(bobCtx, &pb.GetSpaceRequest{SpaceId: public.GetSpaceId()})
	require.NoError(t, err)
	assert.Equal(t, "public", got.GetName())

	// Root sees everything.
	_, rootCtx := env.bootstrap(t)
	_, err = env.spaces.GetSpace(rootCtx, &pb.GetSpaceRequest{SpaceId: private.GetSpaceId()})
	require.NoError(t, err)
}

func TestUpdateSpace(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	sp, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
		Name:       "s1",
		EmbedderId: embedderID,
		Labels:     map[string]string{"a": "1", "b": "2"},
	})
	require.NoError(t, err)
	_, err = env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: "s2", EmbedderId: embedderID})
	require.NoError(t, err)

	newName := "s1-renamed"
	public := true
	updated, err := env.spaces.UpdateSpace(ctx, &pb.UpdateSpaceRequest{
		SpaceId:    sp.GetSpaceId(),
		Name:       &newName,
		PublicRead: &public,
		LabelUpdateStrategy: &pb.UpdateSpaceRequest_MergeLabels{
			MergeLabels: &pb.StringMap{Labels: map[string]string{"b": "3", "c": "4"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "s1-renamed", updated.GetName())
	assert.True(t, updated.GetPublicRead())
	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, updated.GetLabels())

	// Renaming onto an existing name conflicts.
	taken := "s2"
	_, err = env.spaces.UpdateSpace(ctx, &pb.UpdateSpaceRequest{SpaceId: sp.GetSpaceId(), Name: &taken})
	requireStatusCode(t, err, codes.AlreadyExists)

	// Strangers may not update at all.
	bobID := env.seedUser(t, "bob@example.com")
	_, err = env.spaces.UpdateSpace(env.as(bobID, "bob@example.com", store.RoleUser),
		&pb.UpdateSpaceRequest{SpaceId: sp.GetSpaceId(), Name: &newName})
	requireStatusCode(t, err, codes.PermissionDenied)
}

func TestDeleteSpaceCascades(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	sp, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: "s1", EmbedderId: embedderID})
	require.NoError(t, err)
	mem, err := env.memories.CreateMemory(ctx, &pb.CreateMemoryRequest{
		SpaceId:            sp.GetSpaceId(),
		OriginalContentRef: "s3://bucket/doc.txt",
		ContentType:        "text/plain",
	})
	require.NoError(t, err)

	_, err = env.spaces.DeleteSpace(ctx, &pb.DeleteSpaceRequest{SpaceId: sp.GetSpaceId()})
	require.NoError(t, err)

	_, err = env.spaces.GetSpace(ctx, &pb.GetSpaceRequest{SpaceId: sp.GetSpaceId()})
	requireStatusCode(t, err, codes.NotFound)
	_, err = env.memories.GetMemory(ctx, &pb.GetMemoryRequest{MemoryId: mem.GetMemoryId()})
	requireStatusCode(t, err, codes.NotFound)
}

func TestListSpacesVisibilityAndFilters(t *testing.T) {
	env := setupEnv(t)
	aliceID := env.seedUser(t, "alice@example.com")
	bobID := env.seedUser(t, "bob@example.com")
	aliceCtx := env.as(aliceID, "alice@example.com", store.RoleUser)
	bobCtx := env.as(bobID, "bob@example.com", store.RoleUser)
	aliceEmb := seedEmbedderFor(t, env, aliceID, "alice@example.com")
	bobEmb := seedEmbedderFor(t, env, bobID, "bob@example.com")

	_, err := env.spaces.CreateSpace(aliceCtx, &pb.CreateSpaceRequest{
		Name: "alice-private", EmbedderId: aliceEmb, Labels: map[string]string{"team": "red"},
	})
	require.NoError(t, err)
	_, err = env.spaces.CreateSpace(aliceCtx, &pb.CreateSpaceRequest{
		Name: "alice-public", EmbedderId: aliceEmb, PublicRead: true,
	})
	require.NoError(t, err)
	_, err = env.spaces.CreateSpace(bobCtx, &pb.CreateSpaceRequest{Name: "bob-private", EmbedderId: bobEmb})
	require.NoError(t, err)

	names := func(resp *pb.ListSpacesResponse) []string {
		out := make([]string, 0, len(resp.GetSpaces()))
		for _, s := range resp.GetSpaces() {
			out = append(out, s.GetName())
		}
		return out
	}

	// Bob sees his own spaces plus anything public.
	resp, err := env.spaces.ListSpaces(bobCtx, &pb.ListSpacesRequest{SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-public", "bob-private"}, names(resp))
	assert.Empty(t, resp.GetNextToken())

	// Owner filter on another user narrows to that user's public spaces.
	resp, err = env.spaces.ListSpaces(bobCtx, &pb.ListSpacesRequest{OwnerId: ident.ToBytes(aliceID)})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-public"}, names(resp))

	// Label selectors and name globs apply on top of visibility.
	resp, err = env.spaces.ListSpaces(aliceCtx, &pb.ListSpacesRequest{
		LabelSelectors: map[string]string{"team": "red"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-private"}, names(resp))

	resp, err = env.spaces.ListSpaces(aliceCtx, &pb.ListSpacesRequest{NameFilter: "alice-*", SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-private", "alice-public"}, names(resp))

	// Root enumerates everything.
	_, rootCtx := env.bootstrap(t)
	resp, err = env.spaces.ListSpaces(rootCtx, &pb.ListSpacesRequest{SortBy: "name"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alice-private", "alice-public", "bob-private"}, names(resp))
}

func TestListSpacesPagination(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	for i := 0; i < 7; i++ {
		_, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
			Name:       fmt.Sprintf("space-%02d", i),
			EmbedderId: embedderID,
		})
		require.NoError(t, err)
	}

	// First page sets the shape; follow-ups carry only the token and keep
	// the original page size.
	first, err := env.spaces.ListSpaces(ctx, &pb.ListSpacesRequest{SortBy: "name", MaxResults: 3})
	require.NoError(t, err)

	seen := make([]string, 0, 7)
	for _, s := range first.GetSpaces() {
		seen = append(seen, s.GetName())
	}
	pages := 1
	token := first.GetNextToken()
	for token != "" {
		resp, err := env.spaces.ListSpaces(ctx, &pb.ListSpacesRequest{NextToken: token})
		require.NoError(t, err)
		for _, s := range resp.GetSpaces() {
			seen = append(seen, s.GetName())
		}
		pages++
		token = resp.GetNextToken()
	}
	assert.Equal(t, 3, pages)
	require.Len(t, seen, 7)
	for i, name := range seen {
		assert.Equal(t, fmt.Sprintf("space-%02d", i), name)
	}
}

func TestListSpacesTokenPinsFilters(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	for i := 0; i < 4; i++ {
		_, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{
			Name:       fmt.Sprintf("match-%d", i),
			EmbedderId: embedderID,
		})
		require.NoError(t, err)
	}
	_, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: "other", EmbedderId: embedderID})
	require.NoError(t, err)

	first, err := env.spaces.ListSpaces(ctx, &pb.ListSpacesRequest{
		NameFilter: "match-*",
		SortBy:     "name",
		MaxResults: 2,
	})
	require.NoError(t, err)
	require.Len(t, first.GetSpaces(), 2)
	require.NotEmpty(t, first.GetNextToken())

	// The follow-up carries contradictory filters; the token's shape wins.
	second, err := env.spaces.ListSpaces(ctx, &pb.ListSpacesRequest{
		NameFilter: "other*",
		SortBy:     "created_time",
		MaxResults: 2,
		NextToken:  first.GetNextToken(),
	})
	require.NoError(t, err)
	require.Len(t, second.GetSpaces(), 2)
	assert.Equal(t, "match-2", second.GetSpaces()[0].GetName())
	assert.Equal(t, "match-3", second.GetSpaces()[1].GetName())
	assert.Empty(t, second.GetNextToken())
}

func TestListSpacesTokenIsCallerBound(t *testing.T) {
	env := setupEnv(t)
	aliceID := env.seedUser(t, "alice@example.com")
	bobID := env.seedUser(t, "bob@example.com")
	aliceCtx := env.as(aliceID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, aliceID, "alice@example.com")

	for i := 0; i < 3; i++ {
		_, err := env.spaces.CreateSpace(aliceCtx, &pb.CreateSpaceRequest{
			Name:       fmt.Sprintf("s-%d", i),
			EmbedderId: embedderID,
		})
		require.NoError(t, err)
	}
	first, err := env.spaces.ListSpaces(aliceCtx, &pb.ListSpacesRequest{MaxResults: 2})
	require.NoError(t, err)
	require.NotEmpty(t, first.GetNextToken())

	_, err = env.spaces.ListSpaces(env.as(bobID, "bob@example.com", store.RoleUser),
		&pb.ListSpacesRequest{NextToken: first.GetNextToken()})
	requireStatusCode(t, err, codes.InvalidArgument)

	_, err = env.spaces.ListSpaces(aliceCtx, &pb.ListSpacesRequest{NextToken: "garbage-token"})
	requireStatusCode(t, err, codes.InvalidArgument)
}

func TestListSpacesDescending(t *testing.T) {
	env := setupEnv(t)
	userID := env.seedUser(t, "alice@example.com")
	ctx := env.as(userID, "alice@example.com", store.RoleUser)
	embedderID := seedEmbedderFor(t, env, userID, "alice@example.com")

	for _, name := range []string{"aa", "bb", "cc"} {
		_, err := env.spaces.CreateSpace(ctx, &pb.CreateSpaceRequest{Name: name, EmbedderId: embedderID})
		require.NoError(t, err)
	}
	resp, err := env.spaces.ListSpaces(ctx, &pb.ListSpacesRequest{
		SortBy:    "name",
		SortOrder: pb.SortOrder_SORT_ORDER_DESCENDING,
	})
	require.NoError(t, err)
	require.Len(t, resp.GetSpaces(), 3)
	assert.Equal(t, "cc", resp.GetSpaces()[0].GetName())
	assert.Equal(t, "aa", resp.GetSpaces()[2].GetName())
}
