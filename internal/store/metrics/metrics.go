// Package metrics wraps a store.Store so every operation records its
// latency in the StoreLatency histogram.
package metrics

import (
	"context"
	"time"

	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/google/uuid"
)

// Wrap returns a Store that records StoreLatency for every operation.
func Wrap(inner store.Store) store.Store {
	return &metricsStore{inner: inner}
}

type metricsStore struct {
	inner store.Store
}

func observe(op string, start time.Time) {
	security.StoreLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (m *metricsStore) GetUserByID(ctx context.Context, id uuid.UUID) (*store.User, error) {
	defer observe("get_user", time.Now())
	return m.inner.GetUserByID(ctx, id)
}

func (m *metricsStore) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	defer observe("get_user", time.Now())
	return m.inner.GetUserByEmail(ctx, email)
}

func (m *metricsStore) InitializeRoot(ctx context.Context, boot store.RootBootstrap) (*store.User, *store.ApiKey, bool, error) {
	defer observe("initialize_root", time.Now())
	return m.inner.InitializeRoot(ctx, boot)
}

func (m *metricsStore) CreateApiKey(ctx context.Context, key *store.ApiKey) (*store.ApiKey, error) {
	defer observe("create_api_key", time.Now())
	return m.inner.CreateApiKey(ctx, key)
}

func (m *metricsStore) GetApiKey(ctx context.Context, id uuid.UUID) (*store.ApiKey, error) {
	defer observe("get_api_key", time.Now())
	return m.inner.GetApiKey(ctx, id)
}

func (m *metricsStore) ListApiKeysByUser(ctx context.Context, userID uuid.UUID) ([]store.ApiKey, error) {
	defer observe("list_api_keys", time.Now())
	return m.inner.ListApiKeysByUser(ctx, userID)
}

func (m *metricsStore) UpdateApiKey(ctx context.Context, id uuid.UUID, upd store.ApiKeyUpdate) (*store.ApiKey, error) {
	defer observe("update_api_key", time.Now())
	return m.inner.UpdateApiKey(ctx, id, upd)
}

func (m *metricsStore) DeleteApiKey(ctx context.Context, id uuid.UUID) error {
	defer observe("delete_api_key", time.Now())
	return m.inner.DeleteApiKey(ctx, id)
}

func (m *metricsStore) GetApiKeyForAuth(ctx context.Context, hash []byte) (*store.AuthLookup, error) {
	defer observe("get_api_key_for_auth", time.Now())
	return m.inner.GetApiKeyForAuth(ctx, hash)
}

func (m *metricsStore) TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	defer observe("touch_api_key", time.Now())
	return m.inner.TouchApiKeyLastUsed(ctx, id, at)
}

func (m *metricsStore) CreateEmbedder(ctx context.Context, e *store.Embedder) (*store.Embedder, error) {
	defer observe("create_embedder", time.Now())
	return m.inner.CreateEmbedder(ctx, e)
}

func (m *metricsStore) GetEmbedder(ctx context.Context, id uuid.UUID) (*store.Embedder, error) {
	defer observe("get_embedder", time.Now())
	return m.inner.GetEmbedder(ctx, id)
}

func (m *metricsStore) ListEmbedders(ctx context.Context, q store.EmbedderQuery) ([]store.Embedder, error) {
	defer observe("list_embedders", time.Now())
	return m.inner.ListEmbedders(ctx, q)
}

func (m *metricsStore) UpdateEmbedder(ctx context.Context, id uuid.UUID, upd store.EmbedderUpdate) (*store.Embedder, error) {
	defer observe("update_embedder", time.Now())
	return m.inner.UpdateEmbedder(ctx, id, upd)
}

func (m *metricsStore) DeleteEmbedder(ctx context.Context, id uuid.UUID) error {
	defer observe("delete_embedder", time.Now())
	return m.inner.DeleteEmbedder(ctx, id)
}

func (m *metricsStore) CreateSpace(ctx context.Context, s *store.Space) (*store.Space, error) {
	defer observe("create_space", time.Now())
	return m.inner.CreateSpace(ctx, s)
}

func (m *metricsStore) GetSpace(ctx context.Context, id uuid.UUID) (*store.Space, error) {
	defer observe("get_space", time.Now())
	return m.inner.GetSpace(ctx, id)
}

func (m *metricsStore) QuerySpaces(ctx context.Context, q store.SpaceQuery) (*store.PagedSpaces, error) {
	defer observe("query_spaces", time.Now())
	return m.inner.QuerySpaces(ctx, q)
}

func (m *metricsStore) UpdateSpace(ctx context.Context, id uuid.UUID, upd store.SpaceUpdate) (*store.Space, error) {
	defer observe("update_space", time.Now())
	return m.inner.UpdateSpace(ctx, id, upd)
}

func (m *metricsStore) DeleteSpace(ctx context.Context, id uuid.UUID) error {
	defer observe("delete_space", time.Now())
	return m.inner.DeleteSpace(ctx, id)
}

func (m *metricsStore) CreateMemory(ctx context.Context, mem *store.Memory) (*store.Memory, error) {
	defer observe("create_memory", time.Now())
	return m.inner.CreateMemory(ctx, mem)
}

func (m *metricsStore) GetMemory(ctx context.Context, id uuid.UUID) (*store.Memory, error) {
	defer observe("get_memory", time.Now())
	return m.inner.GetMemory(ctx, id)
}

func (m *metricsStore) ListMemories(ctx context.Context, spaceID uuid.UUID) ([]store.Memory, error) {
	defer observe("list_memories", time.Now())
	return m.inner.ListMemories(ctx, spaceID)
}

func (m *metricsStore) DeleteMemory(ctx context.Context, id uuid.UUID) error {
	defer observe("delete_memory", time.Now())
	return m.inner.DeleteMemory(ctx, id)
}

func (m *metricsStore) SetMemoryProcessingStatus(ctx context.Context, id uuid.UUID, from, to store.ProcessingStatus) error {
	defer observe("set_memory_processing_status", time.Now())
	return m.inner.SetMemoryProcessingStatus(ctx, id, from, to)
}

func (m *metricsStore) CreateMemoryChunks(ctx context.Context, chunks []store.MemoryChunk) ([]store.MemoryChunk, error) {
	defer observe("create_memory_chunks", time.Now())
	return m.inner.CreateMemoryChunks(ctx, chunks)
}

func (m *metricsStore) SetChunkEmbedding(ctx context.Context, chunkID uuid.UUID, embedding []float32, status store.VectorStatus) error {
	defer observe("set_chunk_embedding", time.Now())
	return m.inner.SetChunkEmbedding(ctx, chunkID, embedding, status)
}

func (m *metricsStore) NearestChunks(ctx context.Context, spaceID uuid.UUID, query []float32, k int) ([]store.MemoryChunk, error) {
	defer observe("nearest_chunks", time.Now())
	return m.inner.NearestChunks(ctx, spaceID, query, k)
}

func (m *metricsStore) Ping(ctx context.Context) error {
	defer observe("ping", time.Now())
	return m.inner.Ping(ctx)
}

func (m *metricsStore) Close() error {
	return m.inner.Close()
}
