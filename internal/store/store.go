// Package store defines the persistence contract for the goodmem server:
// the domain types, the typed errors handlers translate at the API
// boundary, and the Store interface the postgres implementation satisfies.
// The store performs no authorization; handlers decide what a caller may
// touch and scope queries accordingly.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RoleName is a named permission bundle attached to a user.
type RoleName string

const (
	RoleRoot  RoleName = "ROOT"
	RoleAdmin RoleName = "ADMIN"
	RoleUser  RoleName = "USER"
)

// ApiKeyStatus gates whether a key can authenticate.
type ApiKeyStatus string

const (
	ApiKeyActive   ApiKeyStatus = "ACTIVE"
	ApiKeyInactive ApiKeyStatus = "INACTIVE"
)

// ProviderType identifies the embedding endpoint flavor. Immutable after
// creation.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "OPENAI"
	ProviderVLLM   ProviderType = "VLLM"
	ProviderTEI    ProviderType = "TEI"
)

// Modality is a content kind an embedder accepts.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
	ModalityAudio Modality = "AUDIO"
	ModalityVideo Modality = "VIDEO"
)

// ProcessingStatus tracks a memory through the external pipeline.
type ProcessingStatus string

const (
	ProcessingPending    ProcessingStatus = "PENDING"
	ProcessingProcessing ProcessingStatus = "PROCESSING"
	ProcessingCompleted  ProcessingStatus = "COMPLETED"
	ProcessingFailed     ProcessingStatus = "FAILED"
)

// VectorStatus tracks a chunk's embedding.
type VectorStatus string

const (
	VectorPending   VectorStatus = "PENDING"
	VectorGenerated VectorStatus = "GENERATED"
	VectorFailed    VectorStatus = "FAILED"
)

// User is an account. Roles carries the user's role names.
type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Roles       []RoleName
}

// ApiKey is key metadata. HashedKey never leaves the store and resolver
// layers.
type ApiKey struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	KeyPrefix   string
	HashedKey   []byte
	Status      ApiKeyStatus
	Labels      map[string]string
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID uuid.UUID
	UpdatedByID uuid.UUID
}

// Usable reports whether the key may authenticate a request at the given
// instant.
func (k *ApiKey) Usable(now time.Time) bool {
	if k.Status != ApiKeyActive {
		return false
	}
	return k.ExpiresAt == nil || k.ExpiresAt.After(now)
}

// Embedder describes an external embedding endpoint. Credentials is the
// plain-text secret at this layer; the postgres store seals it before it
// touches disk and unseals it on reads that request it.
type Embedder struct {
	ID                  uuid.UUID
	DisplayName         string
	Description         string
	ProviderType        ProviderType
	EndpointURL         string
	ApiPath             string
	ModelIdentifier     string
	Dimensionality      int
	MaxSequenceLength   *int
	SupportedModalities []Modality
	Credentials         string
	Labels              map[string]string
	Version             string
	MonitoringEndpoint  string
	OwnerID             uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
	CreatedByID         uuid.UUID
	UpdatedByID         uuid.UUID
}

// Space is a named, user-owned container for memories.
type Space struct {
	ID          uuid.UUID
	Name        string
	Labels      map[string]string
	EmbedderID  uuid.UUID
	OwnerID     uuid.UUID
	PublicRead  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedByID uuid.UUID
	UpdatedByID uuid.UUID
}

// Memory is a content blob attached to a space.
type Memory struct {
	ID                 uuid.UUID
	SpaceID            uuid.UUID
	OriginalContentRef string
	ContentType        string
	Metadata           map[string]string
	ProcessingStatus   ProcessingStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CreatedByID        uuid.UUID
	UpdatedByID        uuid.UUID
}

// MemoryChunk is an indexed slice of a memory with its embedding vector.
// Embedding is nil unless VectorStatus is GENERATED.
type MemoryChunk struct {
	ID             uuid.UUID
	MemoryID       uuid.UUID
	SequenceNumber int
	ChunkText      string
	Embedding      []float32
	VectorStatus   VectorStatus
	StartOffset    *int
	EndOffset      *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EmbedderUpdate carries set-if-present embedder mutations. Nil fields are
// left untouched; Modalities replaces the stored set when non-empty.
type EmbedderUpdate struct {
	DisplayName        *string
	Description        *string
	EndpointURL        *string
	ApiPath            *string
	ModelIdentifier    *string
	Dimensionality     *int
	MaxSequenceLength  *int
	Modalities         []Modality
	Credentials        *string
	Version            *string
	MonitoringEndpoint *string
	Labels             LabelUpdate
	UpdatedByID        uuid.UUID
}

// SpaceUpdate carries set-if-present space mutations.
type SpaceUpdate struct {
	Name        *string
	PublicRead  *bool
	Labels      LabelUpdate
	UpdatedByID uuid.UUID
}

// ApiKeyUpdate carries set-if-present key mutations.
type ApiKeyUpdate struct {
	Status      *ApiKeyStatus
	Labels      LabelUpdate
	UpdatedByID uuid.UUID
}

// EmbedderQuery filters ListEmbedders. The handler sets OwnerID to the
// caller when the caller may only see their own rows.
type EmbedderQuery struct {
	OwnerID        *uuid.UUID
	ProviderType   *ProviderType
	LabelSelectors map[string]string
}

// SpaceQuery drives the paginated space listing.
//
// Visibility: a row is eligible when it belongs to RequestorID, or when
// IncludePublic is set and the row is public_read. Unrestricted bypasses
// the visibility predicate entirely (caller holds the ANY permission).
// OwnerFilter further narrows to a single owner. NameLike is a SQL LIKE
// pattern (callers convert globs with GlobToLike). SortBy must come from
// the sort allow-list; unknown fields fall back to created_at.
type SpaceQuery struct {
	OwnerFilter    *uuid.UUID
	LabelSelectors map[string]string
	NameLike       string
	SortBy         string
	SortAscending  bool
	Offset         int
	PageSize       int
	IncludePublic  bool
	RequestorID    uuid.UUID
	Unrestricted   bool
}

// PagedSpaces is a page of spaces plus the filtered row count before
// paging.
type PagedSpaces struct {
	Spaces     []Space
	TotalCount int64
}

// RootBootstrap is the fixed identity and pre-generated key material for
// InitializeRoot.
type RootBootstrap struct {
	Email       string
	DisplayName string
	Username    string
	KeyPrefix   string
	KeyHash     []byte
}

// AuthLookup is the single-round-trip result the principal resolver needs:
// the key row joined with its owner and the owner's roles.
type AuthLookup struct {
	Key  ApiKey
	User User
}

// Store is the data access contract. Implementations surface failures as
// the typed errors in this package; handlers translate those into the API
// error taxonomy.
type Store interface {
	// Users
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Bootstrap. Creates the root user, its ROOT role binding, and the
	// root API key in one transaction. Returns created=false without
	// touching anything when a ROOT user already exists; the race between
	// concurrent callers is settled by the partial unique index over ROOT
	// role bindings.
	InitializeRoot(ctx context.Context, boot RootBootstrap) (user *User, key *ApiKey, created bool, err error)

	// API keys
	CreateApiKey(ctx context.Context, key *ApiKey) (*ApiKey, error)
	GetApiKey(ctx context.Context, id uuid.UUID) (*ApiKey, error)
	ListApiKeysByUser(ctx context.Context, userID uuid.UUID) ([]ApiKey, error)
	UpdateApiKey(ctx context.Context, id uuid.UUID, upd ApiKeyUpdate) (*ApiKey, error)
	DeleteApiKey(ctx context.Context, id uuid.UUID) error

	// Authentication support. GetApiKeyForAuth resolves a storage hash to
	// the key, owning user, and roles in one round trip; it does not check
	// status or expiry (the resolver does). TouchApiKeyLastUsed is the
	// fire-and-forget last_used_at write.
	GetApiKeyForAuth(ctx context.Context, hash []byte) (*AuthLookup, error)
	TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error

	// Embedders
	CreateEmbedder(ctx context.Context, e *Embedder) (*Embedder, error)
	GetEmbedder(ctx context.Context, id uuid.UUID) (*Embedder, error)
	ListEmbedders(ctx context.Context, q EmbedderQuery) ([]Embedder, error)
	UpdateEmbedder(ctx context.Context, id uuid.UUID, upd EmbedderUpdate) (*Embedder, error)
	DeleteEmbedder(ctx context.Context, id uuid.UUID) error

	// Spaces
	CreateSpace(ctx context.Context, s *Space) (*Space, error)
	GetSpace(ctx context.Context, id uuid.UUID) (*Space, error)
	QuerySpaces(ctx context.Context, q SpaceQuery) (*PagedSpaces, error)
	UpdateSpace(ctx context.Context, id uuid.UUID, upd SpaceUpdate) (*Space, error)
	DeleteSpace(ctx context.Context, id uuid.UUID) error

	// Memories
	CreateMemory(ctx context.Context, m *Memory) (*Memory, error)
	GetMemory(ctx context.Context, id uuid.UUID) (*Memory, error)
	ListMemories(ctx context.Context, spaceID uuid.UUID) ([]Memory, error)
	DeleteMemory(ctx context.Context, id uuid.UUID) error

	// Worker contract. The external chunking/embedding worker advances the
	// processing and vector state machines through these.
	SetMemoryProcessingStatus(ctx context.Context, id uuid.UUID, from, to ProcessingStatus) error
	CreateMemoryChunks(ctx context.Context, chunks []MemoryChunk) ([]MemoryChunk, error)
	SetChunkEmbedding(ctx context.Context, chunkID uuid.UUID, embedding []float32, status VectorStatus) error

	// NearestChunks returns up to k chunks from the space's memories
	// ordered by L2 distance to the query vector, closest first. Only
	// chunks with generated vectors participate; ties break on chunk id.
	NearestChunks(ctx context.Context, spaceID uuid.UUID, query []float32, k int) ([]MemoryChunk, error)

	// Ping reports database reachability for readiness probes.
	Ping(ctx context.Context) error

	Close() error
}
