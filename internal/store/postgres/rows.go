package postgres

import (
	"time"

	"github.com/google/uuid"
	pgvec "github.com/pgvector/pgvector-go"

	"github.com/goodmem/goodmem/internal/store"
)

type userRow struct {
	ID          uuid.UUID `gorm:"column:user_id;primaryKey;type:uuid"`
	Email       string    `gorm:"column:email;not null"`
	DisplayName string    `gorm:"column:display_name"`
	Username    string    `gorm:"column:username"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

func (userRow) TableName() string { return "users" }

func (r *userRow) toStore(roles []store.RoleName) *store.User {
	return &store.User{
		ID:          r.ID,
		Username:    r.Username,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Roles:       roles,
	}
}

type userRoleRow struct {
	UserID    uuid.UUID      `gorm:"column:user_id;primaryKey;type:uuid"`
	RoleName  store.RoleName `gorm:"column:role_name;primaryKey"`
	CreatedAt time.Time      `gorm:"column:created_at;not null;default:now()"`
}

func (userRoleRow) TableName() string { return "user_roles" }

type apiKeyRow struct {
	ID          uuid.UUID          `gorm:"column:api_key_id;primaryKey;type:uuid"`
	UserID      uuid.UUID          `gorm:"column:user_id;type:uuid;not null"`
	KeyPrefix   string             `gorm:"column:key_prefix;not null"`
	HashedKey   []byte             `gorm:"column:hashed_key_material;type:bytea;not null"`
	Status      store.ApiKeyStatus `gorm:"column:status;not null"`
	Labels      map[string]string  `gorm:"column:labels;type:jsonb;serializer:json"`
	ExpiresAt   *time.Time         `gorm:"column:expires_at"`
	LastUsedAt  *time.Time         `gorm:"column:last_used_at"`
	CreatedAt   time.Time          `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;not null;default:now()"`
	CreatedByID uuid.UUID          `gorm:"column:created_by_id;type:uuid;not null"`
	UpdatedByID uuid.UUID          `gorm:"column:updated_by_id;type:uuid;not null"`
}

func (apiKeyRow) TableName() string { return "api_keys" }

func newApiKeyRow(k *store.ApiKey) *apiKeyRow {
	return &apiKeyRow{
		ID:          k.ID,
		UserID:      k.UserID,
		KeyPrefix:   k.KeyPrefix,
		HashedKey:   k.HashedKey,
		Status:      k.Status,
		Labels:      k.Labels,
		ExpiresAt:   k.ExpiresAt,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
		UpdatedAt:   k.UpdatedAt,
		CreatedByID: k.CreatedByID,
		UpdatedByID: k.UpdatedByID,
	}
}

func (r *apiKeyRow) toStore() *store.ApiKey {
	return &store.ApiKey{
		ID:          r.ID,
		UserID:      r.UserID,
		KeyPrefix:   r.KeyPrefix,
		HashedKey:   r.HashedKey,
		Status:      r.Status,
		Labels:      r.Labels,
		ExpiresAt:   r.ExpiresAt,
		LastUsedAt:  r.LastUsedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CreatedByID: r.CreatedByID,
		UpdatedByID: r.UpdatedByID,
	}
}

type embedderRow struct {
	ID                  uuid.UUID          `gorm:"column:embedder_id;primaryKey;type:uuid"`
	DisplayName         string             `gorm:"column:display_name;not null"`
	Description         string             `gorm:"column:description"`
	ProviderType        store.ProviderType `gorm:"column:provider_type;not null"`
	EndpointURL         string             `gorm:"column:endpoint_url;not null"`
	ApiPath             string             `gorm:"column:api_path;not null"`
	ModelIdentifier     string             `gorm:"column:model_identifier;not null"`
	Dimensionality      int                `gorm:"column:dimensionality;not null"`
	MaxSequenceLength   *int               `gorm:"column:max_sequence_length"`
	SupportedModalities []store.Modality   `gorm:"column:supported_modalities;type:jsonb;serializer:json"`
	Credentials         []byte             `gorm:"column:credentials;type:bytea;not null"`
	Labels              map[string]string  `gorm:"column:labels;type:jsonb;serializer:json"`
	Version             string             `gorm:"column:version"`
	MonitoringEndpoint  string             `gorm:"column:monitoring_endpoint"`
	OwnerID             uuid.UUID          `gorm:"column:owner_id;type:uuid;not null"`
	CreatedAt           time.Time          `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt           time.Time          `gorm:"column:updated_at;not null;default:now()"`
	CreatedByID         uuid.UUID          `gorm:"column:created_by_id;type:uuid;not null"`
	UpdatedByID         uuid.UUID          `gorm:"column:updated_by_id;type:uuid;not null"`
}

func (embedderRow) TableName() string { return "embedders" }

type spaceRow struct {
	ID          uuid.UUID         `gorm:"column:space_id;primaryKey;type:uuid"`
	Name        string            `gorm:"column:name;not null"`
	Labels      map[string]string `gorm:"column:labels;type:jsonb;serializer:json"`
	EmbedderID  uuid.UUID         `gorm:"column:embedder_id;type:uuid;not null"`
	OwnerID     uuid.UUID         `gorm:"column:owner_id;type:uuid;not null"`
	PublicRead  bool              `gorm:"column:public_read;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;not null;default:now()"`
	CreatedByID uuid.UUID         `gorm:"column:created_by_id;type:uuid;not null"`
	UpdatedByID uuid.UUID         `gorm:"column:updated_by_id;type:uuid;not null"`
}

func (spaceRow) TableName() string { return "spaces" }

func newSpaceRow(sp *store.Space) *spaceRow {
	return &spaceRow{
		ID:          sp.ID,
		Name:        sp.Name,
		Labels:      sp.Labels,
		EmbedderID:  sp.EmbedderID,
		OwnerID:     sp.OwnerID,
		PublicRead:  sp.PublicRead,
		CreatedAt:   sp.CreatedAt,
		UpdatedAt:   sp.UpdatedAt,
		CreatedByID: sp.CreatedByID,
		UpdatedByID: sp.UpdatedByID,
	}
}

func (r *spaceRow) toStore() *store.Space {
	return &store.Space{
		ID:          r.ID,
		Name:        r.Name,
		Labels:      r.Labels,
		EmbedderID:  r.EmbedderID,
		OwnerID:     r.OwnerID,
		PublicRead:  r.PublicRead,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		CreatedByID: r.CreatedByID,
		UpdatedByID: r.UpdatedByID,
	}
}

type memoryRow struct {
	ID                 uuid.UUID              `gorm:"column:memory_id;primaryKey;type:uuid"`
	SpaceID            uuid.UUID              `gorm:"column:space_id;type:uuid;not null"`
	OriginalContentRef string                 `gorm:"column:original_content_ref"`
	ContentType        string                 `gorm:"column:content_type"`
	Metadata           map[string]string      `gorm:"column:metadata;type:jsonb;serializer:json"`
	ProcessingStatus   store.ProcessingStatus `gorm:"column:processing_status;not null"`
	CreatedAt          time.Time              `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt          time.Time              `gorm:"column:updated_at;not null;default:now()"`
	CreatedByID        uuid.UUID              `gorm:"column:created_by_id;type:uuid;not null"`
	UpdatedByID        uuid.UUID              `gorm:"column:updated_by_id;type:uuid;not null"`
}

func (memoryRow) TableName() string { return "memories" }

func newMemoryRow(m *store.Memory) *memoryRow {
	return &memoryRow{
		ID:                 m.ID,
		SpaceID:            m.SpaceID,
		OriginalContentRef: m.OriginalContentRef,
		ContentType:        m.ContentType,
		Metadata:           m.Metadata,
		ProcessingStatus:   m.ProcessingStatus,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
		CreatedByID:        m.CreatedByID,
		UpdatedByID:        m.UpdatedByID,
	}
}

func (r *memoryRow) toStore() *store.Memory {
	return &store.Memory{
		ID:                 r.ID,
		SpaceID:            r.SpaceID,
		OriginalContentRef: r.OriginalContentRef,
		ContentType:        r.ContentType,
		Metadata:           r.Metadata,
		ProcessingStatus:   r.ProcessingStatus,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
		CreatedByID:        r.CreatedByID,
		UpdatedByID:        r.UpdatedByID,
	}
}

type memoryChunkRow struct {
	ID             uuid.UUID          `gorm:"column:chunk_id;primaryKey;type:uuid"`
	MemoryID       uuid.UUID          `gorm:"column:memory_id;type:uuid;not null"`
	SequenceNumber int                `gorm:"column:chunk_sequence_number;not null"`
	ChunkText      string             `gorm:"column:chunk_text"`
	Embedding      *pgvec.Vector      `gorm:"column:embedding_vector;type:vector"`
	VectorStatus   store.VectorStatus `gorm:"column:vector_status;not null"`
	StartOffset    *int               `gorm:"column:start_offset"`
	EndOffset      *int               `gorm:"column:end_offset"`
	CreatedAt      time.Time          `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;not null;default:now()"`
}

func (memoryChunkRow) TableName() string { return "memory_chunks" }

func newMemoryChunkRow(c *store.MemoryChunk) *memoryChunkRow {
	r := &memoryChunkRow{
		ID:             c.ID,
		MemoryID:       c.MemoryID,
		SequenceNumber: c.SequenceNumber,
		ChunkText:      c.ChunkText,
		VectorStatus:   c.VectorStatus,
		StartOffset:    c.StartOffset,
		EndOffset:      c.EndOffset,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Embedding != nil {
		vec := pgvec.NewVector(c.Embedding)
		r.Embedding = &vec
	}
	return r
}

func (r *memoryChunkRow) toStore() *store.MemoryChunk {
	c := &store.MemoryChunk{
		ID:             r.ID,
		MemoryID:       r.MemoryID,
		SequenceNumber: r.SequenceNumber,
		ChunkText:      r.ChunkText,
		VectorStatus:   r.VectorStatus,
		StartOffset:    r.StartOffset,
		EndOffset:      r.EndOffset,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Embedding != nil {
		c.Embedding = r.Embedding.Slice()
	}
	return c
}
