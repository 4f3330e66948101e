package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgvec "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/goodmem/goodmem/internal/store"
)

func (s *PostgresStore) CreateMemory(ctx context.Context, m *store.Memory) (*store.Memory, error) {
	r := newMemoryRow(m)
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	if r.ProcessingStatus == "" {
		r.ProcessingStatus = store.ProcessingPending
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, &store.NotFoundError{Resource: "space", ID: r.SpaceID.String()}
		}
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return r.toStore(), nil
}

func (s *PostgresStore) GetMemory(ctx context.Context, id uuid.UUID) (*store.Memory, error) {
	var r memoryRow
	if err := s.db.WithContext(ctx).Where("memory_id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "memory", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load memory: %w", err)
	}
	return r.toStore(), nil
}

func (s *PostgresStore) ListMemories(ctx context.Context, spaceID uuid.UUID) ([]store.Memory, error) {
	var rows []memoryRow
	if err := s.db.WithContext(ctx).
		Where("space_id = ?", spaceID).
		Order("created_at ASC, memory_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list memories: %w", err)
	}
	memories := make([]store.Memory, len(rows))
	for i := range rows {
		memories[i] = *rows[i].toStore()
	}
	return memories, nil
}

// DeleteMemory removes the memory and its chunks in one transaction.
func (s *PostgresStore) DeleteMemory(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("memory_id = ?", id).Delete(&memoryChunkRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete memory chunks: %w", err)
		}
		result := tx.Where("memory_id = ?", id).Delete(&memoryRow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete memory: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &store.NotFoundError{Resource: "memory", ID: id.String()}
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
}

// Legal processing transitions: PENDING starts the machine on create,
// workers move it forward, COMPLETED and FAILED are terminal.
var processingTransitions = map[store.ProcessingStatus]map[store.ProcessingStatus]bool{
	store.ProcessingPending:    {store.ProcessingProcessing: true},
	store.ProcessingProcessing: {store.ProcessingCompleted: true, store.ProcessingFailed: true},
}

// SetMemoryProcessingStatus advances the processing state machine with a
// compare-and-set: the row moves from -> to atomically or not at all.
func (s *PostgresStore) SetMemoryProcessingStatus(ctx context.Context, id uuid.UUID, from, to store.ProcessingStatus) error {
	if !processingTransitions[from][to] {
		return &store.ValidationError{
			Field:   "processing_status",
			Message: fmt.Sprintf("illegal transition %s to %s", from, to),
		}
	}
	result := s.db.WithContext(ctx).Exec(
		"UPDATE memories SET processing_status = ?, updated_at = ? WHERE memory_id = ? AND processing_status = ?",
		to, time.Now(), id, from,
	)
	if result.Error != nil {
		return fmt.Errorf("failed to update processing status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		var r memoryRow
		if err := s.db.WithContext(ctx).Select("processing_status").Where("memory_id = ?", id).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.NotFoundError{Resource: "memory", ID: id.String()}
			}
			return fmt.Errorf("failed to load memory: %w", err)
		}
		return &store.PreconditionError{
			Message: fmt.Sprintf("memory is %s, expected %s", r.ProcessingStatus, from),
		}
	}
	return nil
}

// CreateMemoryChunks inserts a batch of chunks. A chunk may arrive with its
// embedding already generated; a GENERATED status without a vector is
// rejected, and any supplied vector must match the dimensionality of the
// owning space's embedder.
func (s *PostgresStore) CreateMemoryChunks(ctx context.Context, chunks []store.MemoryChunk) ([]store.MemoryChunk, error) {
	if len(chunks) == 0 {
		return nil, nil
	}
	now := time.Now()
	dims := make(map[uuid.UUID]int)
	rows := make([]*memoryChunkRow, len(chunks))
	for i := range chunks {
		c := chunks[i]
		if c.VectorStatus == store.VectorGenerated && c.Embedding == nil {
			return nil, &store.ValidationError{Field: "embedding", Message: "GENERATED chunks require an embedding vector"}
		}
		if c.Embedding != nil {
			dim, ok := dims[c.MemoryID]
			if !ok {
				var err error
				dim, err = s.memoryEmbedderDimension(ctx, c.MemoryID)
				if err != nil {
					return nil, err
				}
				dims[c.MemoryID] = dim
			}
			if len(c.Embedding) != dim {
				return nil, &store.ValidationError{
					Field:   "embedding",
					Message: fmt.Sprintf("embedding has %d dimensions, embedder expects %d", len(c.Embedding), dim),
				}
			}
		}
		r := newMemoryChunkRow(&c)
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		if r.VectorStatus == "" {
			r.VectorStatus = store.VectorPending
		}
		if r.CreatedAt.IsZero() {
			r.CreatedAt = now
		}
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = now
		}
		rows[i] = r
	}
	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, &store.ConflictError{Message: "chunk sequence number already exists for this memory", Code: "DUPLICATE_CHUNK"}
			case "23503":
				return nil, &store.NotFoundError{Resource: "memory", ID: rows[0].MemoryID.String()}
			}
		}
		return nil, fmt.Errorf("failed to create memory chunks: %w", err)
	}
	out := make([]store.MemoryChunk, len(rows))
	for i, r := range rows {
		out[i] = *r.toStore()
	}
	return out, nil
}

// SetChunkEmbedding stores a generated vector, or records a FAILED attempt
// with the vector cleared. The vector must match the dimensionality of the
// owning space's embedder.
func (s *PostgresStore) SetChunkEmbedding(ctx context.Context, chunkID uuid.UUID, embedding []float32, status store.VectorStatus) error {
	if status == store.VectorGenerated && embedding == nil {
		return &store.ValidationError{Field: "embedding", Message: "GENERATED status requires an embedding vector"}
	}
	if embedding != nil {
		dim, err := s.chunkEmbedderDimension(ctx, chunkID)
		if err != nil {
			return err
		}
		if len(embedding) != dim {
			return &store.ValidationError{
				Field:   "embedding",
				Message: fmt.Sprintf("embedding has %d dimensions, embedder expects %d", len(embedding), dim),
			}
		}
	}
	var result *gorm.DB
	if embedding != nil {
		result = s.db.WithContext(ctx).Exec(
			"UPDATE memory_chunks SET embedding_vector = ?::vector, vector_status = ?, updated_at = ? WHERE chunk_id = ?",
			pgvec.NewVector(embedding), status, time.Now(), chunkID,
		)
	} else {
		result = s.db.WithContext(ctx).Exec(
			"UPDATE memory_chunks SET embedding_vector = NULL, vector_status = ?, updated_at = ? WHERE chunk_id = ?",
			status, time.Now(), chunkID,
		)
	}
	if result.Error != nil {
		return fmt.Errorf("failed to set chunk embedding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &store.NotFoundError{Resource: "memory_chunk", ID: chunkID.String()}
	}
	return nil
}

func (s *PostgresStore) memoryEmbedderDimension(ctx context.Context, memoryID uuid.UUID) (int, error) {
	var dim int
	result := s.db.WithContext(ctx).Raw(`
		SELECT e.dimensionality
		FROM memories m
		JOIN spaces sp ON sp.space_id = m.space_id
		JOIN embedders e ON e.embedder_id = sp.embedder_id
		WHERE m.memory_id = ?`, memoryID).Scan(&dim)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to load embedder dimensionality: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, &store.NotFoundError{Resource: "memory", ID: memoryID.String()}
	}
	return dim, nil
}

func (s *PostgresStore) chunkEmbedderDimension(ctx context.Context, chunkID uuid.UUID) (int, error) {
	var dim int
	result := s.db.WithContext(ctx).Raw(`
		SELECT e.dimensionality
		FROM memory_chunks c
		JOIN memories m ON m.memory_id = c.memory_id
		JOIN spaces sp ON sp.space_id = m.space_id
		JOIN embedders e ON e.embedder_id = sp.embedder_id
		WHERE c.chunk_id = ?`, chunkID).Scan(&dim)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to load embedder dimensionality: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, &store.NotFoundError{Resource: "memory_chunk", ID: chunkID.String()}
	}
	return dim, nil
}

// NearestChunks returns up to k generated chunks from the space's memories
// ordered by L2 distance to the query vector, ties broken by chunk id.
func (s *PostgresStore) NearestChunks(ctx context.Context, spaceID uuid.UUID, query []float32, k int) ([]store.MemoryChunk, error) {
	if k <= 0 {
		return nil, nil
	}
	vec := pgvec.NewVector(query)
	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT c.chunk_id, c.memory_id, c.chunk_sequence_number, c.chunk_text,
		       c.embedding_vector, c.vector_status, c.start_offset, c.end_offset,
		       c.created_at, c.updated_at
		FROM memory_chunks c
		JOIN memories m ON m.memory_id = c.memory_id
		WHERE m.space_id = ? AND c.vector_status = ?
		ORDER BY c.embedding_vector <-> ?::vector, c.chunk_id ASC
		LIMIT ?`,
		spaceID, store.VectorGenerated, vec, k,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to search chunks: %w", err)
	}
	defer rows.Close()

	var out []store.MemoryChunk
	for rows.Next() {
		var r memoryChunkRow
		var emb pgvec.Vector
		if err := rows.Scan(
			&r.ID, &r.MemoryID, &r.SequenceNumber, &r.ChunkText,
			&emb, &r.VectorStatus, &r.StartOffset, &r.EndOffset,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		r.Embedding = &emb
		out = append(out, *r.toStore())
	}
	return out, rows.Err()
}
