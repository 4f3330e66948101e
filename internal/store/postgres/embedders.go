package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goodmem/goodmem/internal/store"
)

func (s *PostgresStore) embedderFromRow(r *embedderRow, withCredentials bool) *store.Embedder {
	e := &store.Embedder{
		ID:                  r.ID,
		DisplayName:         r.DisplayName,
		Description:         r.Description,
		ProviderType:        r.ProviderType,
		EndpointURL:         r.EndpointURL,
		ApiPath:             r.ApiPath,
		ModelIdentifier:     r.ModelIdentifier,
		Dimensionality:      r.Dimensionality,
		MaxSequenceLength:   r.MaxSequenceLength,
		SupportedModalities: r.SupportedModalities,
		Labels:              r.Labels,
		Version:             r.Version,
		MonitoringEndpoint:  r.MonitoringEndpoint,
		OwnerID:             r.OwnerID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		CreatedByID:         r.CreatedByID,
		UpdatedByID:         r.UpdatedByID,
	}
	if withCredentials {
		e.Credentials = s.unsealString(r.Credentials)
	}
	return e
}

func (s *PostgresStore) CreateEmbedder(ctx context.Context, e *store.Embedder) (*store.Embedder, error) {
	sealed, err := s.seal([]byte(e.Credentials))
	if err != nil {
		return nil, fmt.Errorf("failed to seal credentials: %w", err)
	}
	r := &embedderRow{
		ID:                  e.ID,
		DisplayName:         e.DisplayName,
		Description:         e.Description,
		ProviderType:        e.ProviderType,
		EndpointURL:         e.EndpointURL,
		ApiPath:             e.ApiPath,
		ModelIdentifier:     e.ModelIdentifier,
		Dimensionality:      e.Dimensionality,
		MaxSequenceLength:   e.MaxSequenceLength,
		SupportedModalities: e.SupportedModalities,
		Credentials:         sealed,
		Labels:              e.Labels,
		Version:             e.Version,
		MonitoringEndpoint:  e.MonitoringEndpoint,
		OwnerID:             e.OwnerID,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		CreatedByID:         e.CreatedByID,
		UpdatedByID:         e.UpdatedByID,
	}
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
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, &store.ConflictError{
					Message: fmt.Sprintf("embedder named %q already exists for this owner", e.DisplayName),
					Code:    "DUPLICATE_EMBEDDER",
				}
			case "23503":
				return nil, &store.NotFoundError{Resource: "user", ID: e.OwnerID.String()}
			}
		}
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}
	return s.embedderFromRow(r, true), nil
}

func (s *PostgresStore) GetEmbedder(ctx context.Context, id uuid.UUID) (*store.Embedder, error) {
	var r embedderRow
	if err := s.db.WithContext(ctx).Where("embedder_id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "embedder", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load embedder: %w", err)
	}
	return s.embedderFromRow(&r, true), nil
}

// ListEmbedders applies the given filters. Credentials are never included
// in list results.
func (s *PostgresStore) ListEmbedders(ctx context.Context, q store.EmbedderQuery) ([]store.Embedder, error) {
	tx := s.db.WithContext(ctx).Model(&embedderRow{})
	if q.OwnerID != nil {
		tx = tx.Where("owner_id = ?", *q.OwnerID)
	}
	if q.ProviderType != nil {
		tx = tx.Where("provider_type = ?", *q.ProviderType)
	}
	if len(q.LabelSelectors) > 0 {
		sel, err := json.Marshal(q.LabelSelectors)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal label selectors: %w", err)
		}
		tx = tx.Where("labels @> ?::jsonb", string(sel))
	}
	var rows []embedderRow
	if err := tx.Order("created_at ASC, embedder_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list embedders: %w", err)
	}
	embedders := make([]store.Embedder, len(rows))
	for i := range rows {
		embedders[i] = *s.embedderFromRow(&rows[i], false)
	}
	return embedders, nil
}

func (s *PostgresStore) UpdateEmbedder(ctx context.Context, id uuid.UUID, upd store.EmbedderUpdate) (*store.Embedder, error) {
	var out *store.Embedder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r embedderRow
		if err := tx.Where("embedder_id = ?", id).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.NotFoundError{Resource: "embedder", ID: id.String()}
			}
			return fmt.Errorf("failed to load embedder: %w", err)
		}
		if upd.DisplayName != nil {
			r.DisplayName = *upd.DisplayName
		}
		if upd.Description != nil {
			r.Description = *upd.Description
		}
		if upd.EndpointURL != nil {
			r.EndpointURL = *upd.EndpointURL
		}
		if upd.ApiPath != nil {
			r.ApiPath = *upd.ApiPath
		}
		if upd.ModelIdentifier != nil {
			r.ModelIdentifier = *upd.ModelIdentifier
		}
		if upd.Dimensionality != nil {
			r.Dimensionality = *upd.Dimensionality
		}
		if upd.MaxSequenceLength != nil {
			r.MaxSequenceLength = upd.MaxSequenceLength
		}
		if len(upd.Modalities) > 0 {
			r.SupportedModalities = upd.Modalities
		}
		if upd.Credentials != nil {
			sealed, err := s.seal([]byte(*upd.Credentials))
			if err != nil {
				return fmt.Errorf("failed to seal credentials: %w", err)
			}
			r.Credentials = sealed
		}
		if upd.Version != nil {
			r.Version = *upd.Version
		}
		if upd.MonitoringEndpoint != nil {
			r.MonitoringEndpoint = *upd.MonitoringEndpoint
		}
		if !upd.Labels.IsZero() {
			r.Labels = upd.Labels.Apply(r.Labels)
		}
		r.UpdatedAt = time.Now()
		r.UpdatedByID = upd.UpdatedByID
		if err := tx.Save(&r).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return &store.ConflictError{
					Message: fmt.Sprintf("embedder named %q already exists for this owner", r.DisplayName),
					Code:    "DUPLICATE_EMBEDDER",
				}
			}
			return fmt.Errorf("failed to update embedder: %w", err)
		}
		out = s.embedderFromRow(&r, true)
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) DeleteEmbedder(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("embedder_id = ?", id).Delete(&embedderRow{})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23503" {
			return &store.PreconditionError{Message: "embedder is referenced by existing spaces"}
		}
		return fmt.Errorf("failed to delete embedder: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &store.NotFoundError{Resource: "embedder", ID: id.String()}
	}
	return nil
}
