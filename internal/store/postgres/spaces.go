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

func (s *PostgresStore) CreateSpace(ctx context.Context, sp *store.Space) (*store.Space, error) {
	r := newSpaceRow(sp)
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

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&embedderRow{}).Where("embedder_id = ?", r.EmbedderID).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check embedder: %w", err)
		}
		if n == 0 {
			return &store.NotFoundError{Resource: "embedder", ID: r.EmbedderID.String()}
		}
		if err := tx.Create(r).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case "23505":
					return &store.ConflictError{
						Message: fmt.Sprintf("space named %q already exists for this owner", r.Name),
						Code:    "DUPLICATE_SPACE",
					}
				case "23503":
					return &store.NotFoundError{Resource: "user", ID: r.OwnerID.String()}
				}
			}
			return fmt.Errorf("failed to create space: %w", err)
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}
	return r.toStore(), nil
}

func (s *PostgresStore) GetSpace(ctx context.Context, id uuid.UUID) (*store.Space, error) {
	var r spaceRow
	if err := s.db.WithContext(ctx).Where("space_id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "space", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load space: %w", err)
	}
	return r.toStore(), nil
}

// QuerySpaces runs the filtered, sorted, offset-paged space listing.
// TotalCount is the filtered row count before paging. The visibility
// predicate (own rows, plus public rows when IncludePublic) is skipped
// entirely for Unrestricted queries.
func (s *PostgresStore) QuerySpaces(ctx context.Context, q store.SpaceQuery) (*store.PagedSpaces, error) {
	tx := s.db.WithContext(ctx).Model(&spaceRow{})

	if !q.Unrestricted {
		if q.IncludePublic {
			tx = tx.Where("(owner_id = ? OR public_read = TRUE)", q.RequestorID)
		} else {
			tx = tx.Where("owner_id = ?", q.RequestorID)
		}
	}
	if q.OwnerFilter != nil {
		tx = tx.Where("owner_id = ?", *q.OwnerFilter)
	}
	if len(q.LabelSelectors) > 0 {
		sel, err := json.Marshal(q.LabelSelectors)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal label selectors: %w", err)
		}
		tx = tx.Where("labels @> ?::jsonb", string(sel))
	}
	if q.NameLike != "" && q.NameLike != "%" {
		tx = tx.Where("name LIKE ?", q.NameLike)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count spaces: %w", err)
	}

	direction := "DESC"
	if q.SortAscending {
		direction = "ASC"
	}
	// NormalizeSortBy returns a column from the allow-list, so the
	// interpolation cannot inject.
	order := fmt.Sprintf("%s %s, space_id ASC", store.NormalizeSortBy(q.SortBy), direction)

	var rows []spaceRow
	if err := tx.Order(order).
		Offset(q.Offset).
		Limit(store.NormalizePageSize(q.PageSize)).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query spaces: %w", err)
	}

	spaces := make([]store.Space, len(rows))
	for i := range rows {
		spaces[i] = *rows[i].toStore()
	}
	return &store.PagedSpaces{Spaces: spaces, TotalCount: total}, nil
}

func (s *PostgresStore) UpdateSpace(ctx context.Context, id uuid.UUID, upd store.SpaceUpdate) (*store.Space, error) {
	var out *store.Space
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r spaceRow
		if err := tx.Where("space_id = ?", id).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.NotFoundError{Resource: "space", ID: id.String()}
			}
			return fmt.Errorf("failed to load space: %w", err)
		}
		if upd.Name != nil {
			r.Name = *upd.Name
		}
		if upd.PublicRead != nil {
			r.PublicRead = *upd.PublicRead
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
					Message: fmt.Sprintf("space named %q already exists for this owner", r.Name),
					Code:    "DUPLICATE_SPACE",
				}
			}
			return fmt.Errorf("failed to update space: %w", err)
		}
		out = r.toStore()
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteSpace removes the space, its memories, and their chunks in one
// transaction.
func (s *PostgresStore) DeleteSpace(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM memory_chunks WHERE memory_id IN (SELECT memory_id FROM memories WHERE space_id = ?)",
			id,
		).Error; err != nil {
			return fmt.Errorf("failed to delete space chunks: %w", err)
		}
		if err := tx.Where("space_id = ?", id).Delete(&memoryRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete space memories: %w", err)
		}
		result := tx.Where("space_id = ?", id).Delete(&spaceRow{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete space: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return &store.NotFoundError{Resource: "space", ID: id.String()}
		}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
}
