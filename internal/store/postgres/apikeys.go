package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goodmem/goodmem/internal/store"
)

func (s *PostgresStore) CreateApiKey(ctx context.Context, key *store.ApiKey) (*store.ApiKey, error) {
	r := newApiKeyRow(key)
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
	if r.Status == "" {
		r.Status = store.ApiKeyActive
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &store.ConflictError{Message: "api key already exists", Code: "DUPLICATE_API_KEY"}
		}
		return nil, fmt.Errorf("failed to create api key: %w", err)
	}
	return r.toStore(), nil
}

func (s *PostgresStore) GetApiKey(ctx context.Context, id uuid.UUID) (*store.ApiKey, error) {
	var r apiKeyRow
	if err := s.db.WithContext(ctx).Where("api_key_id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "api_key", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load api key: %w", err)
	}
	return r.toStore(), nil
}

func (s *PostgresStore) ListApiKeysByUser(ctx context.Context, userID uuid.UUID) ([]store.ApiKey, error) {
	var rows []apiKeyRow
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, api_key_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	keys := make([]store.ApiKey, len(rows))
	for i := range rows {
		keys[i] = *rows[i].toStore()
	}
	return keys, nil
}

func (s *PostgresStore) UpdateApiKey(ctx context.Context, id uuid.UUID, upd store.ApiKeyUpdate) (*store.ApiKey, error) {
	var out *store.ApiKey
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var r apiKeyRow
		if err := tx.Where("api_key_id = ?", id).First(&r).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &store.NotFoundError{Resource: "api_key", ID: id.String()}
			}
			return fmt.Errorf("failed to load api key: %w", err)
		}
		if upd.Status != nil {
			r.Status = *upd.Status
		}
		if !upd.Labels.IsZero() {
			r.Labels = upd.Labels.Apply(r.Labels)
		}
		r.UpdatedAt = time.Now()
		r.UpdatedByID = upd.UpdatedByID
		if err := tx.Save(&r).Error; err != nil {
			return fmt.Errorf("failed to update api key: %w", err)
		}
		out = r.toStore()
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) DeleteApiKey(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("api_key_id = ?", id).Delete(&apiKeyRow{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return &store.NotFoundError{Resource: "api_key", ID: id.String()}
	}
	return nil
}

type authLookupRow struct {
	KeyID         uuid.UUID          `gorm:"column:api_key_id"`
	UserID        uuid.UUID          `gorm:"column:user_id"`
	KeyPrefix     string             `gorm:"column:key_prefix"`
	Status        store.ApiKeyStatus `gorm:"column:status"`
	ExpiresAt     *time.Time         `gorm:"column:expires_at"`
	LastUsedAt    *time.Time         `gorm:"column:last_used_at"`
	KeyCreatedAt  time.Time          `gorm:"column:key_created_at"`
	KeyUpdatedAt  time.Time          `gorm:"column:key_updated_at"`
	Email         string             `gorm:"column:email"`
	DisplayName   string             `gorm:"column:display_name"`
	Username      string             `gorm:"column:username"`
	UserCreatedAt time.Time          `gorm:"column:user_created_at"`
	UserUpdatedAt time.Time          `gorm:"column:user_updated_at"`
	Roles         string             `gorm:"column:roles"`
}

// GetApiKeyForAuth resolves a storage hash to the key, its owner, and the
// owner's roles in one round trip. Status and expiry are not checked here;
// the principal resolver owns that decision.
func (s *PostgresStore) GetApiKeyForAuth(ctx context.Context, hash []byte) (*store.AuthLookup, error) {
	var r authLookupRow
	result := s.db.WithContext(ctx).Raw(`
		SELECT k.api_key_id, k.user_id, k.key_prefix, k.status, k.expires_at, k.last_used_at,
		       k.created_at AS key_created_at, k.updated_at AS key_updated_at,
		       u.email, u.display_name, u.username,
		       u.created_at AS user_created_at, u.updated_at AS user_updated_at,
		       COALESCE(string_agg(r.role_name, ',' ORDER BY r.role_name), '') AS roles
		FROM api_keys k
		JOIN users u ON u.user_id = k.user_id
		LEFT JOIN user_roles r ON r.user_id = u.user_id
		WHERE k.hashed_key_material = ?
		GROUP BY k.api_key_id, u.user_id`,
		hash,
	).Scan(&r)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to resolve api key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &store.NotFoundError{Resource: "api_key", ID: "by-hash"}
	}

	var roles []store.RoleName
	if r.Roles != "" {
		for _, name := range strings.Split(r.Roles, ",") {
			roles = append(roles, store.RoleName(name))
		}
	}
	return &store.AuthLookup{
		Key: store.ApiKey{
			ID:         r.KeyID,
			UserID:     r.UserID,
			KeyPrefix:  r.KeyPrefix,
			HashedKey:  hash,
			Status:     r.Status,
			ExpiresAt:  r.ExpiresAt,
			LastUsedAt: r.LastUsedAt,
			CreatedAt:  r.KeyCreatedAt,
			UpdatedAt:  r.KeyUpdatedAt,
		},
		User: store.User{
			ID:          r.UserID,
			Username:    r.Username,
			Email:       r.Email,
			DisplayName: r.DisplayName,
			CreatedAt:   r.UserCreatedAt,
			UpdatedAt:   r.UserUpdatedAt,
			Roles:       roles,
		},
	}, nil
}

// TouchApiKeyLastUsed records key usage. Fire-and-forget: a key deleted
// between authentication and this write is not an error.
func (s *PostgresStore) TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.db.WithContext(ctx).
		Exec("UPDATE api_keys SET last_used_at = ? WHERE api_key_id = ?", at, id).Error
}
