package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/goodmem/goodmem/internal/store"
)

func (s *PostgresStore) GetUserByID(ctx context.Context, id uuid.UUID) (*store.User, error) {
	var r userRow
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "user", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	roles, err := s.loadRoles(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return r.toStore(roles), nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	var r userRow
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &store.NotFoundError{Resource: "user", ID: email}
		}
		return nil, fmt.Errorf("failed to load user by email: %w", err)
	}
	roles, err := s.loadRoles(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	return r.toStore(roles), nil
}

func (s *PostgresStore) loadRoles(ctx context.Context, userID uuid.UUID) ([]store.RoleName, error) {
	var rows []userRoleRow
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("role_name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load user roles: %w", err)
	}
	roles := make([]store.RoleName, len(rows))
	for i, r := range rows {
		roles[i] = r.RoleName
	}
	return roles, nil
}

// InitializeRoot creates the root user, its ROOT role binding, and the root
// API key in one transaction. A partial unique index over ROOT bindings
// serializes concurrent callers; losers see created=false with nothing
// returned, same as callers who arrive after initialization.
func (s *PostgresStore) InitializeRoot(ctx context.Context, boot store.RootBootstrap) (*store.User, *store.ApiKey, bool, error) {
	var user *store.User
	var key *store.ApiKey
	created := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing userRoleRow
		err := tx.Where("role_name = ?", store.RoleRoot).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for root role: %w", err)
		}

		now := time.Now()
		u := userRow{
			ID:          uuid.New(),
			Email:       boot.Email,
			DisplayName: boot.DisplayName,
			Username:    boot.Username,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.Create(&u).Error; err != nil {
			return fmt.Errorf("failed to create root user: %w", err)
		}
		if err := tx.Create(&userRoleRow{UserID: u.ID, RoleName: store.RoleRoot, CreatedAt: now}).Error; err != nil {
			return err
		}
		k := apiKeyRow{
			ID:          uuid.New(),
			UserID:      u.ID,
			KeyPrefix:   boot.KeyPrefix,
			HashedKey:   boot.KeyHash,
			Status:      store.ApiKeyActive,
			CreatedAt:   now,
			UpdatedAt:   now,
			CreatedByID: u.ID,
			UpdatedByID: u.ID,
		}
		if err := tx.Create(&k).Error; err != nil {
			return fmt.Errorf("failed to create root api key: %w", err)
		}
		user = u.toStore([]store.RoleName{store.RoleRoot})
		key = k.toStore()
		created = true
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Lost the bootstrap race; another caller created the root.
			return nil, nil, false, nil
		}
		return nil, nil, false, fmt.Errorf("failed to initialize system: %w", err)
	}
	return user, key, created, nil
}
