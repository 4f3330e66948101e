// Package postgres implements store.Store on PostgreSQL with the pgvector
// extension. GORM carries the row traffic; similarity search and a few
// guarded updates use raw SQL. Embedder credentials are sealed with AES-GCM
// before they touch disk when an encryption key is configured.
package postgres

import (
	"context"
	"crypto/cipher"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goodmem/goodmem/internal/config"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
)

// PostgresStore implements store.Store using GORM + PostgreSQL.
type PostgresStore struct {
	db   *gorm.DB
	gcms []cipher.AEAD
}

var _ store.Store = (*PostgresStore)(nil)

// Open connects to the database named by cfg.DBURL, applies the pool
// limits, and verifies reachability within cfg.DBAcquireWait. The pool
// gauges are refreshed until ctx is cancelled.
func Open(ctx context.Context, cfg *config.Config) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying db: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdle)

	pingCtx := ctx
	if cfg.DBAcquireWait > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DBAcquireWait)
		defer cancel()
	}
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	if security.DBPoolMaxConnections != nil {
		security.DBPoolMaxConnections.Set(float64(cfg.DBMaxOpenConns))
	}

	// Periodically update the open connections gauge.
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if security.DBPoolOpenConnections != nil {
					security.DBPoolOpenConnections.Set(float64(sqlDB.Stats().OpenConnections))
				}
			}
		}
	}()

	s := &PostgresStore{db: db}
	if cfg.CredentialEncryptionKey != "" {
		key, err := config.DecodeEncryptionKey(cfg.CredentialEncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid credential encryption key: %w", err)
		}
		gcm, err := newGCM(key)
		if err != nil {
			return nil, fmt.Errorf("failed to create GCM: %w", err)
		}
		s.gcms = append(s.gcms, gcm)

		retiredKeys, err := config.DecodeEncryptionKeysCSV(cfg.CredentialDecryptionKeys)
		if err != nil {
			return nil, fmt.Errorf("invalid credential decryption key list: %w", err)
		}
		for _, retired := range retiredKeys {
			retiredGCM, retiredErr := newGCM(retired)
			if retiredErr != nil {
				return nil, fmt.Errorf("failed to create retired decryption GCM: %w", retiredErr)
			}
			s.gcms = append(s.gcms, retiredGCM)
		}
	} else {
		log.Warn("No credential encryption key configured; embedder credentials will be stored as plain text")
	}
	return s, nil
}

// Migrate executes the embedded schema against the configured database. The
// DDL is idempotent so it is safe to run at every startup.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log.Info("Running schema migration")
	db, err := gorm.Open(postgres.Open(cfg.DBURL), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		return fmt.Errorf("migration: failed to connect: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if _, err := sqlDB.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migration: failed to execute schema: %w", err)
	}
	log.Info("Schema migration complete")
	return nil
}

// Ping reports database reachability for readiness probes.
func (s *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
