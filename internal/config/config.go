package config

import (
	"context"
	"time"
)

// ListenerConfig holds the network/TLS settings for a single listener (main or management).
type ListenerConfig struct {
	Port              int
	EnablePlainText   bool
	EnableTLS         bool
	TLSCertFile       string
	TLSKeyFile        string
	ReadHeaderTimeout time.Duration
}

type contextKey struct{}

// WithContext returns a new context carrying the given Config.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext retrieves the Config from the context.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(contextKey{}).(*Config)
	return cfg
}

// Config holds all configuration for the goodmem server.
type Config struct {
	// Database
	DBURL string

	// Run schema migrations on startup.
	MigrateAtStart bool

	// DB pool
	DBMaxOpenConns  int
	DBMaxIdleConns  int
	DBConnMaxIdle   time.Duration
	DBAcquireWait   time.Duration

	// RequestTimeout is the per-request deadline applied by the server
	// interceptors when the client did not set one.
	RequestTimeout time.Duration

	// CredentialEncryptionKey encrypts embedder credentials at rest
	// (base64 or hex, 16/24/32 bytes decoded). Empty stores credentials
	// as plain text; intended for development only.
	CredentialEncryptionKey string

	// CredentialDecryptionKeys is a comma-separated list of retired keys
	// still accepted for decryption during key rotation.
	CredentialDecryptionKeys string

	// MetricsLabels is a comma-separated list of key=value pairs added as
	// constant labels to all Prometheus metrics. Values support ${VAR}
	// expansion. Defaults to "service=goodmem".
	MetricsLabels string

	// Server
	Listener           ListenerConfig
	ManagementListener ListenerConfig
	// ManagementListenerEnabled is true when --management-port (or
	// GOODMEM_MANAGEMENT_PORT) was explicitly provided. When false,
	// management endpoints are served on the main port.
	ManagementListenerEnabled bool
	// ManagementAccessLog enables HTTP access logging for management
	// endpoints (/health/live, /health/ready, /metrics). Disabled by
	// default to suppress high-frequency probe noise from the access log.
	ManagementAccessLog bool
	CORSEnabled         bool
	CORSOrigins         string

	// Body size limit for the REST surface (bytes).
	MaxBodySize int64

	// Graceful shutdown drain timeout (seconds).
	DrainTimeout int

	// Debug enables debug-level logging.
	Debug bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MigrateAtStart: true,
		DBMaxOpenConns: 25,
		DBMaxIdleConns: 5,
		DBConnMaxIdle:  5 * time.Minute,
		DBAcquireWait:  10 * time.Second,
		RequestTimeout: 30 * time.Second,
		Listener: ListenerConfig{
			Port:              8080,
			EnablePlainText:   true,
			EnableTLS:         true,
			ReadHeaderTimeout: 5 * time.Second,
		},
		ManagementListener: ListenerConfig{
			EnablePlainText: true,
			EnableTLS:       true,
		},
		MaxBodySize:  4 * 1024 * 1024,
		DrainTimeout: 30,
	}
}
