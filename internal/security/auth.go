package security

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/apikey"
	"github.com/goodmem/goodmem/internal/store"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// HeaderAPIKey is the request header (and gRPC metadata key) carrying the
// caller's raw API key.
const HeaderAPIKey = "x-api-key"

// touchTimeout bounds the detached last-used write so it cannot pile up
// behind a slow database.
const touchTimeout = 5 * time.Second

// Principal is the resolved caller: the user the presented API key belongs
// to plus the permission set granted by that user's roles.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
	Roles       []store.RoleName

	perms        map[Permission]bool
	unrestricted bool
}

// NewPrincipal builds a Principal from a stored user and its roles.
func NewPrincipal(user store.User) *Principal {
	perms, unrestricted := permissionsForRoles(user.Roles)
	return &Principal{
		UserID:       user.ID,
		Email:        user.Email,
		DisplayName:  user.DisplayName,
		Roles:        user.Roles,
		perms:        perms,
		unrestricted: unrestricted,
	}
}

// Has reports whether the principal holds the given permission.
func (p *Principal) Has(perm Permission) bool {
	if p == nil {
		return false
	}
	if p.unrestricted {
		return true
	}
	return p.perms[perm]
}

// Unrestricted reports whether the principal bypasses ownership scoping
// entirely (ROOT and ADMIN roles).
func (p *Principal) Unrestricted() bool {
	return p != nil && p.unrestricted
}

// principalKey is the context key under which the resolved Principal is
// stored by the HTTP middleware and gRPC interceptors.
type principalKey struct{}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the Principal attached by the auth
// middleware or interceptor, or nil when the caller is unauthenticated.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}

// AuthStore is the slice of the data layer the resolver needs.
type AuthStore interface {
	GetApiKeyForAuth(ctx context.Context, hash []byte) (*store.AuthLookup, error)
	TouchApiKeyLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Resolver authenticates raw API keys against the store. It is created once
// at startup and shared by the HTTP middleware and the gRPC interceptors.
type Resolver struct {
	store AuthStore
}

// NewResolver creates a Resolver backed by the given store.
func NewResolver(s AuthStore) *Resolver {
	return &Resolver{store: s}
}

// Resolve authenticates raw API key material and returns the caller
// principal. Failures are UnauthenticatedError regardless of cause so the
// response does not reveal whether a key exists.
func (r *Resolver) Resolve(ctx context.Context, rawKey string) (*Principal, error) {
	if !apikey.ValidFormat(rawKey) {
		return nil, &store.UnauthenticatedError{Message: "invalid API key"}
	}

	lookup, err := r.store.GetApiKeyForAuth(ctx, apikey.HashRaw(rawKey))
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return nil, &store.UnauthenticatedError{Message: "invalid API key"}
		}
		return nil, err
	}

	now := time.Now()
	if !lookup.Key.Usable(now) {
		return nil, &store.UnauthenticatedError{Message: "API key is inactive or expired"}
	}

	r.touchLastUsed(lookup.Key.ID, now)
	return NewPrincipal(lookup.User), nil
}

// touchLastUsed records key usage off the request path. The write runs on a
// detached context so request cancellation does not lose it; failures only
// cost observability, so they log at debug.
func (r *Resolver) touchLastUsed(keyID uuid.UUID, at time.Time) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), touchTimeout)
		defer cancel()
		if err := r.store.TouchApiKeyLastUsed(ctx, keyID, at); err != nil {
			log.Debug("API key last-used update failed", "apiKeyID", keyID, "err", err)
		}
	}()
}

// --- Gin HTTP middleware ---

// AuthMiddleware returns a gin middleware that authenticates the x-api-key
// header and attaches the resulting principal to the request context.
// Requests without a valid key are rejected with 401.
func AuthMiddleware(resolver *Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(HeaderAPIKey))
		if raw == "" {
			log.Info("Auth rejected: missing x-api-key header", "method", c.Request.Method, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no API key provided"})
			return
		}

		p, err := resolver.Resolve(c.Request.Context(), raw)
		if err != nil {
			log.Info("Auth rejected", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}

		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// --- gRPC interceptors ---

// unauthenticatedMethods are the full gRPC method names served without an
// API key. Bootstrap is the only one: before it runs there is no key to
// present.
var unauthenticatedMethods = map[string]bool{
	"/goodmem.v1.SystemService/InitializeSystem": true,
}

// grpcMetadataValue extracts a single metadata value from the incoming gRPC context.
func grpcMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

// resolveGRPCPrincipal authenticates the x-api-key metadata entry and
// returns a context carrying the principal. Methods on the
// unauthenticated list pass through without resolution; everything else
// is rejected when the key is missing or does not resolve.
func resolveGRPCPrincipal(ctx context.Context, resolver *Resolver, fullMethod string) (context.Context, error) {
	if unauthenticatedMethods[fullMethod] {
		return ctx, nil
	}

	raw := strings.TrimSpace(grpcMetadataValue(ctx, HeaderAPIKey))
	if raw == "" {
		return nil, status.Error(codes.Unauthenticated, "no API key provided")
	}
	p, err := resolver.Resolve(ctx, raw)
	if err != nil {
		log.Debug("gRPC auth: API key resolution failed", "method", fullMethod, "err", err)
		return nil, status.Error(codes.Unauthenticated, "invalid API key")
	}
	return WithPrincipal(ctx, p), nil
}

// GRPCUnaryInterceptor returns a gRPC unary server interceptor that resolves
// the caller principal from request metadata.
func GRPCUnaryInterceptor(resolver *Resolver) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		ctx, err := resolveGRPCPrincipal(ctx, resolver, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// GRPCStreamInterceptor returns a gRPC stream server interceptor that
// resolves the caller principal from request metadata.
func GRPCStreamInterceptor(resolver *Resolver) grpc.StreamServerInterceptor {
	return func(
		srv any,
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		ctx, err := resolveGRPCPrincipal(ss.Context(), resolver, info.FullMethod)
		if err != nil {
			return err
		}
		wrapped := &wrappedServerStream{
			ServerStream: ss,
			ctx:          ctx,
		}
		return handler(srv, wrapped)
	}
}

// wrappedServerStream overrides Context() to return the enriched context.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}
