// Package route adapts the gRPC services to REST. Every endpoint is a 1:1
// mapping of a service method: the handler translates JSON and query
// parameters into the request message, invokes the same service struct the
// gRPC server registers, and renders the response with camelCase fields,
// 36-character textual ids, and epoch-millisecond timestamps.
package route

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/grpcapi"
	"github.com/goodmem/goodmem/internal/ident"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Services bundles the gRPC service implementations the REST surface
// delegates to.
type Services struct {
	System    *grpcapi.SystemServer
	Users     *grpcapi.UserServer
	ApiKeys   *grpcapi.ApiKeyServer
	Embedders *grpcapi.EmbedderServer
	Spaces    *grpcapi.SpaceServer
	Memories  *grpcapi.MemoryServer
}

// MountRoutes mounts the REST endpoints on the given router. The system
// bootstrap endpoint stays outside the auth group, mirroring the gRPC
// allow-list.
func MountRoutes(r *gin.Engine, svc Services, auth gin.HandlerFunc) {
	r.POST("/v1/system/init", func(c *gin.Context) { initializeSystem(c, svc.System) })

	g := r.Group("/v1", auth)

	g.GET("/users", func(c *gin.Context) { getUser(c, svc.Users) })
	g.GET("/users/:id", func(c *gin.Context) { getUser(c, svc.Users) })

	g.POST("/apikeys", func(c *gin.Context) { createApiKey(c, svc.ApiKeys) })
	g.GET("/apikeys", func(c *gin.Context) { listApiKeys(c, svc.ApiKeys) })
	g.PUT("/apikeys/:id", func(c *gin.Context) { updateApiKey(c, svc.ApiKeys) })
	g.DELETE("/apikeys/:id", func(c *gin.Context) { deleteApiKey(c, svc.ApiKeys) })

	g.POST("/embedders", func(c *gin.Context) { createEmbedder(c, svc.Embedders) })
	g.GET("/embedders", func(c *gin.Context) { listEmbedders(c, svc.Embedders) })
	g.GET("/embedders/:id", func(c *gin.Context) { getEmbedder(c, svc.Embedders) })
	g.PUT("/embedders/:id", func(c *gin.Context) { updateEmbedder(c, svc.Embedders) })
	g.DELETE("/embedders/:id", func(c *gin.Context) { deleteEmbedder(c, svc.Embedders) })

	g.POST("/spaces", func(c *gin.Context) { createSpace(c, svc.Spaces) })
	g.GET("/spaces", func(c *gin.Context) { listSpaces(c, svc.Spaces) })
	g.GET("/spaces/:id", func(c *gin.Context) { getSpace(c, svc.Spaces) })
	g.PUT("/spaces/:id", func(c *gin.Context) { updateSpace(c, svc.Spaces) })
	g.DELETE("/spaces/:id", func(c *gin.Context) { deleteSpace(c, svc.Spaces) })

	g.POST("/memories", func(c *gin.Context) { createMemory(c, svc.Memories) })
	g.GET("/memories", func(c *gin.Context) { listMemories(c, svc.Memories) })
	g.GET("/memories/:id", func(c *gin.Context) { getMemory(c, svc.Memories) })
	g.DELETE("/memories/:id", func(c *gin.Context) { deleteMemory(c, svc.Memories) })
}

// writeStatus renders a service error as its HTTP equivalent.
func writeStatus(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	var httpCode int
	switch st.Code() {
	case codes.InvalidArgument:
		httpCode = http.StatusBadRequest
	case codes.Unauthenticated:
		httpCode = http.StatusUnauthorized
	case codes.PermissionDenied:
		httpCode = http.StatusForbidden
	case codes.NotFound:
		httpCode = http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		httpCode = http.StatusConflict
	case codes.DeadlineExceeded:
		httpCode = http.StatusGatewayTimeout
	case codes.Canceled:
		// Client went away; nginx convention.
		httpCode = 499
	default:
		httpCode = http.StatusInternalServerError
	}
	c.JSON(httpCode, gin.H{"error": st.Message()})
}

// pathID converts the :id path parameter into the 16-byte wire form.
func pathID(c *gin.Context) ([]byte, bool) {
	b, err := ident.BinaryFromTextual(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return nil, false
	}
	return b, true
}

// queryID converts an optional 36-character query parameter.
func queryID(c *gin.Context, name string) ([]byte, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	b, err := ident.BinaryFromTextual(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return b, true
}

// bodyID converts a 36-character id carried in a JSON body.
func bodyID(c *gin.Context, v, field string) ([]byte, bool) {
	b, err := ident.BinaryFromTextual(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + field})
		return nil, false
	}
	return b, true
}

// queryInt parses an optional integer query parameter, defaulting to 0.
func queryInt(c *gin.Context, name string) (int32, bool) {
	v := c.Query(name)
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return int32(n), true
}

// labelSelectors gathers the repeated label.<key>=<value> parameters.
func labelSelectors(c *gin.Context) map[string]string {
	var out map[string]string
	for key, values := range c.Request.URL.Query() {
		name, ok := strings.CutPrefix(key, "label.")
		if !ok || name == "" || len(values) == 0 {
			continue
		}
		if out == nil {
			out = map[string]string{}
		}
		out[name] = values[len(values)-1]
	}
	return out
}

// labelsExclusive rejects bodies that set both replaceLabels and
// mergeLabels. The wire form carries them as a oneof, so only JSON can
// express the conflict. An empty map still counts as set; that is how a
// replace clears every label.
func labelsExclusive(c *gin.Context, replace, merge map[string]string) bool {
	if replace != nil && merge != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "replaceLabels and mergeLabels are mutually exclusive"})
		return false
	}
	return true
}

func errInvalidEnum(field, value string) error {
	return fmt.Errorf("invalid %s: %q", field, value)
}

func textualID(b []byte) string {
	s, err := ident.TextualFromBinary(b)
	if err != nil {
		return ""
	}
	return s
}

func millis(ts *timestamppb.Timestamp) int64 {
	if ts == nil {
		return 0
	}
	return ts.AsTime().UnixMilli()
}

func millisPtr(ts *timestamppb.Timestamp) *int64 {
	if ts == nil {
		return nil
	}
	v := ts.AsTime().UnixMilli()
	return &v
}

func millisToWire(v *int64) *timestamppb.Timestamp {
	if v == nil {
		return nil
	}
	return timestamppb.New(time.UnixMilli(*v).UTC())
}
