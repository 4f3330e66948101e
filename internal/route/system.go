package route

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
	"github.com/goodmem/goodmem/internal/store"
)

var ready atomic.Bool

// MarkReady signals that the service has finished initializing and is
// ready to serve traffic. Call this once StartServer has completed.
func MarkReady() {
	ready.Store(true)
}

// MountManagementRoutes mounts the operational endpoints. These carry no
// tenant data and are typically served on a separate listener.
func MountManagementRoutes(r *gin.Engine, st store.Store) {
	// Liveness: process is up.
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: startup finished and the database answers.
	r.GET("/health/ready", func(c *gin.Context) {
		if !ready.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
			return
		}
		if err := st.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Prometheus metrics.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

type apiInitializeSystemResponse struct {
	AlreadyInitialized bool   `json:"alreadyInitialized"`
	RootApiKey         string `json:"rootApiKey,omitempty"`
	UserId             string `json:"userId,omitempty"`
	Message            string `json:"message"`
}

func initializeSystem(c *gin.Context, svc *grpcapi.SystemServer) {
	resp, err := svc.InitializeSystem(c.Request.Context(), &pb.InitializeSystemRequest{})
	if err != nil {
		writeStatus(c, err)
		return
	}
	out := apiInitializeSystemResponse{
		AlreadyInitialized: resp.GetAlreadyInitialized(),
		RootApiKey:         resp.GetRootApiKey(),
		Message:            resp.GetMessage(),
	}
	if len(resp.GetUserId()) > 0 {
		out.UserId = textualID(resp.GetUserId())
	}
	c.JSON(http.StatusOK, out)
}
