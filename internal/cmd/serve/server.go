package serve

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/config"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
	"github.com/goodmem/goodmem/internal/route"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	storemetrics "github.com/goodmem/goodmem/internal/store/metrics"
	"github.com/goodmem/goodmem/internal/store/postgres"
	"google.golang.org/grpc"
)

// Server holds the running server and its subsystems.
type Server struct {
	Config          *config.Config
	Store           store.Store
	Router          *gin.Engine
	GRPCServer      *grpc.Server
	Running         *RunningServers
	closeManagement func(context.Context) error
}

// Shutdown drains in-flight requests, stops the listeners, and closes the
// store.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.closeManagement != nil {
		_ = s.closeManagement(ctx)
	}
	err := s.Running.Close(ctx)
	if cerr := s.Store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// StartServer wires every subsystem and starts serving REST and gRPC on a
// single port. Use port 0 for an OS-assigned port; the bound port is
// Server.Running.Port.
func StartServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	log.Info("Starting goodmem server",
		"port", cfg.Listener.Port,
		"migrateAtStart", cfg.MigrateAtStart,
	)

	// Initialize Prometheus metrics with configured constant labels.
	metricsLabels, err := security.ParseMetricsLabels(cfg.MetricsLabels)
	if err != nil {
		return nil, fmt.Errorf("invalid --metrics-labels: %w", err)
	}
	security.InitMetrics(metricsLabels)

	if cfg.MigrateAtStart {
		if err := postgres.Migrate(ctx, cfg); err != nil {
			return nil, fmt.Errorf("migrations failed: %w", err)
		}
	}

	pg, err := postgres.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	st := storemetrics.Wrap(pg)

	resolver := security.NewResolver(st)
	svc := route.Services{
		System:    &grpcapi.SystemServer{Store: st},
		Users:     &grpcapi.UserServer{Store: st},
		ApiKeys:   &grpcapi.ApiKeyServer{Store: st},
		Embedders: &grpcapi.EmbedderServer{Store: st},
		Spaces:    &grpcapi.SpaceServer{Store: st},
		Memories:  &grpcapi.MemoryServer{Store: st},
	}

	// REST surface.
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.ManagementAccessLog {
		router.Use(security.AccessLogMiddleware())
	} else {
		router.Use(security.AccessLogMiddleware("/health/live", "/health/ready", "/metrics"))
	}
	router.Use(security.MetricsMiddleware())
	router.Use(maxBodySizeMiddleware(cfg.MaxBodySize))
	if cfg.CORSEnabled {
		router.Use(corsMiddleware(cfg.CORSOrigins))
	}
	route.MountRoutes(router, svc, security.AuthMiddleware(resolver))

	// gRPC surface over the same services.
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			security.GRPCRecoveryInterceptor(),
			security.GRPCMetricsInterceptor(),
			security.GRPCLogInterceptor(),
			security.GRPCTimeoutInterceptor(cfg.RequestTimeout),
			security.GRPCUnaryInterceptor(resolver),
		),
		grpc.ChainStreamInterceptor(security.GRPCStreamInterceptor(resolver)),
	)
	pb.RegisterSystemServiceServer(grpcServer, svc.System)
	pb.RegisterUserServiceServer(grpcServer, svc.Users)
	pb.RegisterApiKeyServiceServer(grpcServer, svc.ApiKeys)
	pb.RegisterEmbedderServiceServer(grpcServer, svc.Embedders)
	pb.RegisterSpaceServiceServer(grpcServer, svc.Spaces)
	pb.RegisterMemoryServiceServer(grpcServer, svc.Memories)

	// Management endpoints go on a dedicated listener when one is
	// configured, otherwise on the main router.
	var closeManagement func(context.Context) error
	if cfg.ManagementListenerEnabled {
		mgmtRouter := gin.New()
		mgmtRouter.Use(gin.Recovery())
		if cfg.ManagementAccessLog {
			mgmtRouter.Use(security.AccessLogMiddleware())
		}
		route.MountManagementRoutes(mgmtRouter, st)

		// Management listener shares TLS cert/key with the main listener.
		mgmtCfg := cfg.ManagementListener
		mgmtCfg.TLSCertFile = cfg.Listener.TLSCertFile
		mgmtCfg.TLSKeyFile = cfg.Listener.TLSKeyFile
		mgmt, err := startManagementServer(mgmtCfg, mgmtRouter)
		if err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to start management server: %w", err)
		}
		closeManagement = mgmt.Close
	} else {
		route.MountManagementRoutes(router, st)
	}

	running, err := StartSinglePortHTTPAndGRPC(cfg.Listener, router, grpcServer)
	if err != nil {
		if closeManagement != nil {
			_ = closeManagement(ctx)
		}
		_ = st.Close()
		return nil, err
	}

	log.Info("Server listening",
		"port", running.Port,
		"plaintext", cfg.Listener.EnablePlainText,
		"tls", cfg.Listener.EnableTLS,
	)

	route.MarkReady()
	return &Server{
		Config:          cfg,
		Store:           st,
		Router:          router,
		GRPCServer:      grpcServer,
		Running:         running,
		closeManagement: closeManagement,
	}, nil
}
