package grpcapi

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/goodmem/goodmem/internal/apikey"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/store"
)

// Fixed identity of the bootstrap root user.
const (
	rootEmail       = "root@goodmem.ai"
	rootDisplayName = "System Root User"
	rootUsername    = "root"
)

// SystemServer carries the one method that runs without an API key.
type SystemServer struct {
	pb.UnimplementedSystemServiceServer
	Store store.Store
}

// InitializeSystem creates the root user and its API key on first call and
// is a no-op afterwards. The raw key appears only in the response of the
// call that won the creation; it is never recoverable later.
func (s *SystemServer) InitializeSystem(ctx context.Context, _ *pb.InitializeSystemRequest) (*pb.InitializeSystemResponse, error) {
	material, err := apikey.New()
	if err != nil {
		return nil, mapError(err)
	}
	user, _, created, err := s.Store.InitializeRoot(ctx, store.RootBootstrap{
		Email:       rootEmail,
		DisplayName: rootDisplayName,
		Username:    rootUsername,
		KeyPrefix:   material.Prefix,
		KeyHash:     material.Hash,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if !created {
		return &pb.InitializeSystemResponse{
			AlreadyInitialized: true,
			Message:            "System is already initialized",
		}, nil
	}
	log.Info("system initialized", "root_user_id", user.ID)
	return &pb.InitializeSystemResponse{
		RootApiKey: material.Raw,
		UserId:     ident.ToBytes(user.ID),
		Message:    "System initialized; store the root API key now, it cannot be retrieved again",
	}, nil
}
