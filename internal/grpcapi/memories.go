package grpcapi

import (
	"context"
	"strings"

	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type MemoryServer struct {
	pb.UnimplementedMemoryServiceServer
	Store store.Store
}

// CreateMemory records content for ingestion. The row starts PENDING; the
// external worker picks it up from there.
func (s *MemoryServer) CreateMemory(ctx context.Context, req *pb.CreateMemoryRequest) (*pb.Memory, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	spaceID, err := parseID(req.GetSpaceId(), "space_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetOriginalContentRef()) == "" {
		return nil, status.Error(codes.InvalidArgument, "original_content_ref is required")
	}
	sp, err := s.Store.GetSpace(ctx, spaceID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeInSpace(p, sp, security.CreateMemoryOwn, security.CreateMemoryAny, false,
		status.Errorf(codes.NotFound, "space not found: %s", spaceID)); err != nil {
		return nil, err
	}

	m := &store.Memory{
		SpaceID:            spaceID,
		OriginalContentRef: req.GetOriginalContentRef(),
		ContentType:        req.GetContentType(),
		Metadata:           req.GetMetadata(),
		ProcessingStatus:   store.ProcessingPending,
		CreatedByID:        p.UserID,
		UpdatedByID:        p.UserID,
	}
	created, err := s.Store.CreateMemory(ctx, m)
	if err != nil {
		return nil, mapError(err)
	}
	return memoryToProto(created), nil
}

func (s *MemoryServer) GetMemory(ctx context.Context, req *pb.GetMemoryRequest) (*pb.Memory, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetMemoryId(), "memory_id")
	if err != nil {
		return nil, err
	}
	m, err := s.Store.GetMemory(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	sp, err := s.Store.GetSpace(ctx, m.SpaceID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeInSpace(p, sp, security.DisplayMemoryOwn, security.DisplayMemoryAny, true,
		status.Errorf(codes.NotFound, "memory not found: %s", id)); err != nil {
		return nil, err
	}
	return memoryToProto(m), nil
}

func (s *MemoryServer) ListMemories(ctx context.Context, req *pb.ListMemoriesRequest) (*pb.ListMemoriesResponse, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	spaceID, err := parseID(req.GetSpaceId(), "space_id")
	if err != nil {
		return nil, err
	}
	sp, err := s.Store.GetSpace(ctx, spaceID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeInSpace(p, sp, security.DisplayMemoryOwn, security.DisplayMemoryAny, true,
		status.Errorf(codes.NotFound, "space not found: %s", spaceID)); err != nil {
		return nil, err
	}
	memories, err := s.Store.ListMemories(ctx, spaceID)
	if err != nil {
		return nil, mapError(err)
	}
	resp := &pb.ListMemoriesResponse{Memories: make([]*pb.Memory, 0, len(memories))}
	for i := range memories {
		resp.Memories = append(resp.Memories, memoryToProto(&memories[i]))
	}
	return resp, nil
}

func (s *MemoryServer) DeleteMemory(ctx context.Context, req *pb.DeleteMemoryRequest) (*emptypb.Empty, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetMemoryId(), "memory_id")
	if err != nil {
		return nil, err
	}
	m, err := s.Store.GetMemory(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	sp, err := s.Store.GetSpace(ctx, m.SpaceID)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeInSpace(p, sp, security.DeleteMemoryOwn, security.DeleteMemoryAny, false,
		status.Errorf(codes.NotFound, "memory not found: %s", id)); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteMemory(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

// authorizeInSpace checks a memory-family permission pair against the
// owning space. public_read substitutes for display permissions only.
// When the space itself is invisible to the caller the supplied hidden
// error is returned instead of PermissionDenied, so existence is not
// disclosed.
func authorizeInSpace(p *security.Principal, sp *store.Space, own, any security.Permission, publicOK bool, hidden error) error {
	if p.Has(any) {
		return nil
	}
	if sp.OwnerID == p.UserID {
		if p.Has(own) {
			return nil
		}
		return status.Error(codes.PermissionDenied, "permission denied")
	}
	if publicOK && sp.PublicRead {
		return nil
	}
	if spaceVisible(p, sp) {
		return status.Error(codes.PermissionDenied, "permission denied")
	}
	return hidden
}

func processingStatusToProto(ps store.ProcessingStatus) pb.ProcessingStatus {
	switch ps {
	case store.ProcessingPending:
		return pb.ProcessingStatus_PROCESSING_STATUS_PENDING
	case store.ProcessingProcessing:
		return pb.ProcessingStatus_PROCESSING_STATUS_PROCESSING
	case store.ProcessingCompleted:
		return pb.ProcessingStatus_PROCESSING_STATUS_COMPLETED
	case store.ProcessingFailed:
		return pb.ProcessingStatus_PROCESSING_STATUS_FAILED
	default:
		return pb.ProcessingStatus_PROCESSING_STATUS_UNSPECIFIED
	}
}

func memoryToProto(m *store.Memory) *pb.Memory {
	return &pb.Memory{
		MemoryId:           ident.ToBytes(m.ID),
		SpaceId:            ident.ToBytes(m.SpaceID),
		OriginalContentRef: m.OriginalContentRef,
		ContentType:        m.ContentType,
		Metadata:           m.Metadata,
		ProcessingStatus:   processingStatusToProto(m.ProcessingStatus),
		CreatedAt:          ident.WireFromTime(m.CreatedAt),
		UpdatedAt:          ident.WireFromTime(m.UpdatedAt),
		CreatedById:        ident.ToBytes(m.CreatedByID),
		UpdatedById:        ident.ToBytes(m.UpdatedByID),
	}
}
