package grpcapi

import (
	"context"

	"github.com/charmbracelet/log"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type UserServer struct {
	pb.UnimplementedUserServiceServer
	Store store.Store
}

// GetUser looks up by id when user_id is set, by email otherwise, and
// returns the caller when both are empty. Callers without DISPLAY_USER_ANY
// may only target themselves.
func (s *UserServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if len(req.GetUserId()) > 0 {
		id, err := parseID(req.GetUserId(), "user_id")
		if err != nil {
			return nil, err
		}
		if req.GetEmail() != "" {
			log.Warn("GetUser called with both user_id and email; email ignored", "user_id", id)
		}
		if err := authorizeOwned(p, id, security.DisplayUserOwn, security.DisplayUserAny); err != nil {
			return nil, err
		}
		u, err := s.Store.GetUserByID(ctx, id)
		if err != nil {
			return nil, mapError(err)
		}
		return userToProto(u), nil
	}

	if email := req.GetEmail(); email != "" {
		// Emails compare byte-exact, same as the unique index.
		if !p.Has(security.DisplayUserAny) {
			if email != p.Email || !p.Has(security.DisplayUserOwn) {
				return nil, status.Error(codes.PermissionDenied, "permission denied")
			}
		}
		u, err := s.Store.GetUserByEmail(ctx, email)
		if err != nil {
			return nil, mapError(err)
		}
		return userToProto(u), nil
	}

	if err := authorizeOwned(p, p.UserID, security.DisplayUserOwn, security.DisplayUserAny); err != nil {
		return nil, err
	}
	u, err := s.Store.GetUserByID(ctx, p.UserID)
	if err != nil {
		return nil, mapError(err)
	}
	return userToProto(u), nil
}

func userToProto(u *store.User) *pb.User {
	return &pb.User{
		UserId:      ident.ToBytes(u.ID),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Username:    u.Username,
		CreatedAt:   ident.WireFromTime(u.CreatedAt),
		UpdatedAt:   ident.WireFromTime(u.UpdatedAt),
	}
}
