package grpcapi

import (
	"context"
	"unicode/utf8"

	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type SpaceServer struct {
	pb.UnimplementedSpaceServiceServer
	Store store.Store
}

func (s *SpaceServer) CreateSpace(ctx context.Context, req *pb.CreateSpaceRequest) (*pb.Space, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if n := utf8.RuneCountInString(req.GetName()); n < 1 || n > 255 {
		return nil, status.Error(codes.InvalidArgument, "name must be between 1 and 255 characters")
	}
	embedderID, err := parseID(req.GetEmbedderId(), "embedder_id")
	if err != nil {
		return nil, err
	}
	ownerID := p.UserID
	if len(req.GetOwnerId()) > 0 {
		id, err := parseID(req.GetOwnerId(), "owner_id")
		if err != nil {
			return nil, err
		}
		ownerID = id
	}
	if err := authorizeOwned(p, ownerID, security.CreateSpaceOwn, security.CreateSpaceAny); err != nil {
		return nil, err
	}

	sp := &store.Space{
		Name:        req.GetName(),
		Labels:      req.GetLabels(),
		EmbedderID:  embedderID,
		OwnerID:     ownerID,
		PublicRead:  req.GetPublicRead(),
		CreatedByID: p.UserID,
		UpdatedByID: p.UserID,
	}
	created, err := s.Store.CreateSpace(ctx, sp)
	if err != nil {
		return nil, mapError(err)
	}
	return spaceToProto(created), nil
}

// GetSpace hides spaces the caller cannot read: the response for a space
// that exists but is not visible is the same NotFound as for one that
// does not exist.
func (s *SpaceServer) GetSpace(ctx context.Context, req *pb.GetSpaceRequest) (*pb.Space, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetSpaceId(), "space_id")
	if err != nil {
		return nil, err
	}
	sp, err := s.Store.GetSpace(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if !spaceVisible(p, sp) {
		return nil, status.Errorf(codes.NotFound, "space not found: %s", id)
	}
	return spaceToProto(sp), nil
}

// ListSpaces pages through the caller's visible spaces. A supplied
// next_token replays the original request: its filters, sort, and page
// size all come from the token and the other request fields are ignored.
func (s *SpaceServer) ListSpaces(ctx context.Context, req *pb.ListSpacesRequest) (*pb.ListSpacesResponse, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.Has(security.DisplaySpaceOwn) && !p.Has(security.DisplaySpaceAny) {
		return nil, status.Error(codes.PermissionDenied, "permission denied")
	}

	token := store.PageToken{
		RequestorID:    p.UserID,
		PageSize:       store.NormalizePageSize(int(req.GetMaxResults())),
		LabelSelectors: req.GetLabelSelectors(),
		NameFilter:     req.GetNameFilter(),
		SortBy:         store.NormalizeSortBy(req.GetSortBy()),
		SortOrder:      "asc",
	}
	if req.GetSortOrder() == pb.SortOrder_SORT_ORDER_DESCENDING {
		token.SortOrder = "desc"
	}
	if len(req.GetOwnerId()) > 0 {
		id, err := parseID(req.GetOwnerId(), "owner_id")
		if err != nil {
			return nil, err
		}
		token.OwnerFilter = &id
	}
	if raw := req.GetNextToken(); raw != "" {
		decoded, err := store.DecodePageToken(raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid next_token")
		}
		if decoded.RequestorID != p.UserID {
			return nil, status.Error(codes.InvalidArgument, "next_token was issued to a different caller")
		}
		token = *decoded
	}

	q := store.SpaceQuery{
		OwnerFilter:    token.OwnerFilter,
		LabelSelectors: token.LabelSelectors,
		SortBy:         token.SortBy,
		SortAscending:  token.SortOrder != "desc",
		Offset:         token.Offset,
		PageSize:       store.NormalizePageSize(token.PageSize),
		IncludePublic:  true,
		RequestorID:    p.UserID,
		Unrestricted:   p.Has(security.DisplaySpaceAny),
	}
	if token.NameFilter != "" {
		q.NameLike = store.GlobToLike(token.NameFilter)
	}

	page, err := s.Store.QuerySpaces(ctx, q)
	if err != nil {
		return nil, mapError(err)
	}

	resp := &pb.ListSpacesResponse{Spaces: make([]*pb.Space, 0, len(page.Spaces))}
	for i := range page.Spaces {
		resp.Spaces = append(resp.Spaces, spaceToProto(&page.Spaces[i]))
	}
	if int64(token.Offset+len(page.Spaces)) < page.TotalCount {
		token.Offset += len(page.Spaces)
		next, err := store.EncodePageToken(token)
		if err != nil {
			return nil, mapError(err)
		}
		resp.NextToken = next
	}
	return resp, nil
}

func (s *SpaceServer) UpdateSpace(ctx context.Context, req *pb.UpdateSpaceRequest) (*pb.Space, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetSpaceId(), "space_id")
	if err != nil {
		return nil, err
	}
	sp, err := s.Store.GetSpace(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, sp.OwnerID, security.UpdateSpaceOwn, security.UpdateSpaceAny); err != nil {
		return nil, err
	}

	upd := store.SpaceUpdate{
		PublicRead:  req.PublicRead,
		Labels:      labelUpdateFrom(req.GetReplaceLabels(), req.GetMergeLabels()),
		UpdatedByID: p.UserID,
	}
	if req.Name != nil {
		if n := utf8.RuneCountInString(req.GetName()); n < 1 || n > 255 {
			return nil, status.Error(codes.InvalidArgument, "name must be between 1 and 255 characters")
		}
		upd.Name = req.Name
	}
	updated, err := s.Store.UpdateSpace(ctx, id, upd)
	if err != nil {
		return nil, mapError(err)
	}
	return spaceToProto(updated), nil
}

// DeleteSpace removes the space and everything in it, cascading through
// memories and chunks in one transaction.
func (s *SpaceServer) DeleteSpace(ctx context.Context, req *pb.DeleteSpaceRequest) (*emptypb.Empty, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetSpaceId(), "space_id")
	if err != nil {
		return nil, err
	}
	sp, err := s.Store.GetSpace(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, sp.OwnerID, security.DeleteSpaceOwn, security.DeleteSpaceAny); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteSpace(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

// spaceVisible reports whether the caller may read the space: owners
// holding DISPLAY_SPACE_OWN, anyone holding DISPLAY_SPACE_ANY, and
// everyone for public_read spaces.
func spaceVisible(p *security.Principal, sp *store.Space) bool {
	if sp.PublicRead || p.Has(security.DisplaySpaceAny) {
		return true
	}
	return sp.OwnerID == p.UserID && p.Has(security.DisplaySpaceOwn)
}

func spaceToProto(sp *store.Space) *pb.Space {
	return &pb.Space{
		SpaceId:     ident.ToBytes(sp.ID),
		Name:        sp.Name,
		Labels:      sp.Labels,
		EmbedderId:  ident.ToBytes(sp.EmbedderID),
		OwnerId:     ident.ToBytes(sp.OwnerID),
		PublicRead:  sp.PublicRead,
		CreatedAt:   ident.WireFromTime(sp.CreatedAt),
		UpdatedAt:   ident.WireFromTime(sp.UpdatedAt),
		CreatedById: ident.ToBytes(sp.CreatedByID),
		UpdatedById: ident.ToBytes(sp.UpdatedByID),
	}
}
