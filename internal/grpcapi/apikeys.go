package grpcapi

import (
	"context"

	"github.com/goodmem/goodmem/internal/apikey"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type ApiKeyServer struct {
	pb.UnimplementedApiKeyServiceServer
	Store store.Store
}

// CreateApiKey mints a key for the caller. The raw key is returned exactly
// once; only its SHA3-256 hash and display prefix are stored.
func (s *ApiKeyServer) CreateApiKey(ctx context.Context, req *pb.CreateApiKeyRequest) (*pb.CreateApiKeyResponse, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwned(p, p.UserID, security.CreateApiKeyOwn, security.CreateApiKeyAny); err != nil {
		return nil, err
	}
	material, err := apikey.New()
	if err != nil {
		return nil, mapError(err)
	}
	key := &store.ApiKey{
		UserID:      p.UserID,
		KeyPrefix:   material.Prefix,
		HashedKey:   material.Hash,
		Status:      store.ApiKeyActive,
		Labels:      req.GetLabels(),
		CreatedByID: p.UserID,
		UpdatedByID: p.UserID,
	}
	if req.GetExpiresAt() != nil {
		at, err := ident.TimeFromWire(req.GetExpiresAt())
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid expires_at")
		}
		key.ExpiresAt = &at
	}
	created, err := s.Store.CreateApiKey(ctx, key)
	if err != nil {
		return nil, mapError(err)
	}
	return &pb.CreateApiKeyResponse{
		ApiKeyMetadata: apiKeyToProto(created),
		RawApiKey:      material.Raw,
	}, nil
}

// ListApiKeys returns the caller's keys. Raw keys and hashes are never
// included.
func (s *ApiKeyServer) ListApiKeys(ctx context.Context, _ *pb.ListApiKeysRequest) (*pb.ListApiKeysResponse, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwned(p, p.UserID, security.DisplayApiKeyOwn, security.DisplayApiKeyAny); err != nil {
		return nil, err
	}
	keys, err := s.Store.ListApiKeysByUser(ctx, p.UserID)
	if err != nil {
		return nil, mapError(err)
	}
	resp := &pb.ListApiKeysResponse{Keys: make([]*pb.ApiKey, 0, len(keys))}
	for i := range keys {
		resp.Keys = append(resp.Keys, apiKeyToProto(&keys[i]))
	}
	return resp, nil
}

func (s *ApiKeyServer) UpdateApiKey(ctx context.Context, req *pb.UpdateApiKeyRequest) (*pb.ApiKey, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetApiKeyId(), "api_key_id")
	if err != nil {
		return nil, err
	}
	key, err := s.Store.GetApiKey(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, key.UserID, security.UpdateApiKeyOwn, security.UpdateApiKeyAny); err != nil {
		return nil, err
	}

	upd := store.ApiKeyUpdate{
		Labels:      labelUpdateFrom(req.GetReplaceLabels(), req.GetMergeLabels()),
		UpdatedByID: p.UserID,
	}
	if req.Status != nil {
		st, err := apiKeyStatusFromProto(req.GetStatus())
		if err != nil {
			return nil, err
		}
		upd.Status = &st
	}
	updated, err := s.Store.UpdateApiKey(ctx, id, upd)
	if err != nil {
		return nil, mapError(err)
	}
	return apiKeyToProto(updated), nil
}

func (s *ApiKeyServer) DeleteApiKey(ctx context.Context, req *pb.DeleteApiKeyRequest) (*emptypb.Empty, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetApiKeyId(), "api_key_id")
	if err != nil {
		return nil, err
	}
	key, err := s.Store.GetApiKey(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, key.UserID, security.DeleteApiKeyOwn, security.DeleteApiKeyAny); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteApiKey(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

func apiKeyStatusFromProto(st pb.Status) (store.ApiKeyStatus, error) {
	switch st {
	case pb.Status_STATUS_ACTIVE:
		return store.ApiKeyActive, nil
	case pb.Status_STATUS_INACTIVE:
		return store.ApiKeyInactive, nil
	default:
		return "", status.Error(codes.InvalidArgument, "invalid status")
	}
}

func apiKeyStatusToProto(st store.ApiKeyStatus) pb.Status {
	switch st {
	case store.ApiKeyActive:
		return pb.Status_STATUS_ACTIVE
	case store.ApiKeyInactive:
		return pb.Status_STATUS_INACTIVE
	default:
		return pb.Status_STATUS_UNSPECIFIED
	}
}

func apiKeyToProto(k *store.ApiKey) *pb.ApiKey {
	return &pb.ApiKey{
		ApiKeyId:    ident.ToBytes(k.ID),
		UserId:      ident.ToBytes(k.UserID),
		KeyPrefix:   k.KeyPrefix,
		Status:      apiKeyStatusToProto(k.Status),
		Labels:      k.Labels,
		ExpiresAt:   ident.WireFromTimePtr(k.ExpiresAt),
		LastUsedAt:  ident.WireFromTimePtr(k.LastUsedAt),
		CreatedAt:   ident.WireFromTime(k.CreatedAt),
		UpdatedAt:   ident.WireFromTime(k.UpdatedAt),
		CreatedById: ident.ToBytes(k.CreatedByID),
		UpdatedById: ident.ToBytes(k.UpdatedByID),
	}
}
