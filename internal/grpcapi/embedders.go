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

const defaultApiPath = "/v1/embeddings"

type EmbedderServer struct {
	pb.UnimplementedEmbedderServiceServer
	Store store.Store
}

func (s *EmbedderServer) CreateEmbedder(ctx context.Context, req *pb.CreateEmbedderRequest) (*pb.Embedder, error) {
	p, err := requirePrincipal(ctx)
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
	if err := authorizeOwned(p, ownerID, security.CreateEmbedderOwn, security.CreateEmbedderAny); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.GetDisplayName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "display_name is required")
	}
	providerType, err := providerTypeFromProto(req.GetProviderType())
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetEndpointUrl()) == "" {
		return nil, status.Error(codes.InvalidArgument, "endpoint_url is required")
	}
	if strings.TrimSpace(req.GetModelIdentifier()) == "" {
		return nil, status.Error(codes.InvalidArgument, "model_identifier is required")
	}
	if req.GetDimensionality() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "dimensionality must be positive")
	}
	if req.GetCredentials() == "" {
		return nil, status.Error(codes.InvalidArgument, "credentials are required")
	}

	apiPath := req.GetApiPath()
	if apiPath == "" {
		apiPath = defaultApiPath
	}
	modalities, err := modalitiesFromProto(req.GetSupportedModalities())
	if err != nil {
		return nil, err
	}
	if len(modalities) == 0 {
		modalities = []store.Modality{store.ModalityText}
	}

	e := &store.Embedder{
		DisplayName:         req.GetDisplayName(),
		Description:         req.GetDescription(),
		ProviderType:        providerType,
		EndpointURL:         req.GetEndpointUrl(),
		ApiPath:             apiPath,
		ModelIdentifier:     req.GetModelIdentifier(),
		Dimensionality:      int(req.GetDimensionality()),
		SupportedModalities: modalities,
		Credentials:         req.GetCredentials(),
		Labels:              req.GetLabels(),
		Version:             req.GetVersion(),
		MonitoringEndpoint:  req.GetMonitoringEndpoint(),
		OwnerID:             ownerID,
		CreatedByID:         p.UserID,
		UpdatedByID:         p.UserID,
	}
	if req.MaxSequenceLength != nil {
		v := int(req.GetMaxSequenceLength())
		if v <= 0 {
			return nil, status.Error(codes.InvalidArgument, "max_sequence_length must be positive")
		}
		e.MaxSequenceLength = &v
	}
	created, err := s.Store.CreateEmbedder(ctx, e)
	if err != nil {
		return nil, mapError(err)
	}
	return embedderToProto(created, true), nil
}

// GetEmbedder returns the embedder including its credentials; only owners
// and DISPLAY_EMBEDDER_ANY holders get this far.
func (s *EmbedderServer) GetEmbedder(ctx context.Context, req *pb.GetEmbedderRequest) (*pb.Embedder, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetEmbedderId(), "embedder_id")
	if err != nil {
		return nil, err
	}
	e, err := s.Store.GetEmbedder(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, e.OwnerID, security.DisplayEmbedderOwn, security.DisplayEmbedderAny); err != nil {
		return nil, err
	}
	return embedderToProto(e, true), nil
}

// ListEmbedders filters by owner, provider type, and labels. Callers
// without DISPLAY_EMBEDDER_ANY are pinned to their own embedders, and
// credentials are always stripped from list responses.
func (s *EmbedderServer) ListEmbedders(ctx context.Context, req *pb.ListEmbeddersRequest) (*pb.ListEmbeddersResponse, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}

	q := store.EmbedderQuery{LabelSelectors: req.GetLabelSelectors()}
	if len(req.GetOwnerId()) > 0 {
		id, err := parseID(req.GetOwnerId(), "owner_id")
		if err != nil {
			return nil, err
		}
		q.OwnerID = &id
	}
	if req.GetProviderType() != pb.ProviderType_PROVIDER_TYPE_UNSPECIFIED {
		pt, err := providerTypeFromProto(req.GetProviderType())
		if err != nil {
			return nil, err
		}
		q.ProviderType = &pt
	}

	switch {
	case p.Has(security.DisplayEmbedderAny):
	case p.Has(security.DisplayEmbedderOwn):
		if q.OwnerID != nil && *q.OwnerID != p.UserID {
			return nil, status.Error(codes.PermissionDenied, "permission denied")
		}
		owner := p.UserID
		q.OwnerID = &owner
	default:
		return nil, status.Error(codes.PermissionDenied, "permission denied")
	}

	embedders, err := s.Store.ListEmbedders(ctx, q)
	if err != nil {
		return nil, mapError(err)
	}
	resp := &pb.ListEmbeddersResponse{Embedders: make([]*pb.Embedder, 0, len(embedders))}
	for i := range embedders {
		resp.Embedders = append(resp.Embedders, embedderToProto(&embedders[i], false))
	}
	return resp, nil
}

// UpdateEmbedder applies optional-field updates. provider_type is
// immutable and supported_modalities replace the stored set when non-empty.
func (s *EmbedderServer) UpdateEmbedder(ctx context.Context, req *pb.UpdateEmbedderRequest) (*pb.Embedder, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetEmbedderId(), "embedder_id")
	if err != nil {
		return nil, err
	}
	if req.GetProviderType() != pb.ProviderType_PROVIDER_TYPE_UNSPECIFIED {
		return nil, status.Error(codes.InvalidArgument, "provider_type cannot be changed")
	}
	e, err := s.Store.GetEmbedder(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, e.OwnerID, security.UpdateEmbedderOwn, security.UpdateEmbedderAny); err != nil {
		return nil, err
	}

	upd := store.EmbedderUpdate{
		Description:        req.Description,
		ApiPath:            req.ApiPath,
		Credentials:        req.Credentials,
		Version:            req.Version,
		MonitoringEndpoint: req.MonitoringEndpoint,
		Labels:             labelUpdateFrom(req.GetReplaceLabels(), req.GetMergeLabels()),
		UpdatedByID:        p.UserID,
	}
	if req.DisplayName != nil {
		if strings.TrimSpace(req.GetDisplayName()) == "" {
			return nil, status.Error(codes.InvalidArgument, "display_name cannot be empty")
		}
		upd.DisplayName = req.DisplayName
	}
	if req.EndpointUrl != nil {
		if strings.TrimSpace(req.GetEndpointUrl()) == "" {
			return nil, status.Error(codes.InvalidArgument, "endpoint_url cannot be empty")
		}
		upd.EndpointURL = req.EndpointUrl
	}
	if req.ModelIdentifier != nil {
		if strings.TrimSpace(req.GetModelIdentifier()) == "" {
			return nil, status.Error(codes.InvalidArgument, "model_identifier cannot be empty")
		}
		upd.ModelIdentifier = req.ModelIdentifier
	}
	if req.Dimensionality != nil {
		v := int(req.GetDimensionality())
		if v <= 0 {
			return nil, status.Error(codes.InvalidArgument, "dimensionality must be positive")
		}
		upd.Dimensionality = &v
	}
	if req.MaxSequenceLength != nil {
		v := int(req.GetMaxSequenceLength())
		if v <= 0 {
			return nil, status.Error(codes.InvalidArgument, "max_sequence_length must be positive")
		}
		upd.MaxSequenceLength = &v
	}
	if len(req.GetSupportedModalities()) > 0 {
		modalities, err := modalitiesFromProto(req.GetSupportedModalities())
		if err != nil {
			return nil, err
		}
		upd.Modalities = modalities
	}

	updated, err := s.Store.UpdateEmbedder(ctx, id, upd)
	if err != nil {
		return nil, mapError(err)
	}
	return embedderToProto(updated, true), nil
}

func (s *EmbedderServer) DeleteEmbedder(ctx context.Context, req *pb.DeleteEmbedderRequest) (*emptypb.Empty, error) {
	p, err := requirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.GetEmbedderId(), "embedder_id")
	if err != nil {
		return nil, err
	}
	e, err := s.Store.GetEmbedder(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	if err := authorizeOwned(p, e.OwnerID, security.DeleteEmbedderOwn, security.DeleteEmbedderAny); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteEmbedder(ctx, id); err != nil {
		return nil, mapError(err)
	}
	return &emptypb.Empty{}, nil
}

func providerTypeFromProto(pt pb.ProviderType) (store.ProviderType, error) {
	switch pt {
	case pb.ProviderType_PROVIDER_TYPE_OPENAI:
		return store.ProviderOpenAI, nil
	case pb.ProviderType_PROVIDER_TYPE_VLLM:
		return store.ProviderVLLM, nil
	case pb.ProviderType_PROVIDER_TYPE_TEI:
		return store.ProviderTEI, nil
	default:
		return "", status.Error(codes.InvalidArgument, "provider_type is required")
	}
}

func providerTypeToProto(pt store.ProviderType) pb.ProviderType {
	switch pt {
	case store.ProviderOpenAI:
		return pb.ProviderType_PROVIDER_TYPE_OPENAI
	case store.ProviderVLLM:
		return pb.ProviderType_PROVIDER_TYPE_VLLM
	case store.ProviderTEI:
		return pb.ProviderType_PROVIDER_TYPE_TEI
	default:
		return pb.ProviderType_PROVIDER_TYPE_UNSPECIFIED
	}
}

func modalityFromProto(m pb.Modality) (store.Modality, error) {
	switch m {
	case pb.Modality_MODALITY_TEXT:
		return store.ModalityText, nil
	case pb.Modality_MODALITY_IMAGE:
		return store.ModalityImage, nil
	case pb.Modality_MODALITY_AUDIO:
		return store.ModalityAudio, nil
	case pb.Modality_MODALITY_VIDEO:
		return store.ModalityVideo, nil
	default:
		return "", status.Error(codes.InvalidArgument, "invalid modality")
	}
}

func modalitiesFromProto(ms []pb.Modality) ([]store.Modality, error) {
	if len(ms) == 0 {
		return nil, nil
	}
	out := make([]store.Modality, 0, len(ms))
	for _, m := range ms {
		converted, err := modalityFromProto(m)
		if err != nil {
			return nil, err
		}
		out = append(out, converted)
	}
	return out, nil
}

func modalityToProto(m store.Modality) pb.Modality {
	switch m {
	case store.ModalityText:
		return pb.Modality_MODALITY_TEXT
	case store.ModalityImage:
		return pb.Modality_MODALITY_IMAGE
	case store.ModalityAudio:
		return pb.Modality_MODALITY_AUDIO
	case store.ModalityVideo:
		return pb.Modality_MODALITY_VIDEO
	default:
		return pb.Modality_MODALITY_UNSPECIFIED
	}
}

func embedderToProto(e *store.Embedder, includeCredentials bool) *pb.Embedder {
	out := &pb.Embedder{
		EmbedderId:         ident.ToBytes(e.ID),
		DisplayName:        e.DisplayName,
		Description:        e.Description,
		ProviderType:       providerTypeToProto(e.ProviderType),
		EndpointUrl:        e.EndpointURL,
		ApiPath:            e.ApiPath,
		ModelIdentifier:    e.ModelIdentifier,
		Dimensionality:     int32(e.Dimensionality),
		Labels:             e.Labels,
		Version:            e.Version,
		MonitoringEndpoint: e.MonitoringEndpoint,
		OwnerId:            ident.ToBytes(e.OwnerID),
		CreatedAt:          ident.WireFromTime(e.CreatedAt),
		UpdatedAt:          ident.WireFromTime(e.UpdatedAt),
		CreatedById:        ident.ToBytes(e.CreatedByID),
		UpdatedById:        ident.ToBytes(e.UpdatedByID),
	}
	if e.MaxSequenceLength != nil {
		v := int32(*e.MaxSequenceLength)
		out.MaxSequenceLength = &v
	}
	if len(e.SupportedModalities) > 0 {
		out.SupportedModalities = make([]pb.Modality, 0, len(e.SupportedModalities))
		for _, m := range e.SupportedModalities {
			out.SupportedModalities = append(out.SupportedModalities, modalityToProto(m))
		}
	}
	if includeCredentials {
		out.Credentials = e.Credentials
	}
	return out
}
