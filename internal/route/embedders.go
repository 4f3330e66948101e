package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
)

type apiEmbedder struct {
	EmbedderId          string            `json:"embedderId"`
	DisplayName         string            `json:"displayName"`
	Description         string            `json:"description,omitempty"`
	ProviderType        string            `json:"providerType"`
	EndpointUrl         string            `json:"endpointUrl"`
	ApiPath             string            `json:"apiPath"`
	ModelIdentifier     string            `json:"modelIdentifier"`
	Dimensionality      int32             `json:"dimensionality"`
	MaxSequenceLength   *int32            `json:"maxSequenceLength,omitempty"`
	SupportedModalities []string          `json:"supportedModalities"`
	Credentials         string            `json:"credentials,omitempty"`
	Labels              map[string]string `json:"labels,omitempty"`
	Version             string            `json:"version,omitempty"`
	MonitoringEndpoint  string            `json:"monitoringEndpoint,omitempty"`
	OwnerId             string            `json:"ownerId"`
	CreatedAt           int64             `json:"createdAt"`
	UpdatedAt           int64             `json:"updatedAt"`
	CreatedById         string            `json:"createdById"`
	UpdatedById         string            `json:"updatedById"`
}

type createEmbedderBody struct {
	DisplayName         string            `json:"displayName"`
	Description         string            `json:"description"`
	ProviderType        string            `json:"providerType"`
	EndpointUrl         string            `json:"endpointUrl"`
	ApiPath             string            `json:"apiPath"`
	ModelIdentifier     string            `json:"modelIdentifier"`
	Dimensionality      int32             `json:"dimensionality"`
	MaxSequenceLength   *int32            `json:"maxSequenceLength"`
	SupportedModalities []string          `json:"supportedModalities"`
	Credentials         string            `json:"credentials"`
	Labels              map[string]string `json:"labels"`
	Version             string            `json:"version"`
	MonitoringEndpoint  string            `json:"monitoringEndpoint"`
	OwnerId             string            `json:"ownerId"`
}

type updateEmbedderBody struct {
	DisplayName         *string           `json:"displayName"`
	Description         *string           `json:"description"`
	ProviderType        *string           `json:"providerType"`
	EndpointUrl         *string           `json:"endpointUrl"`
	ApiPath             *string           `json:"apiPath"`
	ModelIdentifier     *string           `json:"modelIdentifier"`
	Dimensionality      *int32            `json:"dimensionality"`
	MaxSequenceLength   *int32            `json:"maxSequenceLength"`
	SupportedModalities []string          `json:"supportedModalities"`
	Credentials         *string           `json:"credentials"`
	Version             *string           `json:"version"`
	MonitoringEndpoint  *string           `json:"monitoringEndpoint"`
	ReplaceLabels       map[string]string `json:"replaceLabels"`
	MergeLabels         map[string]string `json:"mergeLabels"`
}

func createEmbedder(c *gin.Context, svc *grpcapi.EmbedderServer) {
	var body createEmbedderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := &pb.CreateEmbedderRequest{
		DisplayName:        body.DisplayName,
		Description:        body.Description,
		EndpointUrl:        body.EndpointUrl,
		ApiPath:            body.ApiPath,
		ModelIdentifier:    body.ModelIdentifier,
		Dimensionality:     body.Dimensionality,
		MaxSequenceLength:  body.MaxSequenceLength,
		Credentials:        body.Credentials,
		Labels:             body.Labels,
		Version:            body.Version,
		MonitoringEndpoint: body.MonitoringEndpoint,
	}
	if body.ProviderType != "" {
		pt, err := providerTypeFromString(body.ProviderType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.ProviderType = pt
	}
	mods, err := modalitiesFromStrings(body.SupportedModalities)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SupportedModalities = mods
	if body.OwnerId != "" {
		owner, ok := bodyID(c, body.OwnerId, "ownerId")
		if !ok {
			return
		}
		req.OwnerId = owner
	}
	created, err := svc.CreateEmbedder(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIEmbedder(created))
}

func listEmbedders(c *gin.Context, svc *grpcapi.EmbedderServer) {
	req := &pb.ListEmbeddersRequest{LabelSelectors: labelSelectors(c)}
	owner, ok := queryID(c, "owner_id")
	if !ok {
		return
	}
	req.OwnerId = owner
	if v := c.Query("provider_type"); v != "" {
		pt, err := providerTypeFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.ProviderType = pt
	}
	resp, err := svc.ListEmbedders(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	embedders := make([]apiEmbedder, 0, len(resp.GetEmbedders()))
	for _, e := range resp.GetEmbedders() {
		embedders = append(embedders, toAPIEmbedder(e))
	}
	c.JSON(http.StatusOK, gin.H{"embedders": embedders})
}

func getEmbedder(c *gin.Context, svc *grpcapi.EmbedderServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := svc.GetEmbedder(c.Request.Context(), &pb.GetEmbedderRequest{EmbedderId: id})
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIEmbedder(e))
}

func updateEmbedder(c *gin.Context, svc *grpcapi.EmbedderServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateEmbedderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := &pb.UpdateEmbedderRequest{
		EmbedderId:         id,
		DisplayName:        body.DisplayName,
		Description:        body.Description,
		EndpointUrl:        body.EndpointUrl,
		ApiPath:            body.ApiPath,
		ModelIdentifier:    body.ModelIdentifier,
		Dimensionality:     body.Dimensionality,
		MaxSequenceLength:  body.MaxSequenceLength,
		Credentials:        body.Credentials,
		Version:            body.Version,
		MonitoringEndpoint: body.MonitoringEndpoint,
	}
	if body.ProviderType != nil {
		pt, err := providerTypeFromString(*body.ProviderType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// The service rejects any attempt to change the provider type.
		req.ProviderType = pt
	}
	mods, err := modalitiesFromStrings(body.SupportedModalities)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.SupportedModalities = mods
	if !labelsExclusive(c, body.ReplaceLabels, body.MergeLabels) {
		return
	}
	if body.ReplaceLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateEmbedderRequest_ReplaceLabels{
			ReplaceLabels: &pb.StringMap{Labels: body.ReplaceLabels},
		}
	} else if body.MergeLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateEmbedderRequest_MergeLabels{
			MergeLabels: &pb.StringMap{Labels: body.MergeLabels},
		}
	}
	updated, err := svc.UpdateEmbedder(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIEmbedder(updated))
}

func deleteEmbedder(c *gin.Context, svc *grpcapi.EmbedderServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := svc.DeleteEmbedder(c.Request.Context(), &pb.DeleteEmbedderRequest{EmbedderId: id}); err != nil {
		writeStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func providerTypeFromString(s string) (pb.ProviderType, error) {
	switch strings.ToUpper(s) {
	case "OPENAI":
		return pb.ProviderType_PROVIDER_TYPE_OPENAI, nil
	case "VLLM":
		return pb.ProviderType_PROVIDER_TYPE_VLLM, nil
	case "TEI":
		return pb.ProviderType_PROVIDER_TYPE_TEI, nil
	default:
		return pb.ProviderType_PROVIDER_TYPE_UNSPECIFIED, errInvalidEnum("providerType", s)
	}
}

func providerTypeString(pt pb.ProviderType) string {
	switch pt {
	case pb.ProviderType_PROVIDER_TYPE_OPENAI:
		return "OPENAI"
	case pb.ProviderType_PROVIDER_TYPE_VLLM:
		return "VLLM"
	case pb.ProviderType_PROVIDER_TYPE_TEI:
		return "TEI"
	default:
		return ""
	}
}

func modalitiesFromStrings(in []string) ([]pb.Modality, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]pb.Modality, 0, len(in))
	for _, s := range in {
		switch strings.ToUpper(s) {
		case "TEXT":
			out = append(out, pb.Modality_MODALITY_TEXT)
		case "IMAGE":
			out = append(out, pb.Modality_MODALITY_IMAGE)
		case "AUDIO":
			out = append(out, pb.Modality_MODALITY_AUDIO)
		case "VIDEO":
			out = append(out, pb.Modality_MODALITY_VIDEO)
		default:
			return nil, errInvalidEnum("modality", s)
		}
	}
	return out, nil
}

func modalityString(m pb.Modality) string {
	switch m {
	case pb.Modality_MODALITY_TEXT:
		return "TEXT"
	case pb.Modality_MODALITY_IMAGE:
		return "IMAGE"
	case pb.Modality_MODALITY_AUDIO:
		return "AUDIO"
	case pb.Modality_MODALITY_VIDEO:
		return "VIDEO"
	default:
		return ""
	}
}

func toAPIEmbedder(e *pb.Embedder) apiEmbedder {
	mods := make([]string, 0, len(e.GetSupportedModalities()))
	for _, m := range e.GetSupportedModalities() {
		mods = append(mods, modalityString(m))
	}
	return apiEmbedder{
		EmbedderId:          textualID(e.GetEmbedderId()),
		DisplayName:         e.GetDisplayName(),
		Description:         e.GetDescription(),
		ProviderType:        providerTypeString(e.GetProviderType()),
		EndpointUrl:         e.GetEndpointUrl(),
		ApiPath:             e.GetApiPath(),
		ModelIdentifier:     e.GetModelIdentifier(),
		Dimensionality:      e.GetDimensionality(),
		MaxSequenceLength:   e.MaxSequenceLength,
		SupportedModalities: mods,
		Credentials:         e.GetCredentials(),
		Labels:              e.GetLabels(),
		Version:             e.GetVersion(),
		MonitoringEndpoint:  e.GetMonitoringEndpoint(),
		OwnerId:             textualID(e.GetOwnerId()),
		CreatedAt:           millis(e.GetCreatedAt()),
		UpdatedAt:           millis(e.GetUpdatedAt()),
		CreatedById:         textualID(e.GetCreatedById()),
		UpdatedById:         textualID(e.GetUpdatedById()),
	}
}
