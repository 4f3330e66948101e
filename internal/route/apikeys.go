package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
)

type apiApiKey struct {
	ApiKeyId    string            `json:"apiKeyId"`
	UserId      string            `json:"userId"`
	KeyPrefix   string            `json:"keyPrefix"`
	Status      string            `json:"status"`
	Labels      map[string]string `json:"labels,omitempty"`
	ExpiresAt   *int64            `json:"expiresAt,omitempty"`
	LastUsedAt  *int64            `json:"lastUsedAt,omitempty"`
	CreatedAt   int64             `json:"createdAt"`
	UpdatedAt   int64             `json:"updatedAt"`
	CreatedById string            `json:"createdById"`
	UpdatedById string            `json:"updatedById"`
}

type createApiKeyBody struct {
	Labels    map[string]string `json:"labels"`
	ExpiresAt *int64            `json:"expiresAt"`
}

type updateApiKeyBody struct {
	Status        *string           `json:"status"`
	ReplaceLabels map[string]string `json:"replaceLabels"`
	MergeLabels   map[string]string `json:"mergeLabels"`
}

func createApiKey(c *gin.Context, svc *grpcapi.ApiKeyServer) {
	var body createApiKeyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := svc.CreateApiKey(c.Request.Context(), &pb.CreateApiKeyRequest{
		Labels:    body.Labels,
		ExpiresAt: millisToWire(body.ExpiresAt),
	})
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"apiKeyMetadata": toAPIApiKey(resp.GetApiKeyMetadata()),
		"rawApiKey":      resp.GetRawApiKey(),
	})
}

func listApiKeys(c *gin.Context, svc *grpcapi.ApiKeyServer) {
	resp, err := svc.ListApiKeys(c.Request.Context(), &pb.ListApiKeysRequest{})
	if err != nil {
		writeStatus(c, err)
		return
	}
	keys := make([]apiApiKey, 0, len(resp.GetKeys()))
	for _, k := range resp.GetKeys() {
		keys = append(keys, toAPIApiKey(k))
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

func updateApiKey(c *gin.Context, svc *grpcapi.ApiKeyServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateApiKeyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := &pb.UpdateApiKeyRequest{ApiKeyId: id}
	if body.Status != nil {
		st, err := apiKeyStatusFromString(*body.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		req.Status = &st
	}
	if !labelsExclusive(c, body.ReplaceLabels, body.MergeLabels) {
		return
	}
	if body.ReplaceLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateApiKeyRequest_ReplaceLabels{
			ReplaceLabels: &pb.StringMap{Labels: body.ReplaceLabels},
		}
	} else if body.MergeLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateApiKeyRequest_MergeLabels{
			MergeLabels: &pb.StringMap{Labels: body.MergeLabels},
		}
	}
	updated, err := svc.UpdateApiKey(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIApiKey(updated))
}

func deleteApiKey(c *gin.Context, svc *grpcapi.ApiKeyServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := svc.DeleteApiKey(c.Request.Context(), &pb.DeleteApiKeyRequest{ApiKeyId: id}); err != nil {
		writeStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func apiKeyStatusFromString(s string) (pb.Status, error) {
	switch strings.ToUpper(s) {
	case "ACTIVE":
		return pb.Status_STATUS_ACTIVE, nil
	case "INACTIVE":
		return pb.Status_STATUS_INACTIVE, nil
	default:
		return pb.Status_STATUS_UNSPECIFIED, errInvalidEnum("status", s)
	}
}

func apiKeyStatusString(st pb.Status) string {
	switch st {
	case pb.Status_STATUS_ACTIVE:
		return "ACTIVE"
	case pb.Status_STATUS_INACTIVE:
		return "INACTIVE"
	default:
		return ""
	}
}

func toAPIApiKey(k *pb.ApiKey) apiApiKey {
	return apiApiKey{
		ApiKeyId:    textualID(k.GetApiKeyId()),
		UserId:      textualID(k.GetUserId()),
		KeyPrefix:   k.GetKeyPrefix(),
		Status:      apiKeyStatusString(k.GetStatus()),
		Labels:      k.GetLabels(),
		ExpiresAt:   millisPtr(k.GetExpiresAt()),
		LastUsedAt:  millisPtr(k.GetLastUsedAt()),
		CreatedAt:   millis(k.GetCreatedAt()),
		UpdatedAt:   millis(k.GetUpdatedAt()),
		CreatedById: textualID(k.GetCreatedById()),
		UpdatedById: textualID(k.GetUpdatedById()),
	}
}
