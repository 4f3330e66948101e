package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
)

type apiSpace struct {
	SpaceId     string            `json:"spaceId"`
	Name        string            `json:"name"`
	Labels      map[string]string `json:"labels,omitempty"`
	EmbedderId  string            `json:"embedderId"`
	OwnerId     string            `json:"ownerId"`
	PublicRead  bool              `json:"publicRead"`
	CreatedAt   int64             `json:"createdAt"`
	UpdatedAt   int64             `json:"updatedAt"`
	CreatedById string            `json:"createdById"`
	UpdatedById string            `json:"updatedById"`
}

type createSpaceBody struct {
	Name       string            `json:"name"`
	EmbedderId string            `json:"embedderId"`
	Labels     map[string]string `json:"labels"`
	PublicRead bool              `json:"publicRead"`
	OwnerId    string            `json:"ownerId"`
}

type updateSpaceBody struct {
	Name          *string           `json:"name"`
	PublicRead    *bool             `json:"publicRead"`
	ReplaceLabels map[string]string `json:"replaceLabels"`
	MergeLabels   map[string]string `json:"mergeLabels"`
}

func createSpace(c *gin.Context, svc *grpcapi.SpaceServer) {
	var body createSpaceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := &pb.CreateSpaceRequest{
		Name:       body.Name,
		Labels:     body.Labels,
		PublicRead: body.PublicRead,
	}
	embedder, ok := bodyID(c, body.EmbedderId, "embedderId")
	if !ok {
		return
	}
	req.EmbedderId = embedder
	if body.OwnerId != "" {
		owner, ok := bodyID(c, body.OwnerId, "ownerId")
		if !ok {
			return
		}
		req.OwnerId = owner
	}
	created, err := svc.CreateSpace(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPISpace(created))
}

func listSpaces(c *gin.Context, svc *grpcapi.SpaceServer) {
	req := &pb.ListSpacesRequest{
		LabelSelectors: labelSelectors(c),
		NameFilter:     c.Query("name_filter"),
		SortBy:         c.Query("sort_by"),
		NextToken:      c.Query("next_token"),
	}
	owner, ok := queryID(c, "owner_id")
	if !ok {
		return
	}
	req.OwnerId = owner
	switch strings.ToLower(c.Query("sort_order")) {
	case "":
	case "asc":
		req.SortOrder = pb.SortOrder_SORT_ORDER_ASCENDING
	case "desc":
		req.SortOrder = pb.SortOrder_SORT_ORDER_DESCENDING
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "sort_order must be asc or desc"})
		return
	}
	maxResults, ok := queryInt(c, "max_results")
	if !ok {
		return
	}
	req.MaxResults = maxResults
	resp, err := svc.ListSpaces(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	spaces := make([]apiSpace, 0, len(resp.GetSpaces()))
	for _, s := range resp.GetSpaces() {
		spaces = append(spaces, toAPISpace(s))
	}
	out := gin.H{"spaces": spaces}
	if resp.GetNextToken() != "" {
		out["nextToken"] = resp.GetNextToken()
	}
	c.JSON(http.StatusOK, out)
}

func getSpace(c *gin.Context, svc *grpcapi.SpaceServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sp, err := svc.GetSpace(c.Request.Context(), &pb.GetSpaceRequest{SpaceId: id})
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPISpace(sp))
}

func updateSpace(c *gin.Context, svc *grpcapi.SpaceServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body updateSpaceBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req := &pb.UpdateSpaceRequest{
		SpaceId:    id,
		Name:       body.Name,
		PublicRead: body.PublicRead,
	}
	if !labelsExclusive(c, body.ReplaceLabels, body.MergeLabels) {
		return
	}
	if body.ReplaceLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateSpaceRequest_ReplaceLabels{
			ReplaceLabels: &pb.StringMap{Labels: body.ReplaceLabels},
		}
	} else if body.MergeLabels != nil {
		req.LabelUpdateStrategy = &pb.UpdateSpaceRequest_MergeLabels{
			MergeLabels: &pb.StringMap{Labels: body.MergeLabels},
		}
	}
	updated, err := svc.UpdateSpace(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPISpace(updated))
}

func deleteSpace(c *gin.Context, svc *grpcapi.SpaceServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := svc.DeleteSpace(c.Request.Context(), &pb.DeleteSpaceRequest{SpaceId: id}); err != nil {
		writeStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toAPISpace(s *pb.Space) apiSpace {
	return apiSpace{
		SpaceId:     textualID(s.GetSpaceId()),
		Name:        s.GetName(),
		Labels:      s.GetLabels(),
		EmbedderId:  textualID(s.GetEmbedderId()),
		OwnerId:     textualID(s.GetOwnerId()),
		PublicRead:  s.GetPublicRead(),
		CreatedAt:   millis(s.GetCreatedAt()),
		UpdatedAt:   millis(s.GetUpdatedAt()),
		CreatedById: textualID(s.GetCreatedById()),
		UpdatedById: textualID(s.GetUpdatedById()),
	}
}
