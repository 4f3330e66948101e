package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
)

type apiMemory struct {
	MemoryId           string            `json:"memoryId"`
	SpaceId            string            `json:"spaceId"`
	OriginalContentRef string            `json:"originalContentRef"`
	ContentType        string            `json:"contentType,omitempty"`
	Metadata           map[string]string `json:"metadata,omitempty"`
	ProcessingStatus   string            `json:"processingStatus"`
	CreatedAt          int64             `json:"createdAt"`
	UpdatedAt          int64             `json:"updatedAt"`
	CreatedById        string            `json:"createdById"`
	UpdatedById        string            `json:"updatedById"`
}

type createMemoryBody struct {
	SpaceId            string            `json:"spaceId"`
	OriginalContentRef string            `json:"originalContentRef"`
	ContentType        string            `json:"contentType"`
	Metadata           map[string]string `json:"metadata"`
}

func createMemory(c *gin.Context, svc *grpcapi.MemoryServer) {
	var body createMemoryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	space, ok := bodyID(c, body.SpaceId, "spaceId")
	if !ok {
		return
	}
	created, err := svc.CreateMemory(c.Request.Context(), &pb.CreateMemoryRequest{
		SpaceId:            space,
		OriginalContentRef: body.OriginalContentRef,
		ContentType:        body.ContentType,
		Metadata:           body.Metadata,
	})
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIMemory(created))
}

func listMemories(c *gin.Context, svc *grpcapi.MemoryServer) {
	space, ok := queryID(c, "space_id")
	if !ok {
		return
	}
	if space == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "space_id is required"})
		return
	}
	resp, err := svc.ListMemories(c.Request.Context(), &pb.ListMemoriesRequest{SpaceId: space})
	if err != nil {
		writeStatus(c, err)
		return
	}
	memories := make([]apiMemory, 0, len(resp.GetMemories()))
	for _, m := range resp.GetMemories() {
		memories = append(memories, toAPIMemory(m))
	}
	c.JSON(http.StatusOK, gin.H{"memories": memories})
}

func getMemory(c *gin.Context, svc *grpcapi.MemoryServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := svc.GetMemory(c.Request.Context(), &pb.GetMemoryRequest{MemoryId: id})
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIMemory(m))
}

func deleteMemory(c *gin.Context, svc *grpcapi.MemoryServer) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if _, err := svc.DeleteMemory(c.Request.Context(), &pb.DeleteMemoryRequest{MemoryId: id}); err != nil {
		writeStatus(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func processingStatusString(st pb.ProcessingStatus) string {
	switch st {
	case pb.ProcessingStatus_PROCESSING_STATUS_PENDING:
		return "PENDING"
	case pb.ProcessingStatus_PROCESSING_STATUS_PROCESSING:
		return "PROCESSING"
	case pb.ProcessingStatus_PROCESSING_STATUS_COMPLETED:
		return "COMPLETED"
	case pb.ProcessingStatus_PROCESSING_STATUS_FAILED:
		return "FAILED"
	default:
		return ""
	}
}

func toAPIMemory(m *pb.Memory) apiMemory {
	return apiMemory{
		MemoryId:           textualID(m.GetMemoryId()),
		SpaceId:            textualID(m.GetSpaceId()),
		OriginalContentRef: m.GetOriginalContentRef(),
		ContentType:        m.GetContentType(),
		Metadata:           m.GetMetadata(),
		ProcessingStatus:   processingStatusString(m.GetProcessingStatus()),
		CreatedAt:          millis(m.GetCreatedAt()),
		UpdatedAt:          millis(m.GetUpdatedAt()),
		CreatedById:        textualID(m.GetCreatedById()),
		UpdatedById:        textualID(m.GetUpdatedById()),
	}
}
