package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/grpcapi"
)

type apiUser struct {
	UserId      string `json:"userId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	CreatedAt   int64  `json:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt"`
}

// getUser serves both /users/:id and /users?email=…; with neither an id
// nor an email it returns the caller.
func getUser(c *gin.Context, svc *grpcapi.UserServer) {
	req := &pb.GetUserRequest{Email: c.Query("email")}
	if c.Param("id") != "" {
		id, ok := pathID(c)
		if !ok {
			return
		}
		req.UserId = id
	}
	u, err := svc.GetUser(c.Request.Context(), req)
	if err != nil {
		writeStatus(c, err)
		return
	}
	c.JSON(http.StatusOK, toAPIUser(u))
}

func toAPIUser(u *pb.User) apiUser {
	return apiUser{
		UserId:      textualID(u.GetUserId()),
		Email:       u.GetEmail(),
		DisplayName: u.GetDisplayName(),
		Username:    u.GetUsername(),
		CreatedAt:   millis(u.GetCreatedAt()),
		UpdatedAt:   millis(u.GetUpdatedAt()),
	}
}
