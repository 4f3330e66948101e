package serve

import (
	"bytes"
	"context"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodmem/goodmem/internal/config"
	pb "github.com/goodmem/goodmem/internal/generated/pb/goodmem/v1"
	"github.com/goodmem/goodmem/internal/ident"
	"github.com/goodmem/goodmem/internal/security"
	"github.com/goodmem/goodmem/internal/testutil/testpg"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

const testEncryptionKey = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

func TestMaxBodySizeMiddleware_RejectsOversizedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(maxBodySizeMiddleware(4))
	router.POST("/v1/spaces", readBodyLengthHandler)

	req := httptest.NewRequest(http.MethodPost, "/v1/spaces", strings.NewReader(`{"name":"way too big"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestMaxBodySizeMiddleware_AllowsSmallBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(maxBodySizeMiddleware(1024))
	router.POST("/v1/spaces", readBodyLengthHandler)

	req := httptest.NewRequest(http.MethodPost, "/v1/spaces", strings.NewReader("0123456789"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "10", rec.Body.String())
}

func readBodyLengthHandler(c *gin.Context) {
	n, err := io.Copy(io.Discard, c.Request.Body)
	if err != nil {
		c.Status(http.StatusRequestEntityTooLarge)
		return
	}
	c.String(http.StatusOK, "%d", n)
}

func TestGrpcOrHTTPHandler_RoutesPlainHTTPToRest(t *testing.T) {
	grpcServer := grpc.NewServer()
	defer grpcServer.Stop()
	rest := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/spaces", nil)
	rec := httptest.NewRecorder()
	grpcOrHTTPHandler(grpcServer, rest).ServeHTTP(rec, req)

	require.Equal(t, http.StatusTeapot, rec.Code)
}

func TestGenerateSelfSignedCertificate(t *testing.T) {
	cert, err := generateSelfSignedCertificate()
	require.NoError(t, err)
	require.NotEmpty(t, cert.Certificate)

	leaf, err := x509.ParseCertificate(cert.Certificate[0])
	require.NoError(t, err)
	require.Equal(t, "localhost", leaf.Subject.CommonName)
	require.Contains(t, leaf.DNSNames, "localhost")
	require.True(t, leaf.NotAfter.After(time.Now()))
}

// TestStartServerSinglePort boots the whole server on an OS-assigned port
// and drives it over real sockets: REST over HTTP/1.1 and gRPC over h2c on
// the same listener.
func TestStartServerSinglePort(t *testing.T) {
	dbURL := testpg.StartPostgres(t)

	cfg := config.DefaultConfig()
	cfg.DBURL = dbURL
	cfg.CredentialEncryptionKey = testEncryptionKey
	cfg.MigrateAtStart = true
	cfg.Listener.Port = 0
	cfg.Listener.EnablePlainText = true
	cfg.Listener.EnableTLS = false

	ctx := config.WithContext(context.Background(), &cfg)
	srv, err := StartServer(ctx, &cfg)
	require.NoError(t, err)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		require.NoError(t, srv.Shutdown(shutdownCtx))
	}()

	base := fmt.Sprintf("http://127.0.0.1:%d", srv.Running.Port)

	// Liveness needs no credentials.
	resp, err := http.Get(base + "/health/live")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Bootstrap over REST to mint the root key.
	resp, err = http.Post(base+"/v1/system/init", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)

	var initResp struct {
		RootApiKey string `json:"rootApiKey"`
		UserId     string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(body, &initResp))
	require.NotEmpty(t, initResp.RootApiKey)

	// REST with the minted key.
	req, err := http.NewRequest(http.MethodGet, base+"/v1/users", nil)
	require.NoError(t, err)
	req.Header.Set(security.HeaderAPIKey, initResp.RootApiKey)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	body, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", body)
	require.Contains(t, string(body), "root@goodmem.ai")

	// gRPC over the same port.
	conn, err := grpc.NewClient(
		fmt.Sprintf("127.0.0.1:%d", srv.Running.Port),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	grpcCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grpcCtx = metadata.AppendToOutgoingContext(grpcCtx, security.HeaderAPIKey, initResp.RootApiKey)

	user, err := pb.NewUserServiceClient(conn).GetUser(grpcCtx, &pb.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, "root@goodmem.ai", user.GetEmail())

	gotID, err := ident.TextualFromBinary(user.GetUserId())
	require.NoError(t, err)
	require.Equal(t, initResp.UserId, gotID)
}
