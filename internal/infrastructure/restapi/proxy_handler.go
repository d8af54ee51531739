package restapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vibe_tracker/internal/infrastructure/upstream"
)

// Forwarder relays one request to the upstream API.
type Forwarder interface {
	Forward(ctx context.Context, in upstream.Request) (*upstream.Response, error)
}

// ProxyHandler serves /proxy/*path by forwarding to the upstream API.
type ProxyHandler struct {
	forwarder Forwarder
	logger    *zap.Logger
}

// NewProxyHandler creates a new instance of ProxyHandler.
func NewProxyHandler(f Forwarder, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{forwarder: f, logger: logger.Named("ProxyHandler")}
}

// Handle forwards the request and relays status, content type and body unchanged.
// Any failure becomes a 500 with {"success":false,"message":...}.
func (h *ProxyHandler) Handle(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	defer func() {
		if r := recover(); r != nil {
			h.fail(c, fmt.Errorf("proxy panic: %v", r))
		}
	}()

	var body []byte
	if !upstream.IsReadMethod(c.Request.Method) && c.Request.Body != nil {
		b, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.fail(c, fmt.Errorf("failed to read request body: %w", err))
			return
		}
		body = b
	}

	resp, err := h.forwarder.Forward(c.Request.Context(), upstream.Request{
		Method:      c.Request.Method,
		Path:        c.Param("path"),
		RawQuery:    c.Request.URL.RawQuery,
		ContentType: c.GetHeader("Content-Type"),
		Body:        body,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Data(resp.StatusCode, resp.ContentType, resp.Body)
}

func (h *ProxyHandler) fail(c *gin.Context, err error) {
	h.logger.Error("Proxy request failed", zap.String("method", c.Request.Method), zap.String("path", c.Param("path")), zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Message: err.Error()})
}
