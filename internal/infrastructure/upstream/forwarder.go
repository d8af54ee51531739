package upstream

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"vibe_tracker/internal/infrastructure/configloader"
	"vibe_tracker/internal/pkg/metrics"
)

// DefaultContentType is used for forwarded write bodies and for upstream responses
// that do not declare a content type.
const DefaultContentType = "application/json"

// Request is an inbound call to be forwarded.
type Request struct {
	Method      string
	Path        string // path suffix after the proxy prefix, leading slash optional
	RawQuery    string // without "?"
	ContentType string
	Body        []byte
}

// Response is the upstream answer, relayed verbatim.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Forwarder relays requests to the marketplace API and attaches the server-side API key.
// It keeps no per-request state; one instance serves all requests concurrently.
type Forwarder struct {
	client       *resty.Client
	baseURL      string
	apiKey       string
	apiKeyHeader string
	logger       *zap.Logger
}

// NewForwarder creates a Forwarder for the configured upstream. Retries stay disabled
// and no client timeout is set, so only the request context bounds a call.
func NewForwarder(cfg configloader.UpstreamConfig, logger *zap.Logger) *Forwarder {
	header := cfg.APIKeyHeader
	if header == "" {
		header = "x-api-key"
	}
	return &Forwarder{
		client:       resty.New().SetRetryCount(0),
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		apiKeyHeader: header,
		logger:       logger.Named("UpstreamForwarder"),
	}
}

// BuildURL joins the upstream base, the path suffix and the incoming query string.
// Path and query are taken as-is, without re-escaping.
func BuildURL(baseURL, path, rawQuery string) string {
	target := strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}
	return target
}

// IsReadMethod reports whether method carries no request body.
func IsReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// Forward sends in to the upstream and returns its status, content type and body.
// An error means no upstream response was obtained.
func (f *Forwarder) Forward(ctx context.Context, in Request) (*Response, error) {
	method := strings.ToUpper(in.Method)
	if method == "" {
		method = http.MethodGet
	}
	target := BuildURL(f.baseURL, in.Path, in.RawQuery)

	req := f.client.R().
		SetContext(ctx).
		SetHeader(f.apiKeyHeader, f.apiKey).
		SetHeader("Cache-Control", "no-store")
	if !IsReadMethod(method) {
		contentType := in.ContentType
		if contentType == "" {
			contentType = DefaultContentType
		}
		req.SetHeader("Content-Type", contentType).SetBody(in.Body)
	}

	f.logger.Debug("Forwarding request to upstream", zap.String("method", method), zap.String("path", in.Path))
	start := time.Now()
	resp, err := req.Execute(method, target)
	metrics.ProxyDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProxyRequests.WithLabelValues(method, metrics.StatusLabel(0)).Inc()
		f.logger.Error("Upstream request failed", zap.String("method", method), zap.String("path", in.Path), zap.Error(err))
		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	metrics.ProxyRequests.WithLabelValues(method, metrics.StatusLabel(resp.StatusCode())).Inc()

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}
	return &Response{
		StatusCode:  resp.StatusCode(),
		ContentType: contentType,
		Body:        resp.Body(),
	}, nil
}
