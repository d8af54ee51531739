package httpclient

import (
	"context"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
)

// json keeps numbers as json.Number so ids and prices survive decoding unchanged.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// StatusError is returned for any non-2xx answer of the proxy route.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("upstream %d %s", e.StatusCode, e.Body))
}

// proxyClientImpl implements port.UpstreamFetcher over the local proxy route.
type proxyClientImpl struct {
	client  *fasthttp.Client
	baseURL string
	logger  *zap.Logger
}

// NewProxyClient creates a fetcher that reaches the upstream through <baseURL>/proxy/.
func NewProxyClient(baseURL string, logger *zap.Logger) port.UpstreamFetcher {
	return &proxyClientImpl{
		client:  &fasthttp.Client{DisablePathNormalizing: true},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.Named("ProxyClient"),
	}
}

// Fetch implements the port.UpstreamFetcher interface.
func (c *proxyClientImpl) Fetch(ctx context.Context, path string, opts port.FetchOptions) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleanPath := strings.TrimLeft(path, "/")
	requestURL := c.baseURL + "/proxy/" + cleanPath

	method := strings.ToUpper(opts.Method)
	if method == "" {
		method = fasthttp.MethodGet
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.URI().DisablePathNormalizing = true
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderCacheControl, "no-store")
	if method != fasthttp.MethodGet && method != fasthttp.MethodHead {
		contentType := opts.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.SetContentType(contentType)
		req.SetBody(opts.Body)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	c.logger.Debug("Requesting upstream through proxy", zap.String("method", method), zap.String("path", cleanPath))

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		c.logger.Error("Failed to execute proxy request", zap.String("path", cleanPath), zap.Error(err))
		return nil, fmt.Errorf("failed to execute request to %s: %w", cleanPath, err)
	}

	// resp is released on return, the body must be copied out.
	rawBody := append([]byte(nil), resp.Body()...)
	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		c.logger.Warn("Proxy request failed",
			zap.String("path", cleanPath),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", rawBody),
		)
		return nil, &StatusError{StatusCode: status, Body: string(rawBody)}
	}

	contentType := string(resp.Header.ContentType())
	if strings.Contains(strings.ToLower(contentType), "application/json") {
		var decoded any
		if err := json.Unmarshal(rawBody, &decoded); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response from %s: %w", cleanPath, err)
		}
		return decoded, nil
	}

	// Some endpoints send JSON labelled as text.
	var decoded any
	if err := json.Unmarshal(rawBody, &decoded); err == nil {
		return decoded, nil
	}
	return string(rawBody), nil
}
