package restapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/service"
	"vibe_tracker/internal/app/state"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/infrastructure/configloader"
	"vibe_tracker/internal/infrastructure/storage"
	"vibe_tracker/internal/infrastructure/upstream"
	"vibe_tracker/internal/pkg/logger"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

type stubMarket struct {
	packs    []entity.RawItem
	openings []entity.RawItem
	owner    any
	ownerErr error
	owners   []string
}

func (m *stubMarket) RecentPacks(context.Context) ([]entity.RawItem, error)    { return m.packs, nil }
func (m *stubMarket) RecentOpenings(context.Context) ([]entity.RawItem, error) { return m.openings, nil }
func (m *stubMarket) OpenedPacks(context.Context) ([]entity.RawItem, error)    { return nil, nil }
func (m *stubMarket) Owner(_ context.Context, wallet string) (any, error) {
	m.owners = append(m.owners, wallet)
	return m.owner, m.ownerErr
}

type testEnv struct {
	router *gin.Engine
	state  *state.Store
	market *stubMarket
}

func testConfig(upstreamURL string) *configloader.Config {
	return &configloader.Config{
		Upstream: configloader.UpstreamConfig{BaseURL: upstreamURL, APIKey: "secret", APIKeyHeader: "x-api-key"},
		Market: configloader.MarketConfig{
			ChainID:         8453,
			MarketURL:       "https://market.test",
			SwapURLTemplate: "https://swap.test/?out=%s",
			ActivityLimit:   2,
		},
		CORS: configloader.CORSConfig{AllowOrigins: []string{"*"}},
	}
}

func newTestEnv(t *testing.T, upstreamURL string, market *stubMarket) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig(upstreamURL)
	zl := zap.NewNop()
	l := logger.NewZapAdapter(zl)
	shaper := &view.Shaper{MarketURL: cfg.Market.MarketURL, NewID: func() string { return "id" }}
	st := state.NewStore()
	dashboard := service.NewDashboardService(market, shaper, l)
	trades := service.NewTradeListService(storage.NewMemoryStore(), market, shaper, l)

	router := SetupRouter(Handlers{
		Proxy:     NewProxyHandler(upstream.NewForwarder(cfg.Upstream, zl), zl),
		Dashboard: NewDashboardHandler(dashboard, st, cfg, l),
		State:     NewStateHandler(st, dashboard, l),
		Trade:     NewTradeHandler(trades, st, l),
	}, cfg, zl)
	return &testEnv{router: router, state: st, market: market}
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of an APIResponse into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) APIResponse {
	t.Helper()
	var env struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Message string          `json:"message"`
	}
	require.NoError(t, testJSON.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, testJSON.Unmarshal(env.Data, out))
	}
	return APIResponse{Success: env.Success, Message: env.Message}
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, "http://127.0.0.1:1", &stubMarket{})
	w := env.do(t, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
}

var _ port.MarketClient = (*stubMarket)(nil)
