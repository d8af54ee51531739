package restapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/state"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
)

// ActivityView is an activity event with its ticker rendering.
type ActivityView struct {
	entity.ActivityEvent
	Summary string `json:"summary"`
	Icons   string `json:"icons"`
}

// ProfileView is the purchase history of the active wallet.
type ProfileView struct {
	Wallet string              `json:"wallet"`
	Items  []entity.BoughtItem `json:"items"`
	Notice string              `json:"notice,omitempty"`
}

// RefreshResult summarises a dashboard load.
type RefreshResult struct {
	Packs    int `json:"packs"`
	Activity int `json:"activity"`
	Creators int `json:"creators"`
}

// DashboardHandler serves the marketplace views.
type DashboardHandler struct {
	dashboard port.DashboardService
	state     *state.Store
	cfg       port.ConfigProvider
	logger    port.Logger
}

// NewDashboardHandler creates a new instance of DashboardHandler.
func NewDashboardHandler(ds port.DashboardService, st *state.Store, cfg port.ConfigProvider, l port.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: ds, state: st, cfg: cfg, logger: l}
}

// Refresh reloads packs, activity and the active wallet profile. Partial failures are
// reported in the message; the request itself still succeeds.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	err := h.dashboard.Load(c.Request.Context(), h.state.Snapshot().Wallet)
	result := RefreshResult{
		Packs:    len(h.dashboard.Packs(view.Filter{})),
		Activity: len(h.dashboard.Activity(view.Filter{}, 0)),
		Creators: len(h.dashboard.Creators()),
	}
	message := ""
	if err != nil {
		h.logger.Warn("Dashboard refresh completed with errors", "error", err)
		message = err.Error()
	}
	respondOK(c, http.StatusOK, result, message)
}

// GetPacks lists packs; query params q, rarity and verified select the filter.
func (h *DashboardHandler) GetPacks(c *gin.Context) {
	respondOK(c, http.StatusOK, h.dashboard.Packs(filterFromQuery(c)), "")
}

// GetActivity lists the latest openings, at most limit (default from config).
func (h *DashboardHandler) GetActivity(c *gin.Context) {
	limit := h.cfg.GetConfig().Market.ActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, errInvalidLimit)
			return
		}
		limit = n
	}
	events := h.dashboard.Activity(filterFromQuery(c), limit)
	out := make([]ActivityView, 0, len(events))
	for _, ev := range events {
		out = append(out, ActivityView{ActivityEvent: ev, Summary: view.Summary(ev), Icons: view.RarityIcons(ev.Rarity)})
	}
	respondOK(c, http.StatusOK, out, "")
}

// GetCreators returns the verified-creator leaderboard.
func (h *DashboardHandler) GetCreators(c *gin.Context) {
	respondOK(c, http.StatusOK, h.dashboard.Creators(), "")
}

// GetProfile returns the bought items of the active wallet.
func (h *DashboardHandler) GetProfile(c *gin.Context) {
	items, notice := h.dashboard.BoughtItems()
	respondOK(c, http.StatusOK, ProfileView{Wallet: h.state.Snapshot().Wallet, Items: items, Notice: notice}, "")
}

// ClientConfig is the public part of the configuration. It never includes the API key.
type ClientConfig struct {
	ChainID   int64  `json:"chainId"`
	MarketURL string `json:"marketUrl"`
	SwapURL   string `json:"swapUrl,omitempty"`
}

// GetConfig returns the public client configuration.
func (h *DashboardHandler) GetConfig(c *gin.Context) {
	cfg := h.cfg.GetConfig()
	respondOK(c, http.StatusOK, ClientConfig{
		ChainID:   cfg.Market.ChainID,
		MarketURL: cfg.Market.MarketURL,
		SwapURL:   cfg.SwapURL(),
	}, "")
}

func filterFromQuery(c *gin.Context) view.Filter {
	verified, _ := strconv.ParseBool(c.Query("verified"))
	return view.Filter{
		Query:        c.Query("q"),
		Rarity:       view.ParseRarityFilter(c.Query("rarity")),
		VerifiedOnly: verified,
	}
}
