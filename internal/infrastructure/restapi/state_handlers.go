package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/state"
)

var (
	errInvalidLimit = errors.New("limit must be a non-negative integer")
	errInvalidBody  = errors.New("invalid request body")
)

type walletRequest struct {
	Wallet string `json:"wallet"`
}

type tabRequest struct {
	Tab string `json:"tab"`
}

// StateHandler serves the UI state: theme, wallet and active tab.
type StateHandler struct {
	state     *state.Store
	dashboard port.DashboardService
	logger    port.Logger
}

// NewStateHandler creates a new instance of StateHandler.
func NewStateHandler(st *state.Store, ds port.DashboardService, l port.Logger) *StateHandler {
	return &StateHandler{state: st, dashboard: ds, logger: l}
}

// GetState returns the current UI state.
func (h *StateHandler) GetState(c *gin.Context) {
	respondOK(c, http.StatusOK, h.state.Snapshot(), "")
}

// SetWallet connects, switches or (with an empty wallet) disconnects the active wallet.
// A change drops the old profile and reloads the dashboard for the new wallet.
func (h *StateHandler) SetWallet(c *gin.Context) {
	var req walletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	st, changed, err := h.state.SetWallet(req.Wallet)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	message := ""
	if changed {
		h.dashboard.ResetProfile()
		if err := h.dashboard.Load(c.Request.Context(), st.Wallet); err != nil {
			h.logger.Warn("Dashboard reload after wallet change completed with errors", "error", err)
			message = err.Error()
		}
	}
	respondOK(c, http.StatusOK, st, message)
}

// SetTab switches the active tab.
func (h *StateHandler) SetTab(c *gin.Context) {
	var req tabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	st, err := h.state.SetTab(req.Tab)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondOK(c, http.StatusOK, st, "")
}

// ToggleTheme flips the color scheme.
func (h *StateHandler) ToggleTheme(c *gin.Context) {
	respondOK(c, http.StatusOK, h.state.ToggleTheme(), "")
}
