package restapi

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/service"
	"vibe_tracker/internal/app/state"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/pkg/utils"
)

var errTradeItemNotFound = errors.New("trade item not found")

type importRequest struct {
	Wallet string `json:"wallet"`
}

// ImportResult reports a wallet import.
type ImportResult struct {
	Added int                `json:"added"`
	Items []entity.TradeItem `json:"items"`
}

// TradeHandler serves the "for trade" list.
type TradeHandler struct {
	trades port.TradeListService
	state  *state.Store
	logger port.Logger
}

// NewTradeHandler creates a new instance of TradeHandler.
func NewTradeHandler(ts port.TradeListService, st *state.Store, l port.Logger) *TradeHandler {
	return &TradeHandler{trades: ts, state: st, logger: l}
}

// List returns the trade list in insertion order.
func (h *TradeHandler) List(c *gin.Context) {
	respondOK(c, http.StatusOK, h.trades.Items(), "")
}

// Add appends a user-entered item.
func (h *TradeHandler) Add(c *gin.Context) {
	var req entity.TradeItem
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errInvalidBody)
		return
	}
	item, err := h.trades.Add(req)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	respondOK(c, http.StatusCreated, item, "")
}

// Remove deletes an item by id. The router keeps path values escaped, so the id is
// unescaped here.
func (h *TradeHandler) Remove(c *gin.Context) {
	id, err := url.PathUnescape(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if !h.trades.Remove(id) {
		respondError(c, http.StatusNotFound, errTradeItemNotFound)
		return
	}
	respondOK(c, http.StatusOK, h.trades.Items(), "")
}

// Import merges the holdings of a wallet into the list. The body may name a wallet;
// otherwise the active one is used.
func (h *TradeHandler) Import(c *gin.Context) {
	var req importRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, errInvalidBody)
			return
		}
	}
	wallet := h.state.Snapshot().Wallet
	if req.Wallet != "" {
		normalized, err := utils.NormalizeWallet(req.Wallet)
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		wallet = normalized
	}

	added, err := h.trades.ImportFromWallet(c.Request.Context(), wallet)
	switch {
	case errors.Is(err, service.ErrWalletRequired):
		respondError(c, http.StatusBadRequest, err)
		return
	case errors.Is(err, service.ErrImportFailed):
		h.logger.Warn("Wallet import failed", "wallet", wallet, "error", err)
		respondError(c, http.StatusBadGateway, err)
		return
	case err != nil:
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondOK(c, http.StatusOK, ImportResult{Added: added, Items: h.trades.Items()}, "")
}
