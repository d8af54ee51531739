package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TradeListKey is the storage key of the persisted trade list.
const TradeListKey = "forTrade"

var (
	// ErrEmptyTradeItem is returned by Add when neither a name nor a contract is given.
	ErrEmptyTradeItem = errors.New("trade item needs a name or a contract")
	// ErrWalletRequired is returned by ImportFromWallet without an active wallet.
	ErrWalletRequired = errors.New("connect or paste a wallet first")
	// ErrImportFailed wraps upstream failures of ImportFromWallet.
	ErrImportFailed = errors.New("import failed")
)

// LoadTradeList reads the persisted list. Absent or malformed data yields an empty list.
func LoadTradeList(store port.KeyValueStore, l port.Logger) []entity.TradeItem {
	raw, err := store.Get(TradeListKey)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			l.Warn("Failed to read trade list", "error", err)
		}
		return []entity.TradeItem{}
	}
	var items []entity.TradeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		l.Warn("Stored trade list is malformed, starting empty", "error", err)
		return []entity.TradeItem{}
	}
	if items == nil {
		return []entity.TradeItem{}
	}
	return items
}

// SaveTradeList persists items. Failures are logged and otherwise ignored.
func SaveTradeList(store port.KeyValueStore, items []entity.TradeItem, l port.Logger) {
	raw, err := json.Marshal(items)
	if err != nil {
		l.Error("Failed to encode trade list", "error", err)
		return
	}
	if err := store.Set(TradeListKey, raw); err != nil {
		l.Warn("Failed to persist trade list", "error", err)
	}
}

// TradeListServiceImpl implements port.TradeListService.
type TradeListServiceImpl struct {
	store  port.KeyValueStore
	market port.MarketClient
	shaper *view.Shaper
	logger port.Logger
	newID  func() string

	mu    sync.Mutex
	items []entity.TradeItem
}

// NewTradeListService creates a TradeListServiceImpl seeded from store.
func NewTradeListService(store port.KeyValueStore, market port.MarketClient, shaper *view.Shaper, l port.Logger) port.TradeListService {
	return &TradeListServiceImpl{
		store:  store,
		market: market,
		shaper: shaper,
		logger: l,
		newID:  uuid.NewString,
		items:  LoadTradeList(store, l),
	}
}

// Items returns a copy of the list in insertion order.
func (s *TradeListServiceImpl) Items() []entity.TradeItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.TradeItem, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends item with a fresh id and a canonical rarity (COMMON when missing). Fields are
// kept as entered; only an item whose name and contract are both empty is rejected.
func (s *TradeListServiceImpl) Add(item entity.TradeItem) (entity.TradeItem, error) {
	if item.Name == "" && item.Contract == "" {
		return entity.TradeItem{}, ErrEmptyTradeItem
	}
	item.Rarity = view.NormalizeRarity(string(item.Rarity))
	item.ID = fmt.Sprintf("%s-%s-%s", item.Contract, item.TokenID, s.newID())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	SaveTradeList(s.store, s.items, s.logger)
	s.logger.Debug("Trade item added", "id", item.ID)
	return item, nil
}

// Remove deletes the entry with id and reports whether one existed.
func (s *TradeListServiceImpl) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make([]entity.TradeItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(s.items) {
		return false
	}
	s.items = kept
	SaveTradeList(s.store, s.items, s.logger)
	return true
}

// ImportFromWallet merges the wallet holdings into the list, keeping the first entry of
// each id, and returns how many entries were added. On failure the list is unchanged.
func (s *TradeListServiceImpl) ImportFromWallet(ctx context.Context, wallet string) (int, error) {
	if wallet == "" {
		return 0, ErrWalletRequired
	}
	payload, err := s.market.Owner(ctx, wallet)
	if err != nil {
		s.logger.Warn("Failed to import holdings", "wallet", wallet, "error", err)
		return 0, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}
	mapped := s.shaper.TradeItemsFromHoldings(payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	combined := make([]entity.TradeItem, 0, len(s.items)+len(mapped))
	combined = append(combined, s.items...)
	combined = append(combined, mapped...)
	merged := utils.DedupeBy(combined, func(it entity.TradeItem) string { return it.ID })

	added := len(merged) - len(s.items)
	s.items = merged
	SaveTradeList(s.store, s.items, s.logger)
	s.logger.Info("Imported wallet holdings", "wallet", wallet, "mapped", len(mapped), "added", added)
	return added, nil
}
