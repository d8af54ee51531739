package port

import (
	"context"

	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
)

// DashboardService loads and serves the marketplace snapshot.
type DashboardService interface {
	// Load runs the packs -> activity -> profile flow for wallet and replaces the snapshot.
	Load(ctx context.Context, wallet string) error
	Packs(filter view.Filter) []entity.PackListing
	Activity(filter view.Filter, limit int) []entity.ActivityEvent
	Creators() []entity.CreatorAggregate
	// BoughtItems returns the purchases of the wallet of the last load, plus a user-facing
	// message when the list is empty.
	BoughtItems() ([]entity.BoughtItem, string)
	// ResetProfile drops the per-wallet data.
	ResetProfile()
}

// TradeListService manages the locally persisted "for trade" list.
type TradeListService interface {
	Items() []entity.TradeItem
	Add(item entity.TradeItem) (entity.TradeItem, error)
	Remove(id string) bool
	ImportFromWallet(ctx context.Context, wallet string) (int, error)
}
