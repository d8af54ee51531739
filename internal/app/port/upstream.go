package port

import (
	"context"

	"vibe_tracker/internal/domain/entity"
)

// FetchOptions are the per-call options of UpstreamFetcher.Fetch.
type FetchOptions struct {
	Method      string // defaults to GET
	Body        []byte
	ContentType string
}

// UpstreamFetcher calls the marketplace API through the proxy route.
// The result is decoded JSON, or the raw text when the body is not JSON.
type UpstreamFetcher interface {
	Fetch(ctx context.Context, path string, opts FetchOptions) (any, error)
}

// MarketClient exposes the upstream endpoints consumed by the dashboard.
type MarketClient interface {
	// RecentPacks returns the latest packs for sale.
	RecentPacks(ctx context.Context) ([]entity.RawItem, error)
	// RecentOpenings returns the latest pack openings.
	RecentOpenings(ctx context.Context) ([]entity.RawItem, error)
	// OpenedPacks is the fallback feed used when RecentOpenings fails.
	OpenedPacks(ctx context.Context) ([]entity.RawItem, error)
	// Owner returns the raw owner payload (boughtItems, holdings, cards) of a wallet.
	Owner(ctx context.Context, wallet string) (any, error)
}
