package httpclient

import (
	"context"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/infrastructure/configloader"
)

// marketClientImpl implements port.MarketClient on top of an UpstreamFetcher.
type marketClientImpl struct {
	fetcher       port.UpstreamFetcher
	chainID       int64
	packsLimit    int
	openingsLimit int
	logger        *zap.Logger
}

// NewMarketClient creates a MarketClient for the configured chain and page sizes.
func NewMarketClient(fetcher port.UpstreamFetcher, cfg configloader.MarketConfig, logger *zap.Logger) port.MarketClient {
	return &marketClientImpl{
		fetcher:       fetcher,
		chainID:       cfg.ChainID,
		packsLimit:    cfg.PacksLimit,
		openingsLimit: cfg.OpeningsLimit,
		logger:        logger.Named("MarketClient"),
	}
}

// RecentPacksPath is the listing endpoint for packs currently on sale.
func RecentPacksPath(limit int, chainID int64) string {
	return fmt.Sprintf("vibe/boosterbox/recent?limit=%d&includeMetadata=true&chainId=%d", limit, chainID)
}

// RecentOpeningsPath is the activity endpoint for recent pack openings.
func RecentOpeningsPath(limit int, chainID int64) string {
	return fmt.Sprintf("vibe/openings/recent?limit=%d&includeMetadata=true&chainId=%d", limit, chainID)
}

// OpenedPacksPath is the activity fallback: recent packs filtered to opened ones.
func OpenedPacksPath(limit int, chainID int64) string {
	return fmt.Sprintf("vibe/boosterbox/recent?limit=%d&includeMetadata=true&status=opened&chainId=%d", limit, chainID)
}

// OwnerPath is the per-wallet endpoint with purchases and holdings.
func OwnerPath(wallet string, chainID int64) string {
	return fmt.Sprintf("vibe/owner/%s?chainId=%d", url.PathEscape(wallet), chainID)
}

func (c *marketClientImpl) RecentPacks(ctx context.Context) ([]entity.RawItem, error) {
	return c.list(ctx, RecentPacksPath(c.packsLimit, c.chainID))
}

func (c *marketClientImpl) RecentOpenings(ctx context.Context) ([]entity.RawItem, error) {
	return c.list(ctx, RecentOpeningsPath(c.openingsLimit, c.chainID))
}

func (c *marketClientImpl) OpenedPacks(ctx context.Context) ([]entity.RawItem, error) {
	return c.list(ctx, OpenedPacksPath(c.packsLimit, c.chainID))
}

func (c *marketClientImpl) Owner(ctx context.Context, wallet string) (any, error) {
	if wallet == "" {
		return nil, fmt.Errorf("wallet address cannot be empty")
	}
	payload, err := c.fetcher.Fetch(ctx, OwnerPath(wallet, c.chainID), port.FetchOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch owner %s: %w", wallet, err)
	}
	return payload, nil
}

func (c *marketClientImpl) list(ctx context.Context, path string) ([]entity.RawItem, error) {
	payload, err := c.fetcher.Fetch(ctx, path, port.FetchOptions{})
	if err != nil {
		return nil, err
	}
	items := view.ExtractList(payload)
	c.logger.Debug("Fetched upstream list", zap.String("path", path), zap.Int("count", len(items)))
	return items, nil
}
