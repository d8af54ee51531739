package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/pkg/metrics"
	"vibe_tracker/internal/pkg/utils"
)

const (
	// MsgNoBoughtItems is shown when the wallet has no purchases or the endpoint failed.
	MsgNoBoughtItems = "No items found (or endpoint not available)."
	// MsgNoWallet is shown when no wallet is active.
	MsgNoWallet = "Use the connect button or paste an address."
)

// snapshot is the data of one completed load. It is replaced as a whole.
type snapshot struct {
	packs    []entity.PackListing
	creators []entity.CreatorAggregate
	activity []entity.ActivityEvent
	bought   []entity.BoughtItem
	wallet   string
}

// DashboardServiceImpl implements port.DashboardService.
type DashboardServiceImpl struct {
	market port.MarketClient
	shaper *view.Shaper
	logger port.Logger

	mu         sync.RWMutex
	generation uint64
	current    snapshot
}

// NewDashboardService creates a new instance of DashboardServiceImpl.
func NewDashboardService(market port.MarketClient, shaper *view.Shaper, l port.Logger) port.DashboardService {
	return &DashboardServiceImpl{
		market: market,
		shaper: shaper,
		logger: l,
	}
}

// Load runs packs, then activity, then profile, one after another. A failing step
// degrades to empty data and the flow goes on; the returned error lists what failed.
// A load that was superseded by a newer Load or ResetProfile is thrown away.
func (s *DashboardServiceImpl) Load(ctx context.Context, wallet string) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Debug("Loading dashboard", "wallet", wallet, "generation", gen)

	var errs []error
	next := snapshot{wallet: wallet}

	rawPacks, err := s.market.RecentPacks(ctx)
	if err != nil {
		s.logger.Error("Failed to load packs", "error", err)
		metrics.DashboardLoads.WithLabelValues("packs", "failed").Inc()
		errs = append(errs, fmt.Errorf("failed to load packs: %w", err))
		rawPacks = nil
	} else {
		metrics.DashboardLoads.WithLabelValues("packs", "ok").Inc()
	}
	next.packs = s.shaper.Packs(rawPacks)
	next.creators = view.VerifiedCreators(next.packs)

	rawActivity, err := s.loadActivity(ctx)
	if err != nil {
		errs = append(errs, err)
	}
	next.activity = s.shaper.Activities(rawActivity)

	if wallet != "" {
		payload, err := s.market.Owner(ctx, wallet)
		if err != nil {
			s.logger.Warn("Failed to load wallet profile", "wallet", wallet, "error", err)
			metrics.DashboardLoads.WithLabelValues("profile", "failed").Inc()
			errs = append(errs, fmt.Errorf("failed to load profile: %w", err))
		} else {
			metrics.DashboardLoads.WithLabelValues("profile", "ok").Inc()
			next.bought = s.shaper.BoughtItems(payload)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("Discarding stale dashboard load", "generation", gen, "latest", s.generation)
		metrics.DashboardLoads.WithLabelValues("snapshot", "stale").Inc()
		return nil
	}
	s.current = next
	s.logger.Info("Dashboard loaded",
		"packs", len(next.packs), "creators", len(next.creators),
		"activity", len(next.activity), "bought", len(next.bought))
	return errors.Join(errs...)
}

// loadActivity reads recent openings and falls back to opened packs.
func (s *DashboardServiceImpl) loadActivity(ctx context.Context) ([]entity.RawItem, error) {
	items, err := s.market.RecentOpenings(ctx)
	if err == nil {
		metrics.DashboardLoads.WithLabelValues("activity", "ok").Inc()
		return items, nil
	}
	s.logger.Warn("Recent openings unavailable, falling back to opened packs", "error", err)
	metrics.DashboardLoads.WithLabelValues("activity", "fallback").Inc()

	items, fallbackErr := s.market.OpenedPacks(ctx)
	if fallbackErr != nil {
		s.logger.Error("Failed to load activity feed", "error", fallbackErr)
		metrics.DashboardLoads.WithLabelValues("activity", "failed").Inc()
		return nil, fmt.Errorf("failed to load activity: %w", fallbackErr)
	}
	return items, nil
}

// Packs returns the loaded packs matching filter.
func (s *DashboardServiceImpl) Packs(filter view.Filter) []entity.PackListing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if filter.IsZero() {
		out := make([]entity.PackListing, len(s.current.packs))
		copy(out, s.current.packs)
		return out
	}
	return view.FilterPacks(s.current.packs, filter)
}

// Activity returns at most limit matching events; limit <= 0 means all.
func (s *DashboardServiceImpl) Activity(filter view.Filter, limit int) []entity.ActivityEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return utils.Limit(view.FilterActivity(s.current.activity, filter), limit)
}

// Creators returns the verified-creator ranking of the loaded packs.
func (s *DashboardServiceImpl) Creators() []entity.CreatorAggregate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.CreatorAggregate, len(s.current.creators))
	copy(out, s.current.creators)
	return out
}

// BoughtItems implements port.DashboardService.
func (s *DashboardServiceImpl) BoughtItems() ([]entity.BoughtItem, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current.wallet == "" {
		return []entity.BoughtItem{}, MsgNoWallet
	}
	if len(s.current.bought) == 0 {
		return []entity.BoughtItem{}, MsgNoBoughtItems
	}
	out := make([]entity.BoughtItem, len(s.current.bought))
	copy(out, s.current.bought)
	return out, ""
}

// ResetProfile drops per-wallet data and invalidates loads still in flight.
func (s *DashboardServiceImpl) ResetProfile() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.current.bought = nil
	s.current.wallet = ""
}
