// Package state holds the per-installation UI state: theme, active wallet and tab.
package state

import (
	"errors"
	"sync"

	"vibe_tracker/internal/pkg/utils"
)

// Theme is the color scheme of the dashboard.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Tab names a dashboard section.
type Tab string

const (
	TabTrading  Tab = "Trading"
	TabForTrade Tab = "For Trade"
	TabActivity Tab = "Activity"
	TabProfile  Tab = "Profile"
)

// Tabs lists the sections in display order.
var Tabs = []Tab{TabTrading, TabForTrade, TabActivity, TabProfile}

// ErrUnknownTab is returned by SetTab for a name outside Tabs.
var ErrUnknownTab = errors.New("unknown tab")

// AppState is a snapshot of the UI state.
type AppState struct {
	Theme     Theme  `json:"theme"`
	Wallet    string `json:"wallet"`
	ActiveTab Tab    `json:"activeTab"`
}

// Initial is the state of a fresh installation.
func Initial() AppState {
	return AppState{Theme: ThemeDark, ActiveTab: TabTrading}
}

// Store guards the current AppState.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

// NewStore creates a Store in the Initial state.
func NewStore() *Store {
	return &Store{state: Initial()}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ToggleTheme flips between dark and light.
func (s *Store) ToggleTheme() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Theme == ThemeDark {
		s.state.Theme = ThemeLight
	} else {
		s.state.Theme = ThemeDark
	}
	return s.state
}

// SetTab activates the named tab.
func (s *Store) SetTab(name string) (AppState, error) {
	for _, t := range Tabs {
		if string(t) == name {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.state.ActiveTab = t
			return s.state, nil
		}
	}
	return s.Snapshot(), ErrUnknownTab
}

// SetWallet makes addr the active wallet; an empty addr disconnects. addr is stored in
// checksummed form. changed reports whether the active wallet is different now, in which
// case per-wallet data must be reloaded.
func (s *Store) SetWallet(addr string) (st AppState, changed bool, err error) {
	normalized, err := utils.NormalizeWallet(addr)
	if err != nil {
		return s.Snapshot(), false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed = s.state.Wallet != normalized
	s.state.Wallet = normalized
	return s.state, changed, nil
}
