package view

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMarketURL is used as the pack link when the upstream provides none.
const DefaultMarketURL = "https://vibechain.com/market"

// Shaper converts upstream items into view models. The zero value is usable;
// the hooks exist so tests can pin ids and time.
type Shaper struct {
	MarketURL string
	Now       func() time.Time
	NewID     func() string
}

// NewShaper creates a Shaper that links packs without a url to marketURL.
func NewShaper(marketURL string) *Shaper {
	return &Shaper{MarketURL: marketURL}
}

func (s *Shaper) marketURL() string {
	if s == nil || s.MarketURL == "" {
		return DefaultMarketURL
	}
	return s.MarketURL
}

func (s *Shaper) now() time.Time {
	if s == nil || s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Shaper) newID() string {
	if s == nil || s.NewID == nil {
		return uuid.NewString()
	}
	return s.NewID()
}
