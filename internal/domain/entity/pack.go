package entity

// PackListing is a pack for sale as shown in the marketplace grid.
type PackListing struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Creator       string   `json:"creator"`
	CreatorKey    string   `json:"creatorKey"`
	Rarity        Rarity   `json:"rarity"`
	PriceUSD      *float64 `json:"priceUsd,omitempty"`
	PriceUSDLabel string   `json:"priceUsdLabel,omitempty"`
	Image         string   `json:"image"`
	Verified      bool     `json:"verified"`
	URL           string   `json:"url"`

	// PlaceholderName is set when Name is the display default rather than upstream data.
	PlaceholderName bool `json:"-"`
}

// USDValue returns the pack price or 0 when the upstream did not provide one.
func (p PackListing) USDValue() float64 {
	if p.PriceUSD == nil {
		return 0
	}
	return *p.PriceUSD
}
