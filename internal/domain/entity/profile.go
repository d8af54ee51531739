package entity

// ProfileHolding is an item bought by (or held in) the active wallet.
type ProfileHolding struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TokenID     string `json:"tokenId"`
	Description string `json:"description,omitempty"`
}

// BoughtItem is the purchase-history view of a ProfileHolding.
type BoughtItem = ProfileHolding
