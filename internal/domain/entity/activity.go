package entity

// ActivityEvent is a single pack opening ("pull").
type ActivityEvent struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	Collection string `json:"collection"`
	TokenID    string `json:"tokenId"`
	CardName   string `json:"cardName,omitempty"`
	Rarity     Rarity `json:"rarity"`
	PriceUSD   string `json:"priceUsd,omitempty"`
	Image      string `json:"image"`
	Timestamp  int64  `json:"ts"` // unix millis
}
