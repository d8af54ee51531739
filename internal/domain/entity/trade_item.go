package entity

// TradeItem is an entry of the user's "for trade" list.
type TradeItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Rarity   Rarity `json:"rarity"`
	Contract string `json:"contract"`
	TokenID  string `json:"tokenId"`
	Notes    string `json:"notes"`
}
