package entity

// CreatorAggregate summarizes the verified packs of one creator.
type CreatorAggregate struct {
	CreatorKey  string  `json:"creator"`
	DisplayName string  `json:"name"`
	PackCount   int     `json:"count"`
	TopValueUSD float64 `json:"top"`
	TopPackName string  `json:"topName"`
}
