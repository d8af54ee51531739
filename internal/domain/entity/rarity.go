package entity

// Rarity is one of the four canonical card/pack rarities.
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"

	// RarityAll is the filter selector that matches every rarity. It is never assigned to an item.
	RarityAll Rarity = "ALL"
)

// Rarities lists the canonical values from lowest to highest.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
