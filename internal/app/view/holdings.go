package view

import (
	"vibe_tracker/internal/domain/entity"
)

var (
	holdingNameAccessors     = []Accessor{Field("name"), Field("series")}
	holdingContractAccessors = []Accessor{Field("contract"), Field("address")}
	holdingTokenAccessors    = []Accessor{Field("tokenId"), Field("id")}
	descriptionAccessors     = []Accessor{Field("description"), Nested("metadata", "description")}
)

// BoughtItems shapes the "boughtItems" list of an owner payload.
func (s *Shaper) BoughtItems(payload any) []entity.BoughtItem {
	items := ExtractField(payload, "boughtItems")
	out := make([]entity.BoughtItem, 0, len(items))
	for _, item := range items {
		h := entity.ProfileHolding{
			Name:        StringOf(item, "Item", Field("name")),
			TokenID:     EmptyTokenID,
			Description: StringOf(item, "", descriptionAccessors...),
		}
		if v, ok := FirstPresent(item, Field("tokenId")); ok && ToString(v) != "" {
			h.TokenID = ToString(v)
		}
		h.ID = StringOf(item, "", Field("id"))
		if h.ID == "" {
			h.ID = StringOf(item, "", Field("contract")) + "-" + ToString(item["tokenId"])
		}
		out = append(out, h)
	}
	return out
}

// TradeItemsFromHoldings maps the "holdings" (or "cards") list of an owner payload into
// trade list entries. The id is "<contract>-<tokenId>" so a repeated import of the same
// wallet deduplicates; entries with neither part get a random id.
func (s *Shaper) TradeItemsFromHoldings(payload any) []entity.TradeItem {
	items := ExtractField(payload, "holdings", "cards")
	out := make([]entity.TradeItem, 0, len(items))
	for _, item := range items {
		t := entity.TradeItem{
			Name:     StringOf(item, "Item", holdingNameAccessors...),
			Rarity:   NormalizeRarity(item["rarity"]),
			Contract: StringOf(item, "", holdingContractAccessors...),
			TokenID:  StringOf(item, "", holdingTokenAccessors...),
		}
		if t.Contract == "" && t.TokenID == "" {
			t.ID = s.newID()
		} else {
			t.ID = t.Contract + "-" + t.TokenID
		}
		out = append(out, t)
	}
	return out
}
