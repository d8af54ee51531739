package view

import (
	"vibe_tracker/internal/domain/entity"
)

const (
	// UnknownCreator groups verified packs that carry no creator identity.
	UnknownCreator = "unknown"
	// DefaultPackName is displayed for packs without a name or collection name.
	DefaultPackName = "Pack"
)

var (
	packNameAccessors    = []Accessor{Field("name"), Field("collectionName")}
	packRarityAccessors  = []Accessor{Field("rarity"), Nested("metadata", "rarity")}
	packImageAccessors   = []Accessor{Field("image"), Nested("metadata", "image")}
	packURLAccessors     = []Accessor{Field("url"), Nested("metadata", "url")}
	creatorKeyAccessors  = []Accessor{Field("creator"), Field("creatorAddress")}
	verifiedFlagAccessor = Nested("metadata", "verified")
)

// Pack shapes one upstream pack.
//
// Fallbacks: id, then "<contractAddress|x>-<tokenId|random>"; name, then collectionName,
// then "Pack"; creator key is creator, then creatorAddress, then "unknown". A pack is
// verified only when metadata.verified is the boolean true.
func (s *Shaper) Pack(item entity.RawItem) entity.PackListing {
	p := entity.PackListing{
		ID:         s.itemKey(item),
		Name:       StringOf(item, "", packNameAccessors...),
		Creator:    StringOf(item, "", Field("creator")),
		CreatorKey: StringOf(item, UnknownCreator, creatorKeyAccessors...),
		Image:      StringOf(item, "", packImageAccessors...),
		URL:        StringOf(item, s.marketURL(), packURLAccessors...),
	}
	if p.Name == "" {
		p.Name = DefaultPackName
		p.PlaceholderName = true
	}
	rarity, _ := FirstNonEmpty(item, packRarityAccessors...)
	p.Rarity = NormalizeRarity(rarity)
	if price, ok := PriceUSD(item); ok {
		p.PriceUSD = &price
		p.PriceUSDLabel = FormatUSD(price)
	}
	if v, ok := verifiedFlagAccessor(item); ok {
		flag, isBool := v.(bool)
		p.Verified = isBool && flag
	}
	return p
}

// Packs shapes a whole upstream pack list, keeping its order.
func (s *Shaper) Packs(items []entity.RawItem) []entity.PackListing {
	out := make([]entity.PackListing, 0, len(items))
	for _, item := range items {
		out = append(out, s.Pack(item))
	}
	return out
}

func (s *Shaper) itemKey(item entity.RawItem) string {
	if id := StringOf(item, "", Field("id")); id != "" {
		return id
	}
	return StringOf(item, "x", Field("contractAddress")) + "-" + StringOf(item, s.newID(), Field("tokenId"))
}
