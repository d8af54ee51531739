package view

import (
	"fmt"
	"strings"
	"time"

	"vibe_tracker/internal/domain/entity"
)

// EmptyTokenID is shown when an opening carries no token id.
const EmptyTokenID = "—"

var (
	ownerAccessors      = []Accessor{Field("owner"), Field("to")}
	collectionAccessors = []Accessor{Field("collectionName"), Field("series"), Nested("metadata", "collectionName")}
	tokenIDAccessors    = []Accessor{Field("tokenId"), Field("id"), Nested("metadata", "tokenId")}
	cardNameAccessors   = []Accessor{Field("cardName"), Nested("metadata", "name")}
	timestampAccessors  = []Accessor{Field("timestamp"), Field("time")}
)

// Activity shapes one upstream opening.
//
// tokenId keeps a present zero ("tokenId ?? id ?? metadata.tokenId"); the other
// fallbacks skip empty values. Timestamps are unix millis or RFC 3339; a missing or
// unparsable timestamp is the shaping time.
func (s *Shaper) Activity(item entity.RawItem) entity.ActivityEvent {
	ev := entity.ActivityEvent{
		Owner:      StringOf(item, "", ownerAccessors...),
		Collection: StringOf(item, "Pack", collectionAccessors...),
		TokenID:    EmptyTokenID,
		CardName:   StringOf(item, "", cardNameAccessors...),
		Rarity:     NormalizeRarity(item["rarity"]),
		PriceUSD:   USDDisplay(item),
		Image:      StringOf(item, "", packImageAccessors...),
	}
	if v, ok := FirstPresent(item, tokenIDAccessors...); ok {
		if tid := ToString(v); tid != "" {
			ev.TokenID = tid
		}
	}

	if v, ok := FirstPresent(item, Field("id")); ok && ToString(v) != "" {
		ev.ID = ToString(v)
	} else {
		tokenPart := s.newID()
		if v, ok := FirstPresent(item, Field("tokenId")); ok {
			tokenPart = ToString(v)
		}
		ev.ID = StringOf(item, "", Field("contractAddress")) + "-" + tokenPart
	}

	ev.Timestamp = s.now().UnixMilli()
	if v, ok := FirstNonEmpty(item, timestampAccessors...); ok {
		if f, ok := ToFloat(v); ok {
			ev.Timestamp = int64(f)
		} else if t, err := time.Parse(time.RFC3339, ToString(v)); err == nil {
			ev.Timestamp = t.UnixMilli()
		}
	}
	return ev
}

// Activities shapes a whole feed. The result replaces any previous feed.
func (s *Shaper) Activities(items []entity.RawItem) []entity.ActivityEvent {
	out := make([]entity.ActivityEvent, 0, len(items))
	for _, item := range items {
		out = append(out, s.Activity(item))
	}
	return out
}

// ShortAddress abbreviates long addresses as 0x1234…abcd.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// Summary renders the ticker line for an opening.
func Summary(ev entity.ActivityEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s pulled ", ShortAddress(ev.Owner))
	if ev.CardName != "" {
		b.WriteString(ev.CardName)
		b.WriteString(" • ")
	}
	b.WriteString(string(ev.Rarity))
	if ev.PriceUSD != "" {
		fmt.Fprintf(&b, " (%s)", ev.PriceUSD)
	}
	fmt.Fprintf(&b, " in %s #%s", ev.Collection, ev.TokenID)
	return b.String()
}
