package view

import (
	"strings"

	"vibe_tracker/internal/domain/entity"
)

// Filter holds the marketplace filter criteria. The zero value matches everything.
type Filter struct {
	Query        string
	Rarity       entity.Rarity // RarityAll or "" for any rarity
	VerifiedOnly bool
}

// IsZero reports whether f matches every item.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && rarityMatchesAll(f.Rarity) && !f.VerifiedOnly
}

func rarityMatchesAll(r entity.Rarity) bool {
	return r == "" || r == entity.RarityAll
}

// FilterPacks returns the packs that satisfy all criteria: the query is a case-insensitive
// substring of the creator or the upstream pack name (a placeholder name never matches), the rarity equals the selector, and the
// pack is verified when VerifiedOnly is set. Input order is kept.
func FilterPacks(packs []entity.PackListing, f Filter) []entity.PackListing {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entity.PackListing, 0, len(packs))
	for _, p := range packs {
		if q != "" && !containsFold(p.Creator, q) && (p.PlaceholderName || !containsFold(p.Name, q)) {
			continue
		}
		if f.VerifiedOnly && !p.Verified {
			continue
		}
		if !rarityMatchesAll(f.Rarity) && p.Rarity != f.Rarity {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterActivity applies the query (owner, collection, card name) and rarity criteria to
// the feed. Openings carry no verified flag, so VerifiedOnly is ignored.
func FilterActivity(events []entity.ActivityEvent, f Filter) []entity.ActivityEvent {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]entity.ActivityEvent, 0, len(events))
	for _, ev := range events {
		if q != "" && !containsFold(ev.Owner, q) && !containsFold(ev.Collection, q) && !containsFold(ev.CardName, q) {
			continue
		}
		if !rarityMatchesAll(f.Rarity) && ev.Rarity != f.Rarity {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
