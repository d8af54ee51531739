package view

import (
	"strconv"
	"strings"

	"vibe_tracker/internal/domain/entity"
)

// rarityCodes maps the numeric codes 1-4 and the canonical names to rarities.
var rarityCodes = func() map[string]entity.Rarity {
	codes := make(map[string]entity.Rarity, 2*len(entity.Rarities))
	for i, r := range entity.Rarities {
		codes[strconv.Itoa(i+1)] = r
		codes[string(r)] = r
	}
	return codes
}()

// NormalizeRarity maps a numeric code (1-4) or a rarity name in any casing to its
// canonical value. JSON numbers are compared by value, so 4.0 is LEGENDARY; strings
// are compared as text. Anything unrecognized is COMMON, so unknown items still show
// up in rarity-filtered views.
func NormalizeRarity(v any) entity.Rarity {
	key := ToString(v)
	if _, isText := v.(string); !isText {
		if f, ok := ToFloat(v); ok {
			key = strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	if r, ok := rarityCodes[strings.ToUpper(strings.TrimSpace(key))]; ok {
		return r
	}
	return entity.RarityCommon
}

// ParseRarityFilter turns a filter selector into ALL or a canonical rarity.
// Empty and unknown selectors mean ALL.
func ParseRarityFilter(s string) entity.Rarity {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || s == string(entity.RarityAll) {
		return entity.RarityAll
	}
	if r, ok := rarityCodes[s]; ok {
		return r
	}
	return entity.RarityAll
}

// RarityIcons renders a rarity as one to four stars.
func RarityIcons(r entity.Rarity) string {
	switch NormalizeRarity(string(r)) {
	case entity.RarityLegendary:
		return "★★★★"
	case entity.RarityEpic:
		return "★★★"
	case entity.RarityRare:
		return "★★"
	default:
		return "★"
	}
}
