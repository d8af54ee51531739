package view

import (
	"sort"

	"vibe_tracker/internal/domain/entity"
)

// MaxCreators caps the verified-creator leaderboard.
const MaxCreators = 20

// VerifiedCreators groups verified packs by creator key and ranks creators by their single
// most valuable pack, highest first, keeping the top MaxCreators. Creators with equal top
// values keep the order in which they were first seen.
func VerifiedCreators(packs []entity.PackListing) []entity.CreatorAggregate {
	index := make(map[string]int)
	var groups []entity.CreatorAggregate

	for _, p := range packs {
		if !p.Verified {
			continue
		}
		key := p.CreatorKey
		if key == "" {
			key = UnknownCreator
		}
		i, ok := index[key]
		if !ok {
			name := p.Creator
			if name == "" {
				name = key
			}
			groups = append(groups, entity.CreatorAggregate{CreatorKey: key, DisplayName: name})
			i = len(groups) - 1
			index[key] = i
		}
		g := &groups[i]
		g.PackCount++
		if v := p.USDValue(); v > g.TopValueUSD {
			g.TopValueUSD = v
			g.TopPackName = p.Name
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].TopValueUSD > groups[b].TopValueUSD
	})
	if len(groups) > MaxCreators {
		groups = groups[:MaxCreators]
	}
	if groups == nil {
		groups = []entity.CreatorAggregate{}
	}
	return groups
}
