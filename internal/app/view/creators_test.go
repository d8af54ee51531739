package view

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibe_tracker/internal/domain/entity"
)

func usd(v float64) *float64 { return &v }

func TestVerifiedCreators_GroupsAndRanks(t *testing.T) {
	packs := []entity.PackListing{
		{Name: "A1", Creator: "A", CreatorKey: "A", Verified: true, PriceUSD: usd(10)},
		{Name: "A2", Creator: "A", CreatorKey: "A", Verified: true, PriceUSD: usd(50)},
		{Name: "B1", Creator: "B", CreatorKey: "B", Verified: true, PriceUSD: usd(30)},
		{Name: "C1", Creator: "C", CreatorKey: "C", Verified: false, PriceUSD: usd(999)},
	}

	got := VerifiedCreators(packs)

	require.Len(t, got, 2)
	assert.Equal(t, entity.CreatorAggregate{CreatorKey: "A", DisplayName: "A", PackCount: 2, TopValueUSD: 50, TopPackName: "A2"}, got[0])
	assert.Equal(t, entity.CreatorAggregate{CreatorKey: "B", DisplayName: "B", PackCount: 1, TopValueUSD: 30, TopPackName: "B1"}, got[1])
}

func TestVerifiedCreators_UnknownKeyAndMissingPrice(t *testing.T) {
	packs := []entity.PackListing{
		{Name: "X", Verified: true},
		{Name: "Y", Verified: true, CreatorKey: UnknownCreator},
	}

	got := VerifiedCreators(packs)

	require.Len(t, got, 1)
	assert.Equal(t, UnknownCreator, got[0].CreatorKey)
	assert.Equal(t, UnknownCreator, got[0].DisplayName)
	assert.Equal(t, 2, got[0].PackCount)
	assert.Equal(t, 0.0, got[0].TopValueUSD)
	assert.Equal(t, "", got[0].TopPackName)
}

func TestVerifiedCreators_TopTwenty(t *testing.T) {
	var packs []entity.PackListing
	for i := 0; i < 30; i++ {
		key := fmt.Sprintf("creator-%02d", i)
		packs = append(packs, entity.PackListing{Name: key, Creator: key, CreatorKey: key, Verified: true, PriceUSD: usd(float64(i))})
	}

	got := VerifiedCreators(packs)

	require.Len(t, got, MaxCreators)
	assert.Equal(t, "creator-29", got[0].CreatorKey)
	assert.Equal(t, "creator-10", got[MaxCreators-1].CreatorKey)
}

// Equal maxima keep first-seen order (stable sort); this is implementation-defined
// behavior that callers should not rely on.
func TestVerifiedCreators_TieKeepsFirstSeenOrder(t *testing.T) {
	packs := []entity.PackListing{
		{Name: "p", CreatorKey: "first", Verified: true, PriceUSD: usd(20)},
		{Name: "q", CreatorKey: "second", Verified: true, PriceUSD: usd(20)},
	}

	got := VerifiedCreators(packs)

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].CreatorKey)
	assert.Equal(t, "second", got[1].CreatorKey)
}

func TestVerifiedCreators_Empty(t *testing.T) {
	assert.Equal(t, []entity.CreatorAggregate{}, VerifiedCreators(nil))
}
