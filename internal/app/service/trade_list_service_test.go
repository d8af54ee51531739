package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/infrastructure/storage"
)

func newTradeService(t *testing.T, m *fakeMarket) (*TradeListServiceImpl, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	svc := NewTradeListService(store, m, testShaper(), testLogger()).(*TradeListServiceImpl)
	svc.newID = func() string { return "u1" }
	return svc, store
}

func TestLoadTradeList_AbsentOrCorrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	assert.Equal(t, []entity.TradeItem{}, LoadTradeList(store, testLogger()))

	require.NoError(t, store.Set(TradeListKey, []byte("{not json")))
	assert.Equal(t, []entity.TradeItem{}, LoadTradeList(store, testLogger()))

	require.NoError(t, store.Set(TradeListKey, []byte("null")))
	assert.Equal(t, []entity.TradeItem{}, LoadTradeList(store, testLogger()))

	assert.Equal(t, []entity.TradeItem{}, LoadTradeList(failingStore{}, testLogger()))
}

func TestTradeList_PersistsAcrossInstances(t *testing.T) {
	svc, store := newTradeService(t, &fakeMarket{})

	added, err := svc.Add(entity.TradeItem{Name: "Dragon", Rarity: "legendary", Contract: "0xc", TokenID: "7"})
	require.NoError(t, err)
	assert.Equal(t, "0xc-7-u1", added.ID)
	assert.Equal(t, entity.RarityLegendary, added.Rarity)

	reloaded := NewTradeListService(store, &fakeMarket{}, testShaper(), testLogger())
	assert.Equal(t, []entity.TradeItem{added}, reloaded.Items())
}

func TestTradeList_AddRejectsEmpty(t *testing.T) {
	svc, _ := newTradeService(t, &fakeMarket{})

	_, err := svc.Add(entity.TradeItem{Notes: "only notes", TokenID: "1"})
	assert.ErrorIs(t, err, ErrEmptyTradeItem)
	assert.Empty(t, svc.Items())

	item, err := svc.Add(entity.TradeItem{Contract: "0xc"})
	require.NoError(t, err)
	assert.Equal(t, entity.RarityCommon, item.Rarity)
}

func TestTradeList_AddKeepsWhitespaceName(t *testing.T) {
	svc, _ := newTradeService(t, &fakeMarket{})

	item, err := svc.Add(entity.TradeItem{Name: "  "})
	require.NoError(t, err)
	assert.Equal(t, "  ", item.Name)
	assert.Equal(t, "--u1", item.ID)
}

func TestTradeList_Remove(t *testing.T) {
	svc, _ := newTradeService(t, &fakeMarket{})
	item, err := svc.Add(entity.TradeItem{Name: "A"})
	require.NoError(t, err)

	assert.False(t, svc.Remove("missing"))
	assert.True(t, svc.Remove(item.ID))
	assert.Empty(t, svc.Items())
}

func TestTradeList_SaveFailureIsIgnored(t *testing.T) {
	svc := NewTradeListService(failingStore{}, &fakeMarket{}, testShaper(), testLogger())

	_, err := svc.Add(entity.TradeItem{Name: "A"})
	require.NoError(t, err)
	assert.Len(t, svc.Items(), 1)
}

func TestTradeList_ImportDedupes(t *testing.T) {
	m := &fakeMarket{owner: map[string]any{"holdings": []any{
		map[string]any{"name": "Dup", "contract": "0xc", "tokenId": "1"},
		map[string]any{"series": "New", "address": "0xd", "id": "2", "rarity": 4},
		map[string]any{"name": "Dup again", "contract": "0xc", "tokenId": "1"},
	}}}
	svc, _ := newTradeService(t, m)

	first, err := svc.ImportFromWallet(context.Background(), "0xwallet")
	require.NoError(t, err)
	assert.Equal(t, 2, first)

	second, err := svc.ImportFromWallet(context.Background(), "0xwallet")
	require.NoError(t, err)
	assert.Equal(t, 0, second)

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "0xc-1", items[0].ID)
	assert.Equal(t, "Dup", items[0].Name, "first occurrence wins")
	assert.Equal(t, "0xd-2", items[1].ID)
	assert.Equal(t, entity.RarityLegendary, items[1].Rarity)
}

func TestTradeList_ImportCardsFallback(t *testing.T) {
	m := &fakeMarket{owner: map[string]any{"cards": []any{map[string]any{"name": "C", "contract": "0xe", "tokenId": "9"}}}}
	svc, _ := newTradeService(t, m)

	n, err := svc.ImportFromWallet(context.Background(), "0xwallet")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTradeList_ImportFailureLeavesListUntouched(t *testing.T) {
	m := &fakeMarket{ownerErr: errUpstream}
	svc, _ := newTradeService(t, m)
	existing, err := svc.Add(entity.TradeItem{Name: "Keep"})
	require.NoError(t, err)

	_, err = svc.ImportFromWallet(context.Background(), "0xwallet")
	assert.ErrorIs(t, err, ErrImportFailed)
	assert.Equal(t, []entity.TradeItem{existing}, svc.Items())
}

func TestTradeList_ImportNeedsWallet(t *testing.T) {
	m := &fakeMarket{}
	svc, _ := newTradeService(t, m)

	_, err := svc.ImportFromWallet(context.Background(), "")
	assert.ErrorIs(t, err, ErrWalletRequired)
	assert.Empty(t, m.calls)
}
