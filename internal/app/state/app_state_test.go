package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Initial(t *testing.T) {
	assert.Equal(t, AppState{Theme: ThemeDark, ActiveTab: TabTrading}, NewStore().Snapshot())
}

func TestStore_ToggleTheme(t *testing.T) {
	s := NewStore()
	assert.Equal(t, ThemeLight, s.ToggleTheme().Theme)
	assert.Equal(t, ThemeDark, s.ToggleTheme().Theme)
}

func TestStore_SetTab(t *testing.T) {
	s := NewStore()

	st, err := s.SetTab("For Trade")
	require.NoError(t, err)
	assert.Equal(t, TabForTrade, st.ActiveTab)

	st, err = s.SetTab("Settings")
	assert.ErrorIs(t, err, ErrUnknownTab)
	assert.Equal(t, TabForTrade, st.ActiveTab)
}

func TestStore_SetWallet(t *testing.T) {
	s := NewStore()

	st, changed, err := s.SetWallet(" 0x833589fcd6edb6e08f4c7c32d4f71b54bda02913 ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", st.Wallet)

	_, changed, err = s.SetWallet("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	require.NoError(t, err)
	assert.False(t, changed, "same address in another case is the same wallet")

	_, changed, err = s.SetWallet("not-an-address")
	assert.Error(t, err)
	assert.False(t, changed)
	assert.Equal(t, "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", s.Snapshot().Wallet)

	st, changed, err = s.SetWallet("")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, st.Wallet)
}
