package httpclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/infrastructure/configloader"
)

type recordingFetcher struct {
	paths   []string
	payload any
	err     error
}

func (f *recordingFetcher) Fetch(_ context.Context, path string, _ port.FetchOptions) (any, error) {
	f.paths = append(f.paths, path)
	return f.payload, f.err
}

func newTestMarket(f port.UpstreamFetcher) port.MarketClient {
	return NewMarketClient(f, configloader.MarketConfig{ChainID: 8453, PacksLimit: 160, OpeningsLimit: 80}, zap.NewNop())
}

func TestMarketClient_Paths(t *testing.T) {
	f := &recordingFetcher{payload: map[string]any{"data": []any{}}}
	m := newTestMarket(f)
	ctx := context.Background()

	_, _ = m.RecentPacks(ctx)
	_, _ = m.RecentOpenings(ctx)
	_, _ = m.OpenedPacks(ctx)
	_, _ = m.Owner(ctx, "0xAbC")

	assert.Equal(t, []string{
		"vibe/boosterbox/recent?limit=160&includeMetadata=true&chainId=8453",
		"vibe/openings/recent?limit=80&includeMetadata=true&chainId=8453",
		"vibe/boosterbox/recent?limit=160&includeMetadata=true&status=opened&chainId=8453",
		"vibe/owner/0xAbC?chainId=8453",
	}, f.paths)
}

func TestMarketClient_ListExtraction(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    int
	}{
		{"data field", map[string]any{"data": []any{map[string]any{"id": "a"}, map[string]any{"id": "b"}}}, 2},
		{"bare array", []any{map[string]any{"id": "a"}}, 1},
		{"object without data", map[string]any{"items": []any{map[string]any{}}}, 0},
		{"text", "oops", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := newTestMarket(&recordingFetcher{payload: tt.payload}).RecentPacks(context.Background())
			require.NoError(t, err)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestMarketClient_Errors(t *testing.T) {
	boom := errors.New("boom")
	m := newTestMarket(&recordingFetcher{err: boom})

	_, err := m.RecentOpenings(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = m.Owner(context.Background(), "0x1")
	assert.ErrorIs(t, err, boom)

	_, err = m.Owner(context.Background(), "")
	assert.Error(t, err)
}
