package service

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"vibe_tracker/internal/app/port"
	"vibe_tracker/internal/app/view"
	"vibe_tracker/internal/domain/entity"
	"vibe_tracker/internal/pkg/logger"
)

var errUpstream = errors.New("upstream 503 unavailable")

type fakeMarket struct {
	mu          sync.Mutex
	packs       []entity.RawItem
	packsErr    error
	openings    []entity.RawItem
	openingsErr error
	opened      []entity.RawItem
	openedErr   error
	owner       any
	ownerErr    error
	calls       []string
	// onOwner runs before Owner returns, to interleave concurrent calls.
	onOwner func()
}

func (m *fakeMarket) record(name string) {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()
}

func (m *fakeMarket) RecentPacks(context.Context) ([]entity.RawItem, error) {
	m.record("packs")
	return m.packs, m.packsErr
}

func (m *fakeMarket) RecentOpenings(context.Context) ([]entity.RawItem, error) {
	m.record("openings")
	return m.openings, m.openingsErr
}

func (m *fakeMarket) OpenedPacks(context.Context) ([]entity.RawItem, error) {
	m.record("opened")
	return m.opened, m.openedErr
}

func (m *fakeMarket) Owner(_ context.Context, wallet string) (any, error) {
	m.record("owner:" + wallet)
	if m.onOwner != nil {
		m.onOwner()
	}
	return m.owner, m.ownerErr
}

var _ port.MarketClient = (*fakeMarket)(nil)

type failingStore struct{}

func (failingStore) Get(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) Set(string, []byte) error   { return errors.New("disk full") }
func (failingStore) Clear(string) error         { return errors.New("disk gone") }

func testShaper() *view.Shaper {
	n := 0
	return &view.Shaper{NewID: func() string {
		n++
		return "gen" + string(rune('0'+n))
	}}
}

func testLogger() port.Logger {
	return logger.NewZapAdapter(zap.NewNop())
}
