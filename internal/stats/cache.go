package stats

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// readTTL bounds how stale a dashboard refresh may be.
const readTTL = 45 * time.Second

// Cache keys are the three read-operation names — the operations take no
// parameters, so nothing else distinguishes their results.
const (
	keyLatestChannel  = "latest_channel"
	keyChannelHistory = "channel_history"
	keyAllVideos      = "all_videos"
)

// CachedStore memoizes the three read operations for readTTL so repeated
// dashboard refreshes don't hit SQLite every time. Writes bypass it; the
// server calls Invalidate on the manual-refresh endpoint and otherwise
// relies on expiry.
type CachedStore struct {
	store *Store
	lru   *expirable.LRU[string, any]
}

// NewCachedStore wraps store with the read cache.
func NewCachedStore(store *Store) *CachedStore {
	return &CachedStore{
		store: store,
		lru:   expirable.NewLRU[string, any](8, nil, readTTL),
	}
}

// LatestChannel returns the cached latest channel snapshot, loading it on a
// miss. Errors are never cached.
func (c *CachedStore) LatestChannel() (*ChannelSnapshot, error) {
	if v, ok := c.lru.Get(keyLatestChannel); ok {
		return v.(*ChannelSnapshot), nil
	}
	snap, err := c.store.LatestChannel()
	if err != nil {
		return nil, err
	}
	c.lru.Add(keyLatestChannel, snap)
	return snap, nil
}

// ChannelHistory returns the cached channel history, loading it on a miss.
func (c *CachedStore) ChannelHistory() ([]ChannelSnapshot, error) {
	if v, ok := c.lru.Get(keyChannelHistory); ok {
		return v.([]ChannelSnapshot), nil
	}
	history, err := c.store.ChannelHistory()
	if err != nil {
		return nil, err
	}
	c.lru.Add(keyChannelHistory, history)
	return history, nil
}

// AllVideos returns the cached video snapshots, loading them on a miss.
func (c *CachedStore) AllVideos() ([]VideoSnapshot, error) {
	if v, ok := c.lru.Get(keyAllVideos); ok {
		return v.([]VideoSnapshot), nil
	}
	videos, err := c.store.AllVideos()
	if err != nil {
		return nil, err
	}
	c.lru.Add(keyAllVideos, videos)
	return videos, nil
}

// Invalidate drops every cached read. Wired to the dashboard's manual
// refresh control.
func (c *CachedStore) Invalidate() {
	c.lru.Purge()
}
