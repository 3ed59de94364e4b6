package portfolio

import (
	"context"
	"sync"
	"time"
)

// Library is the in-memory working collection. Reads lazily (re)load from
// the Store with a TTL, so a hand-redeployed collection file shows up
// without a restart; admin edits replace the collection in place and stick
// until exported. There is a single operator, so no cross-writer locking
// exists beyond the mutex guarding this process's own handlers.
type Library struct {
	mu      sync.RWMutex
	posts   []Post
	fetched time.Time
	dirty   bool
	ttl     time.Duration
	store   *Store
}

// NewLibrary creates a Library backed by the given Store.
func NewLibrary(s *Store, ttl time.Duration) *Library {
	return &Library{store: s, ttl: ttl}
}

func (l *Library) fresh() bool {
	if l.posts == nil {
		return false
	}
	// Unexported edits must not be clobbered by a TTL reload.
	return l.dirty || time.Since(l.fetched) < l.ttl
}

// Posts returns the current collection, reloading from the store if the
// cached copy is stale.
func (l *Library) Posts(ctx context.Context) ([]Post, error) {
	l.mu.RLock()
	if l.fresh() {
		posts := l.posts
		l.mu.RUnlock()
		return posts, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fresh() {
		return l.posts, nil
	}
	posts, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	l.posts = posts
	l.fetched = time.Now()
	return l.posts, nil
}

// Replace installs an edited collection and marks it dirty so it survives
// TTL reloads until the operator exports and redeploys.
func (l *Library) Replace(posts []Post) {
	l.mu.Lock()
	l.posts = posts
	l.fetched = time.Now()
	l.dirty = true
	l.mu.Unlock()
}

// Invalidate drops the cached collection; the next read loads fresh from
// the store. Any unexported edits are discarded.
func (l *Library) Invalidate() {
	l.mu.Lock()
	l.posts = nil
	l.dirty = false
	l.mu.Unlock()
}
