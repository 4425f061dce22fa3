package primarium

import (
	"sync"
	"time"
)

// PostCache is an in-memory TTL cache of blog posts, keyed per settlement.
// Published sites poll the public API for posts; the cache keeps those reads
// off SQLite.
type PostCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	ttl     time.Duration
	store   *Store
}

type cacheEntry struct {
	posts   []BlogPost
	fetched time.Time
}

// NewPostCache creates a PostCache backed by the given Store.
func NewPostCache(s *Store, ttl time.Duration) *PostCache {
	return &PostCache{store: s, ttl: ttl, entries: make(map[string]*cacheEntry)}
}

func (c *PostCache) valid(e *cacheEntry) bool {
	return e != nil && time.Since(e.fetched) < c.ttl
}

// Invalidate drops a settlement's cached posts so the next read triggers a
// fresh load. Called after every post mutation.
func (c *PostCache) Invalidate(settlementID string) {
	c.mu.Lock()
	delete(c.entries, settlementID)
	c.mu.Unlock()
}

// ListPosts returns a settlement's posts ordered by date descending,
// serving from cache when fresh. It tries a read lock first; only takes a
// write lock if a reload is needed.
func (c *PostCache) ListPosts(settlementID string) ([]BlogPost, error) {
	c.mu.RLock()
	if e := c.entries[settlementID]; c.valid(e) {
		posts := e.posts
		c.mu.RUnlock()
		return posts, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e := c.entries[settlementID]; c.valid(e) {
		return e.posts, nil
	}
	posts, err := c.store.ListPosts(settlementID)
	if err != nil {
		return nil, err
	}
	c.entries[settlementID] = &cacheEntry{posts: posts, fetched: time.Now()}
	return posts, nil
}

// GetPost returns a single post by id from the settlement's cached list.
func (c *PostCache) GetPost(settlementID, id string) (BlogPost, error) {
	posts, err := c.ListPosts(settlementID)
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}
