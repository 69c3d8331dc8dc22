package category_cache

import (
	"context"
	"sync"
	"time"

	"github.com/durable-fastener/durable-cms-backend/catalog"
)

const TTL = 5 * time.Minute

// Loader reads the three category tables and builds a fresh tree.
type Loader func(ctx context.Context) (catalog.Tree, error)

// Store holds the last built category tree. Reads are served from memory
// until the TTL passes or a write calls Invalidate.
type Store struct {
	mu        sync.RWMutex
	ttl       time.Duration
	tree      catalog.Tree
	fetchedAt time.Time
	valid     bool
	gen       uint64 // bumped by Invalidate
	now       func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{ttl: ttl, now: time.Now}
}

// Get returns the cached tree if it is still fresh.
func (s *Store) Get() (catalog.Tree, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.valid && s.now().Sub(s.fetchedAt) < s.ttl {
		return s.tree, true
	}
	return nil, false
}

func (s *Store) Set(tree catalog.Tree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(tree)
}

func (s *Store) set(tree catalog.Tree) {
	s.tree = tree
	s.fetchedAt = s.now()
	s.valid = true
}

func (s *Store) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// Invalidate drops the cached tree; call it on any category create or delete.
// Loads already in flight will not be cached.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree = nil
	s.valid = false
	s.gen++
}

// Refresh loads a new tree and caches it unless Invalidate ran while the
// load was in progress. The loaded tree is returned either way.
func (s *Store) Refresh(ctx context.Context, load Loader) (catalog.Tree, error) {
	gen := s.generation()
	tree, err := load(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.set(tree)
	}
	return tree, nil
}

// Tree serves the cached tree, loading it first when missing or stale.
func (s *Store) Tree(ctx context.Context, load Loader) (catalog.Tree, error) {
	if tree, ok := s.Get(); ok {
		return tree, nil
	}
	return s.Refresh(ctx, load)
}
