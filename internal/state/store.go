package state

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/five82/folio/internal/posts"
)

// Snapshot is the latest post list available to the UI.
type Snapshot struct {
	Posts               []posts.Post
	Loaded              bool // at least one refresh succeeded
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the source has failed several refreshes in a row.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Find returns the post with slug.
func (s Snapshot) Find(slug string) (posts.Post, bool) {
	for _, p := range s.Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return posts.Post{}, false
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored post list. When err is non-nil the previous
// posts are kept and the error is recorded.
func (s *Store) Update(items []posts.Post, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Posts = clonePosts(items)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Posts = clonePosts(s.snapshot.Posts)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePosts(items []posts.Post) []posts.Post {
	if len(items) == 0 {
		return nil
	}
	dup := make([]posts.Post, len(items))
	for i, p := range items {
		p.Tags = slices.Clone(p.Tags)
		dup[i] = p
	}
	return dup
}
