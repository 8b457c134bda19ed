// Package store provides the in-memory, snapshot-readable posting
// store: the concrete adapter behind driven.PostingStore.
package store

import (
	"sync"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driven"
)

// generation is one immutable published view: word -> path ->
// postings. Once handed out via Snapshot, a generation is never
// mutated; Publish always builds a new one.
type generation map[string]map[string][]domain.Posting

// Snapshot implements driven.Snapshot over a single generation.
type snapshot struct {
	gen generation
}

func (s snapshot) Lookup(word string) (map[string][]domain.Posting, bool) {
	docs, ok := s.gen[word]
	return docs, ok
}

func (s snapshot) Words() []string {
	words := make([]string, 0, len(s.gen))
	for word := range s.gen {
		words = append(words, word)
	}
	return words
}

// Store is a copy-on-write posting store guarded by an RWMutex.
// Publish takes the write lock and swaps in a new generation that
// shares every untouched word bucket by reference with the previous
// one, only allocating buckets for words this document touches.
// Snapshot takes the read lock just long enough to copy the pointer,
// so readers never block a concurrent Publish once they hold their
// handle.
type Store struct {
	mu  sync.RWMutex
	gen generation
}

var _ driven.PostingStore = (*Store)(nil)

// New returns an empty posting store.
func New() *Store {
	return &Store{gen: make(generation)}
}

// Publish merges local (word -> postings) entries for path into the
// store as a single atomic step, visible to every Snapshot taken after
// Publish returns.
func (s *Store) Publish(path string, local map[string][]domain.Posting) {
	if len(local) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(generation, len(s.gen)+len(local))
	for word, docs := range s.gen {
		next[word] = docs
	}

	for word, postings := range local {
		if len(postings) == 0 {
			continue
		}
		existing := next[word]
		docs := make(map[string][]domain.Posting, len(existing)+1)
		for p, ps := range existing {
			docs[p] = ps
		}
		merged := make([]domain.Posting, 0, len(docs[path])+len(postings))
		merged = append(merged, docs[path]...)
		merged = append(merged, postings...)
		docs[path] = merged
		next[word] = docs
	}

	s.gen = next
}

// Snapshot returns a read handle pinned to the currently published
// generation.
func (s *Store) Snapshot() driven.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{gen: s.gen}
}
