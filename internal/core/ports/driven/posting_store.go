// Package driven declares the interfaces the core services depend on
// and expect an adapter to provide (a posting store, a document
// loader). Mirroring these as small interfaces, rather than importing
// concrete adapter packages, keeps the services testable with fakes.
package driven

import "github.com/arcbeam-labs/lexidex/internal/core/domain"

// PostingStore is the concurrent, snapshot-readable inverted index.
// Publish merges one document's partial index into the store; once
// Publish returns, the merge is visible to every subsequent Snapshot.
// No deletions: a (word, path) entry, once published, is only ever
// extended by later merges to the same path.
type PostingStore interface {
	// Publish merges local (word -> postings) entries for path into
	// the store as a single atomic step.
	Publish(path string, local map[string][]domain.Posting)

	// Snapshot returns a read handle pinned to the generation of the
	// store published at the moment of the call. Concurrent Publish
	// calls never mutate a handle already handed out.
	Snapshot() Snapshot
}

// Snapshot is an immutable view of the posting store safe for
// concurrent reads.
type Snapshot interface {
	// Lookup returns the per-path postings for word, or (nil, false)
	// if word was never published.
	Lookup(word string) (map[string][]domain.Posting, bool)

	// Words returns every indexed word in this generation, in no
	// particular order. Used only for diagnostic dumps.
	Words() []string
}
