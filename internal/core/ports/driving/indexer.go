// Package driving declares the interfaces the outer (wire-protocol)
// layer depends on: indexing control and phrase search. Concrete
// implementations live in internal/core/services.
package driving

import "github.com/arcbeam-labs/lexidex/internal/core/domain"

// IndexerService registers documents for indexing and reports
// readiness of the first pass.
type IndexerService interface {
	// Enqueue registers docs to be indexed. It does not block on
	// indexing completion.
	Enqueue(docs []domain.Document)

	// IsReady reports whether the first indexing pass has completed.
	IsReady() bool

	// Show is a diagnostic dump of the current index snapshot.
	Show() string
}
