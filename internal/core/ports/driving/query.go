package driving

import "github.com/arcbeam-labs/lexidex/internal/core/domain"

// QueryService answers phrase and single-word lookups over a snapshot
// of the posting store.
type QueryService interface {
	// SearchWord returns, per matching path, the postings for word.
	SearchWord(word string) map[string][]domain.Posting

	// SearchPhrase returns, per matching path, the posting of the
	// first word of every adjacent occurrence of the phrase.
	SearchPhrase(phrase string) map[string][]domain.Posting
}
