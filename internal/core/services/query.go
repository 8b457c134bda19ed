package services

import (
	"github.com/arcbeam-labs/lexidex/internal/core/domain"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driven"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driving"
	"github.com/arcbeam-labs/lexidex/internal/tokenizer"
)

var _ driving.QueryService = (*QueryEngine)(nil)

// QueryEngine answers word and phrase lookups against a single
// snapshot of a PostingStore, so a query is never affected by
// publishes that happen while it runs.
type QueryEngine struct {
	store driven.PostingStore
}

// NewQueryEngine creates a QueryEngine over store.
func NewQueryEngine(store driven.PostingStore) *QueryEngine {
	return &QueryEngine{store: store}
}

// SearchWord returns, per matching path, the postings for word. It is
// equivalent to SearchPhrase when the phrase tokenizes to one word.
func (q *QueryEngine) SearchWord(word string) map[string][]domain.Posting {
	return q.SearchPhrase(word)
}

// SearchPhrase tokenizes phrase with the same tokenizer used for
// documents, takes a single snapshot of the store, and returns the
// paths where every phrase word occurs contiguously and in order —
// one reported posting (the first word's) per match.
func (q *QueryEngine) SearchPhrase(phrase string) map[string][]domain.Posting {
	tokens := tokenizer.Tokenize(phrase)
	if len(tokens) == 0 {
		return map[string][]domain.Posting{}
	}

	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}

	snap := q.store.Snapshot()

	first, ok := snap.Lookup(words[0])
	if !ok {
		return map[string][]domain.Posting{}
	}

	results := make(map[string][]domain.Posting)

	for path, firstPostings := range first {
		rest := make([][]domain.Posting, len(words)-1)
		skip := false
		for j := 1; j < len(words); j++ {
			docs, ok := snap.Lookup(words[j])
			if !ok {
				skip = true
				break
			}
			postings, ok := docs[path]
			if !ok {
				skip = true
				break
			}
			rest[j-1] = postings
		}
		if skip {
			continue
		}

		var matches []domain.Posting
		for _, candidate := range firstPostings {
			t := candidate.WordOffset
			allFound := true
			for j := 1; j < len(words); j++ {
				if !hasWordOffset(rest[j-1], t+uint32(j)) {
					allFound = false
					break
				}
			}
			if allFound {
				matches = append(matches, candidate)
			}
		}

		if len(matches) > 0 {
			results[path] = matches
		}
	}

	return results
}

func hasWordOffset(postings []domain.Posting, offset uint32) bool {
	for _, p := range postings {
		if p.WordOffset == offset {
			return true
		}
	}
	return false
}
