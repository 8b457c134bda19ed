package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arcbeam-labs/lexidex/internal/core/ports/driving"
)

// Session dispatches the text commands of one connection. It holds no
// socket state of its own: byte framing and I/O live in the transport
// adapter, which calls Handle once per received line and writes back
// whatever it returns.
type Session struct {
	indexer driving.IndexerService
	query   driving.QueryService
}

// NewSession creates a Session over the given indexer and query
// services.
func NewSession(indexer driving.IndexerService, query driving.QueryService) *Session {
	return &Session{indexer: indexer, query: query}
}

// Handle dispatches one already-trimmed command line and returns the
// full response to write back, including its trailing newline(s).
func (s *Session) Handle(line string) string {
	switch {
	case line == "ping":
		return "pong\n"
	case strings.HasPrefix(line, "search "):
		phrase := line[len("search "):]
		return s.handleSearch(phrase)
	default:
		return "[!] Unknown command\n"
	}
}

func (s *Session) handleSearch(phrase string) string {
	if !s.indexer.IsReady() {
		return "in process\n"
	}

	matches := s.query.SearchPhrase(phrase)

	paths := make([]string, 0, len(matches))
	for p := range matches {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	fmt.Fprintf(&b, "OK %d\n", len(paths))
	for _, p := range paths {
		postings := matches[p]
		offsets := make([]string, len(postings))
		for i, posting := range postings {
			offsets[i] = strconv.FormatUint(uint64(posting.CharOffset), 10)
		}
		fmt.Fprintf(&b, "%s\t%s\n", p, strings.Join(offsets, ","))
	}
	return b.String()
}
