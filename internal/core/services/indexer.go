// Package services implements the core, transport-agnostic behavior of
// lexidex: the indexer driver, the phrase query engine, and the
// per-connection session dispatcher. None of these packages know
// about sockets or the filesystem directly; they depend only on the
// driven/driving port interfaces.
package services

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driven"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driving"
	"github.com/arcbeam-labs/lexidex/internal/tokenizer"
	"github.com/arcbeam-labs/lexidex/internal/workerpool"
)

var _ driving.IndexerService = (*Indexer)(nil)

// localIndex is the partial index produced by tokenizing a single
// document: word -> postings within that document.
type localIndex map[string][]domain.Posting

// IndexerConfig configures a new Indexer.
type IndexerConfig struct {
	Store         driven.PostingStore
	WorkerThreads int
	Logger        *slog.Logger
}

// Indexer drives the re-indexing state machine described by the
// worker-pool fan-out: documents enqueued while a pass is running are
// coalesced into at most one additional pass, never more.
type Indexer struct {
	store  driven.PostingStore
	pool   *workerpool.Pool[domain.Document, localIndex]
	logger *slog.Logger

	pendingMu sync.Mutex
	pending   []domain.Document

	running atomic.Bool
	dirty   atomic.Bool
	ready   atomic.Bool
}

// NewIndexer creates an Indexer backed by cfg.Store, fanning
// tokenization work out across cfg.WorkerThreads goroutines.
func NewIndexer(cfg IndexerConfig) *Indexer {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	n := cfg.WorkerThreads
	if n < 1 {
		n = 1
	}

	ix := &Indexer{
		store:  cfg.Store,
		logger: logger,
	}
	ix.pool = workerpool.New(n, tokenizeDocument)
	return ix
}

// Enqueue registers docs to be indexed. It never blocks on indexing
// completion: if no pass is currently running, it starts one; if one
// is already in flight, the new documents are folded into the pending
// list and picked up by the next pass the running driver begins.
//
// An empty docs still triggers a pass if the first pass has not yet
// completed: the bootstrap scan of an empty data directory must still
// flip IsReady, per an empty-corpus query eventually answering OK 0
// rather than waiting forever. Once ready, an empty Enqueue is a
// no-op.
func (ix *Indexer) Enqueue(docs []domain.Document) {
	if len(docs) == 0 && ix.ready.Load() {
		return
	}

	ix.pendingMu.Lock()
	ix.pending = append(ix.pending, docs...)
	start := ix.running.CompareAndSwap(false, true)
	if !start {
		ix.dirty.Store(true)
	}
	ix.pendingMu.Unlock()

	if start {
		go ix.drive()
	}
}

// IsReady reports whether at least one indexing pass has completed.
func (ix *Indexer) IsReady() bool {
	return ix.ready.Load()
}

// Show returns a diagnostic, line-oriented dump of the current
// published index: one line per word, listing each path and the
// number of postings lexidex has recorded for it there.
func (ix *Indexer) Show() string {
	snap := ix.store.Snapshot()
	words := snap.Words()
	sort.Strings(words)

	var b strings.Builder
	for _, word := range words {
		docs, ok := snap.Lookup(word)
		if !ok {
			continue
		}
		paths := make([]string, 0, len(docs))
		for p := range docs {
			paths = append(paths, p)
		}
		sort.Strings(paths)

		fmt.Fprintf(&b, "%s:", word)
		for _, p := range paths {
			fmt.Fprintf(&b, " %s(%d)", p, len(docs[p]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// drive runs indexing passes until the pending list is empty and no
// Enqueue arrives during the final check, at which point it clears
// running and exits. A new Enqueue after that point starts a fresh
// driver goroutine.
func (ix *Indexer) drive() {
	for {
		ix.pendingMu.Lock()
		docs := ix.pending
		ix.pending = nil
		ix.pendingMu.Unlock()

		ix.runPass(docs)
		ix.ready.Store(true)

		if ix.dirty.CompareAndSwap(true, false) {
			continue
		}

		ix.pendingMu.Lock()
		if ix.dirty.Load() {
			ix.pendingMu.Unlock()
			continue
		}
		ix.running.Store(false)
		ix.pendingMu.Unlock()
		return
	}
}

// runPass fans one tokenization job per document out to the worker
// pool and merges each result into the store as soon as it completes.
// A document that fails to tokenize or whose job cannot be submitted
// (pool shutting down) is logged and skipped; it never aborts the
// rest of the pass.
func (ix *Indexer) runPass(docs []domain.Document) {
	if len(docs) == 0 {
		return
	}

	var g errgroup.Group
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			future, err := ix.pool.Submit(doc)
			if err != nil {
				ix.logger.Warn("indexer: tokenization pool unavailable", "path", doc.Path, "error", err)
				return nil
			}
			local, err := future.Get()
			if err != nil {
				ix.logger.Warn("indexer: tokenization failed", "path", doc.Path, "error", err)
				return nil
			}
			ix.store.Publish(doc.Path, local)
			return nil
		})
	}
	_ = g.Wait()
}

func tokenizeDocument(doc domain.Document) (localIndex, error) {
	tokens := tokenizer.Tokenize(doc.Content)
	local := make(localIndex)
	for _, tok := range tokens {
		local[tok.Text] = append(local[tok.Text], domain.Posting{
			CharOffset: uint32(tok.CharOffset),
			WordOffset: uint32(tok.WordOffset),
		})
	}
	return local, nil
}
