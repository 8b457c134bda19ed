// Package watcher polls a directory tree at a fixed interval and
// reports newly discovered regular files. It deliberately avoids an
// OS-level notification API: fixed-interval polling gives the indexer
// a predictable, coalescible signal instead of a storm of individual
// filesystem events.
package watcher

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Watcher scans root every interval, comparing the set of regular
// files it finds against the files it has already reported. Any file
// not yet seen is reported once, in a single batch per tick, sorted
// lexicographically by leaf (base) name.
type Watcher struct {
	root     string
	interval time.Duration
	onNew    func([]string)
	logger   *slog.Logger

	seenMu sync.Mutex
	seen   map[string]struct{}

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Watcher over root. seen, if non-nil, pre-populates the
// set of paths that must NOT be reported again (e.g. files already
// indexed at startup); New takes ownership of it. onNew is invoked
// with the batch of newly discovered paths, sorted by leaf name, once
// per tick in which at least one new file was found. If logger is
// nil, slog.Default() is used.
func New(root string, seen map[string]struct{}, interval time.Duration, onNew func([]string), logger *slog.Logger) *Watcher {
	if seen == nil {
		seen = make(map[string]struct{})
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		root:     root,
		interval: interval,
		onNew:    onNew,
		logger:   logger,
		seen:     seen,
	}
}

// Start begins the polling loop in its own goroutine. It runs one
// scan immediately, then one per interval, until Stop is called.
// Idempotent.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	go w.run()
}

// Stop signals the polling loop to exit and waits for it. Idempotent.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	w.tick()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.tick()
		}
	}
}

func (w *Watcher) tick() {
	paths, err := scan(w.root)
	if err != nil {
		w.logger.Warn("watcher scan failed", "root", w.root, "error", err)
		return
	}

	var fresh []string
	w.seenMu.Lock()
	for _, p := range paths {
		if _, ok := w.seen[p]; ok {
			continue
		}
		w.seen[p] = struct{}{}
		fresh = append(fresh, p)
	}
	w.seenMu.Unlock()

	if len(fresh) == 0 {
		return
	}

	sort.Slice(fresh, func(i, j int) bool {
		return filepath.Base(fresh[i]) < filepath.Base(fresh[j])
	})

	w.onNew(fresh)
}

// scan walks root recursively and returns every regular file path
// found, in the order filepath.WalkDir visits them.
func scan(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
