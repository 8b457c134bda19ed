// Package fsdoc reads documents off a filesystem tree, implementing
// driven.DocumentLoader. It assigns doc IDs from a single monotonic
// counter shared across the bootstrap scan and every later watcher
// batch, matching the original's DocumentReader::LoadDocuments.
package fsdoc

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
	"github.com/arcbeam-labs/lexidex/internal/core/ports/driven"
)

// Loader implements driven.DocumentLoader over the local filesystem.
type Loader struct {
	logger *slog.Logger
	nextID atomic.Uint32
}

var _ driven.DocumentLoader = (*Loader)(nil)

// New returns a Loader that logs per-file read failures with logger.
// If logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Scan recursively enumerates every regular file under root, sorted
// lexicographically by full path, and loads each into a Document.
func (l *Loader) Scan(root string) ([]domain.Document, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, domain.ErrDataDirNotFound
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			l.logger.Warn("walk error, skipping", "path", path, "error", err)
			return nil
		}
		if d.Type().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return l.Load(paths), nil
}

// Load reads the given paths into Documents, continuing the same
// monotonic ID counter as Scan. A file that cannot be read is logged
// and omitted; it never aborts the batch.
func (l *Loader) Load(paths []string) []domain.Document {
	docs := make([]domain.Document, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			l.logger.Warn("failed to read document, skipping", "path", p, "error", err)
			continue
		}
		docs = append(docs, domain.Document{
			ID:      l.nextID.Add(1) - 1,
			Path:    p,
			Content: string(content),
		})
	}
	return docs
}
