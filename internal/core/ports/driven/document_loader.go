package driven

import "github.com/arcbeam-labs/lexidex/internal/core/domain"

// DocumentLoader reads file contents off disk and assigns doc IDs. A
// file that cannot be read is omitted from the returned slice rather
// than surfaced as an error, per the "per-file read failure: log and
// skip" policy — one bad file must never abort a batch.
type DocumentLoader interface {
	// Scan recursively enumerates every regular file under root,
	// sorted lexicographically by full path, and loads them into
	// Documents with monotonically increasing IDs.
	Scan(root string) ([]domain.Document, error)

	// Load reads the given paths (already deduplicated by the
	// caller, e.g. the watcher's seen-set) into Documents, continuing
	// the same monotonic ID counter as Scan.
	Load(paths []string) []domain.Document
}
