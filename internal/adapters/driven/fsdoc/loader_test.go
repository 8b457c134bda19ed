package fsdoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arcbeam-labs/lexidex/internal/core/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanMissingDir(t *testing.T) {
	l := New(nil)
	_, err := l.Scan(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != domain.ErrDataDirNotFound {
		t.Fatalf("expected ErrDataDirNotFound, got %v", err)
	}
}

func TestScanEmptyDir(t *testing.T) {
	l := New(nil)
	docs, err := l.Scan(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("expected no docs, got %v", docs)
	}
}

func TestScanAssignsMonotonicSortedIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "beta")
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "sub/c.txt", "gamma")

	l := New(nil)
	docs, err := l.Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 docs, got %d", len(docs))
	}
	for i, d := range docs {
		if d.ID != uint32(i) {
			t.Fatalf("doc %d has id %d, want %d", i, d.ID, i)
		}
	}
	if docs[0].Path > docs[1].Path || docs[1].Path > docs[2].Path {
		t.Fatalf("docs not sorted lexicographically: %v", docs)
	}
}

func TestLoadContinuesCounterAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "b.txt", "beta")

	l := New(nil)
	first := l.Load([]string{filepath.Join(dir, "a.txt")})
	second := l.Load([]string{filepath.Join(dir, "b.txt")})

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("expected one doc per call, got %d and %d", len(first), len(second))
	}
	if second[0].ID <= first[0].ID {
		t.Fatalf("expected monotonically increasing IDs across calls, got %d then %d", first[0].ID, second[0].ID)
	}
}

func TestLoadSkipsUnreadableFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")

	l := New(nil)
	docs := l.Load([]string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "missing.txt"),
	})
	if len(docs) != 1 {
		t.Fatalf("expected unreadable file to be skipped, got %d docs", len(docs))
	}
	if docs[0].Path != filepath.Join(dir, "a.txt") {
		t.Fatalf("unexpected surviving doc: %+v", docs[0])
	}
}
