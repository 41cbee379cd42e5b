package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestUniquePathNoConflict(t *testing.T) {
	dir := t.TempDir()
	got, exhausted := UniquePath(dir, "report.pdf", 0)
	if exhausted {
		t.Fatal("unexpected exhaustion")
	}
	if got != filepath.Join(dir, "report.pdf") {
		t.Fatalf("unexpected path %s", got)
	}
}

func TestUniquePathProbesCounters(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "photo.png"))
	touch(t, filepath.Join(dir, "photo(1).png"))

	got, exhausted := UniquePath(dir, "photo.png", 0)
	if exhausted {
		t.Fatal("unexpected exhaustion")
	}
	if got != filepath.Join(dir, "photo(2).png") {
		t.Fatalf("expected photo(2).png, got %s", got)
	}
}

func TestUniquePathHandlesNamesWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "notes"))

	got, exhausted := UniquePath(dir, "notes", 0)
	if exhausted {
		t.Fatal("unexpected exhaustion")
	}
	if got != filepath.Join(dir, "notes(1)") {
		t.Fatalf("expected notes(1), got %s", got)
	}
}

func TestUniquePathExhaustionFallsBackToOriginal(t *testing.T) {
	dir := t.TempDir()
	const bound = 25
	touch(t, filepath.Join(dir, "name.ext"))
	for i := 1; i <= bound; i++ {
		touch(t, filepath.Join(dir, fmt.Sprintf("name(%d).ext", i)))
	}

	got, exhausted := UniquePath(dir, "name.ext", bound)
	if !exhausted {
		t.Fatal("expected exhaustion")
	}
	if got != filepath.Join(dir, "name.ext") {
		t.Fatalf("expected fallback to original path, got %s", got)
	}
}

func TestUniquePathStopsAtBound(t *testing.T) {
	dir := t.TempDir()
	const bound = 10
	touch(t, filepath.Join(dir, "name.ext"))
	for i := 1; i <= bound; i++ {
		touch(t, filepath.Join(dir, fmt.Sprintf("name(%d).ext", i)))
	}
	// The slot just past the bound is free, but the probe must not reach it.
	got, exhausted := UniquePath(dir, "name.ext", bound)
	if !exhausted {
		t.Fatal("expected exhaustion at the bound")
	}
	if got == filepath.Join(dir, fmt.Sprintf("name(%d).ext", bound+1)) {
		t.Fatal("probe exceeded the configured bound")
	}
}
