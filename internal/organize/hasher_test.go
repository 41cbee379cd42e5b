package organize

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDigestMatchesReference(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "payload.bin")

	content := make([]byte, 200*1024) // spans several read chunks
	for i := range content {
		content[i] = byte(i % 251)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	want := sha256.Sum256(content)

	got, err := NewHasher(64 * 1024).Digest(path)
	if err != nil {
		t.Fatalf("Digest failed: %v", err)
	}
	if got != hex.EncodeToString(want[:]) {
		t.Fatalf("digest mismatch: got %s", got)
	}
}

func TestDigestStableAcrossChunkSizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("same bytes, different chunking"), 0o644); err != nil {
		t.Fatal(err)
	}

	small, err := NewHasher(7).Digest(path)
	if err != nil {
		t.Fatal(err)
	}
	large, err := NewHasher(1 << 20).Digest(path)
	if err != nil {
		t.Fatal(err)
	}
	if small != large {
		t.Fatalf("digest depends on chunk size: %s vs %s", small, large)
	}
}

func TestDigestMissingFileReturnsHashError(t *testing.T) {
	_, err := NewHasher(0).Digest(filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrHash) {
		t.Fatalf("expected ErrHash, got %v", err)
	}
}

func TestDigestDoesNotModifyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("untouched"), 0o644); err != nil {
		t.Fatal(err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := NewHasher(0).Digest(path); err != nil {
		t.Fatal(err)
	}

	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if before.Size() != after.Size() || !before.ModTime().Equal(after.ModTime()) {
		t.Fatal("hashing modified the file")
	}
}
