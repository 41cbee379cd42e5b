package organize

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// DefaultHashChunkBytes is the read size used when no chunk size is configured.
const DefaultHashChunkBytes = 64 * 1024

// Hasher computes streaming SHA-256 digests with a bounded read buffer, so
// memory use stays flat regardless of file size.
type Hasher struct {
	chunkBytes int
}

// NewHasher constructs a Hasher reading chunkBytes at a time. Non-positive
// values fall back to DefaultHashChunkBytes.
func NewHasher(chunkBytes int) *Hasher {
	if chunkBytes <= 0 {
		chunkBytes = DefaultHashChunkBytes
	}
	return &Hasher{chunkBytes: chunkBytes}
}

// Digest returns the hex-encoded SHA-256 digest of the file's content.
// The file is never modified. Open and read failures are returned to the
// caller, wrapped with ErrHash.
func (h *Hasher) Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", Wrap(ErrHash, "open file", path, err)
	}
	defer f.Close()

	digest := sha256.New()
	buf := make([]byte, h.chunkBytes)
	if _, err := io.CopyBuffer(digest, f, buf); err != nil {
		return "", Wrap(ErrHash, "read file", path, err)
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
