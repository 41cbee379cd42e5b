package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultRenameAttempts bounds the collision probe when no configuration
// overrides it.
const DefaultRenameAttempts = 1000

// UniquePath returns a destination path in folder for the desired name that
// does not collide with an existing file. When folder/name is free it is
// returned unchanged. Otherwise "stem(1)ext", "stem(2)ext", ... are probed up
// to maxAttempts. If every candidate exists the original (colliding) path is
// returned with exhausted=true; callers must not treat that path as safe to
// overwrite.
func UniquePath(folder, name string, maxAttempts int) (path string, exhausted bool) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultRenameAttempts
	}

	candidate := filepath.Join(folder, name)
	if !pathExists(candidate) {
		return candidate, false
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		probe := filepath.Join(folder, fmt.Sprintf("%s(%d)%s", stem, attempt, ext))
		if !pathExists(probe) {
			return probe, false
		}
	}
	return candidate, true
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
