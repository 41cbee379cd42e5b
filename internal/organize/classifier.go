package organize

import (
	"path/filepath"
	"strings"

	"sortd/internal/extmap"
)

// Classify maps a file name to its category folder name. The extension is
// extracted and lowercased before lookup. Files without an extension are
// never classified; a dotfile such as ".bashrc" counts as extensionless even
// though filepath.Ext reports the whole name. Unmapped extensions fall
// through to defaultCategory when it is non-empty, otherwise the file is
// ignored.
//
// Classify is pure: no I/O, no side effects.
func Classify(fileName string, m extmap.Map, defaultCategory string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" || ext == strings.ToLower(fileName) {
		return "", false
	}
	if category, ok := m.Lookup(ext); ok {
		return category, true
	}
	if defaultCategory != "" {
		return defaultCategory, true
	}
	return "", false
}
