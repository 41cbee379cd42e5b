package extmap

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var suggestCaser = cases.Title(language.English)

// SuggestCategory proposes a category folder name for an unmapped extension,
// e.g. ".webm" -> "Webm". Returns "" when no sensible suggestion exists.
func SuggestCategory(ext string) string {
	normalized, err := NormalizeExtension(ext)
	if err != nil {
		return ""
	}
	name := suggestCaser.String(strings.TrimPrefix(normalized, "."))
	if ValidateCategory(name) != nil {
		return ""
	}
	return name
}
