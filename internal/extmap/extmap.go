package extmap

import (
	"fmt"
	"sort"
	"strings"
)

// Map associates lowercase file extensions (with leading dot) to category
// folder names.
type Map map[string]string

// Default returns the built-in extension table.
func Default() Map {
	return Map{
		// Text and documents
		".txt":  "TextFiles",
		".pdf":  "Documents",
		".docx": "Documents",
		".doc":  "Documents",
		".odt":  "Documents",
		".rtf":  "Documents",
		// Ebooks
		".epub": "Ebooks",
		".mobi": "Ebooks",
		// Spreadsheets
		".xlsx": "Spreadsheets",
		".xls":  "Spreadsheets",
		".ods":  "Spreadsheets",
		// Data files
		".csv":  "Data",
		".json": "Data",
		".xml":  "Data",
		// Images
		".jpg":  "Images",
		".jpeg": "Images",
		".png":  "Images",
		".gif":  "Images",
		".bmp":  "Images",
		".tiff": "Images",
		".webp": "Images",
		".heic": "Images",
		// Vector graphics and design
		".svg": "VectorGraphics",
		".psd": "Design_Files",
		".ai":  "Design_Files",
		// Archives
		".zip": "Archives",
		".rar": "Archives",
		".tar": "Archives",
		".gz":  "Archives",
		".7z":  "Archives",
		// Executables and installers
		".exe": "Executables_Installers",
		".msi": "Executables_Installers",
		".dmg": "Executables_Installers",
		".pkg": "Executables_Installers",
		".deb": "Executables_Installers",
		".rpm": "Executables_Installers",
		".jar": "Executables_Installers",
		// Audio
		".mp3":  "Music",
		".wav":  "Audio",
		".aac":  "Audio",
		".flac": "Audio",
		".ogg":  "Audio",
		".m4a":  "Audio",
		// Video
		".mp4": "Videos",
		".avi": "Videos",
		".mkv": "Videos",
		".mov": "Videos",
		".wmv": "Videos",
		".flv": "Videos",
		// Logs and configs
		".log":  "LogFiles",
		".yaml": "Configs",
		".yml":  "Configs",
		// Fonts
		".ttf": "Fonts",
		".otf": "Fonts",
	}
}

// Lookup returns the category for the given extension, folding case.
func (m Map) Lookup(ext string) (string, bool) {
	category, ok := m[strings.ToLower(strings.TrimSpace(ext))]
	return category, ok
}

// Extensions returns the mapped extensions in sorted order.
func (m Map) Extensions() []string {
	exts := make([]string, 0, len(m))
	for ext := range m {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Clone returns an independent copy of the map.
func (m Map) Clone() Map {
	cp := make(Map, len(m))
	for ext, category := range m {
		cp[ext] = category
	}
	return cp
}

// Set returns a copy of the map with the extension mapped to category.
// The extension is lowercased; both arguments are validated.
func Set(m Map, ext, category string) (Map, error) {
	normalized, err := NormalizeExtension(ext)
	if err != nil {
		return nil, err
	}
	if err := ValidateCategory(category); err != nil {
		return nil, err
	}
	cp := m.Clone()
	cp[normalized] = strings.TrimSpace(category)
	return cp, nil
}

// Remove returns a copy of the map without the extension. Removing an
// unmapped extension is not an error.
func Remove(m Map, ext string) (Map, error) {
	normalized, err := NormalizeExtension(ext)
	if err != nil {
		return nil, err
	}
	cp := m.Clone()
	delete(cp, normalized)
	return cp, nil
}

// Merge overlays the entries of override onto base, returning a new map.
// Override keys are normalized; invalid entries are reported.
func Merge(base Map, override Map) (Map, error) {
	merged := base.Clone()
	for ext, category := range override {
		normalized, err := NormalizeExtension(ext)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", ext, err)
		}
		if err := ValidateCategory(category); err != nil {
			return nil, fmt.Errorf("override %q: %w", ext, err)
		}
		merged[normalized] = strings.TrimSpace(category)
	}
	return merged, nil
}

// NormalizeExtension lowercases and validates an extension argument.
func NormalizeExtension(ext string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(ext))
	if !strings.HasPrefix(normalized, ".") || len(normalized) < 2 {
		return "", fmt.Errorf("invalid extension %q: must start with a dot and name at least one character", ext)
	}
	if strings.ContainsAny(normalized[1:], ". \t/\\") {
		return "", fmt.Errorf("invalid extension %q", ext)
	}
	return normalized, nil
}

// ValidateCategory rejects category names that cannot serve as a single
// folder segment.
func ValidateCategory(category string) error {
	trimmed := strings.TrimSpace(category)
	if trimmed == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if strings.ContainsAny(trimmed, `/\:*?"<>|`) {
		return fmt.Errorf("category name %q contains invalid characters", category)
	}
	if strings.HasPrefix(trimmed, ".") || strings.HasSuffix(trimmed, ".") {
		return fmt.Errorf("category name %q must not start or end with a dot", category)
	}
	return nil
}
