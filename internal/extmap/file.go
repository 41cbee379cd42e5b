package extmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadFile reads the JSON override file at path and merges it over the
// built-in defaults. A missing file yields the defaults unchanged.
func LoadFile(path string) (Map, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read extension map %s: %w", path, err)
	}

	var override map[string]string
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse extension map %s: %w", path, err)
	}

	merged, err := Merge(base, Map(override))
	if err != nil {
		return nil, fmt.Errorf("extension map %s: %w", path, err)
	}
	return merged, nil
}

// LoadOverrides reads only the override entries from path, without the
// defaults underneath. A missing file yields an empty map.
func LoadOverrides(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("read extension map %s: %w", path, err)
	}

	var override map[string]string
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse extension map %s: %w", path, err)
	}
	return Map(override), nil
}

// SaveFile writes the map as indented JSON with sorted keys.
func SaveFile(path string, m Map) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create map directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("encode extension map: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write extension map %s: %w", path, err)
	}
	return nil
}
