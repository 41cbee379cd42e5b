package extmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupFoldsCase(t *testing.T) {
	m := Default()
	category, ok := m.Lookup(".PDF")
	if !ok || category != "Documents" {
		t.Fatalf("Lookup(.PDF) = %q, %v", category, ok)
	}
	if _, ok := m.Lookup(".nope"); ok {
		t.Fatal("unexpected mapping for .nope")
	}
	if _, ok := m.Lookup(""); ok {
		t.Fatal("empty extension should not map")
	}
}

func TestSetReturnsNewMap(t *testing.T) {
	base := Map{".txt": "TextFiles"}
	updated, err := Set(base, ".CUSTOM", "CustomStuff")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok := base[".custom"]; ok {
		t.Fatal("Set mutated the input map")
	}
	if updated[".custom"] != "CustomStuff" {
		t.Fatalf("unexpected updated map: %v", updated)
	}
}

func TestSetRejectsInvalidInput(t *testing.T) {
	base := Default()
	invalid := []struct {
		ext      string
		category string
	}{
		{"pdf", "Documents"},
		{".", "Documents"},
		{".two.dots", "Documents"},
		{".ok", ""},
		{".ok", "bad/name"},
		{".ok", ".hidden"},
		{".ok", "trailing."},
	}
	for _, tc := range invalid {
		if _, err := Set(base, tc.ext, tc.category); err == nil {
			t.Errorf("Set(%q, %q) should fail", tc.ext, tc.category)
		}
	}
}

func TestRemove(t *testing.T) {
	base := Map{".txt": "TextFiles", ".pdf": "Documents"}
	updated, err := Remove(base, ".TXT")
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := updated[".txt"]; ok {
		t.Fatal("extension still mapped after Remove")
	}
	if len(base) != 2 {
		t.Fatal("Remove mutated the input map")
	}
	if _, err := Remove(base, ".unmapped"); err != nil {
		t.Fatalf("removing an unmapped extension should not error: %v", err)
	}
}

func TestMergeOverridesDefaults(t *testing.T) {
	merged, err := Merge(Default(), Map{".pdf": "Paperwork", ".xyz": "Misc"})
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if merged[".pdf"] != "Paperwork" {
		t.Fatalf("override not applied: %q", merged[".pdf"])
	}
	if merged[".xyz"] != "Misc" {
		t.Fatalf("new entry missing: %q", merged[".xyz"])
	}
	if merged[".txt"] != "TextFiles" {
		t.Fatalf("default lost: %q", merged[".txt"])
	}
}

func TestLoadFileMissingYieldsDefaults(t *testing.T) {
	m, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if m[".pdf"] != "Documents" {
		t.Fatalf("expected defaults, got %v", m[".pdf"])
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "map.json")
	if err := SaveFile(path, Map{".custom": "CustomStuff"}); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if m[".custom"] != "CustomStuff" {
		t.Fatalf("override missing after round trip: %v", m)
	}
	if m[".txt"] != "TextFiles" {
		t.Fatal("defaults should remain underneath overrides")
	}
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSuggestCategory(t *testing.T) {
	if got := SuggestCategory(".webm"); got != "Webm" {
		t.Fatalf("SuggestCategory(.webm) = %q", got)
	}
	if got := SuggestCategory("junk"); got != "" {
		t.Fatalf("expected empty suggestion for invalid extension, got %q", got)
	}
}
