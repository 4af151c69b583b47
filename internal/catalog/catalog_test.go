package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names []string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestBuild(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "generated.photos")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFiles(t, dir, []string{
		"a_0000001_b.jpg",
		"a_0000002_b.jpg",
		"a_0000003_b.jpg",
		"readme.txt",     // wrong extension
		"portrait.jpg",   // no id
		"short_123.jpeg", // id too short
	})

	cat, err := Build(dir, DefaultConventions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(cat) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(cat))
	}

	wantIDs := []string{"0000001", "0000002", "0000003"}
	for i, want := range wantIDs {
		if cat[i].FaceID != want {
			t.Errorf("entry %d: face id = %q; want %q", i, cat[i].FaceID, want)
		}
	}

	wantMeta := filepath.Join(base, "generated.photos_metadata", "a_0000001_b.json")
	if cat[0].MetadataPath != wantMeta {
		t.Errorf("metadata path = %q; want %q", cat[0].MetadataPath, wantMeta)
	}
}

func TestBuildEmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	cat, err := Build(dir, DefaultConventions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(cat) != 0 {
		t.Errorf("expected empty catalog, got %d entries", len(cat))
	}
}

func TestBuildNoMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, []string{"notes.md", "face.png", "img_123.jpg"})

	cat, err := Build(dir, DefaultConventions())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(cat) != 0 {
		t.Errorf("expected empty catalog, got %d entries", len(cat))
	}
}

func TestBuildMissingDirectory(t *testing.T) {
	_, err := Build(filepath.Join(t.TempDir(), "missing"), DefaultConventions())
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestFindByID(t *testing.T) {
	cat := Catalog{
		{FaceID: "0000001", FileName: "a_0000001_b.jpg"},
		{FaceID: "0000002", FileName: "a_0000002_b.jpg"},
	}

	e, ok := cat.FindByID("0000002")
	if !ok {
		t.Fatal("expected to find entry")
	}
	if e.FileName != "a_0000002_b.jpg" {
		t.Errorf("file name = %q; want a_0000002_b.jpg", e.FileName)
	}

	if _, ok := cat.FindByID("9999999"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
