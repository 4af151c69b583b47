// Package catalog builds an in-memory index of face image files.
//
// Datasets like generated.photos name every image with an embedded
// fixed-width numeric identifier (a_0000001_b.jpg) and keep per-image
// metadata in a sibling directory with a fixed suffix
// (generated.photos_metadata/a_0000001_b.json). The catalog captures
// those conventions once so the rest of the pipeline can work with
// plain paths and ids.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Entry describes a single cataloged image.
type Entry struct {
	Path         string `json:"path"`          // full path to the image file
	FileName     string `json:"file_name"`     // bare file name
	FaceID       string `json:"face_id"`       // fixed-width numeric id parsed from the file name
	MetadataPath string `json:"metadata_path"` // derived path to the matching metadata file
}

// Catalog is an ordered list of entries. Order follows directory
// enumeration; nothing else is guaranteed.
type Catalog []Entry

// Conventions describe how a dataset lays out its files.
type Conventions struct {
	ImageExts         []string // accepted image extensions, lowercase with dot
	MetadataDirSuffix string   // appended to the image directory name
	MetadataExt       string   // replaces the image extension
	IDDigits          int      // width of the numeric id embedded in file names
}

// DefaultConventions returns the generated.photos layout.
func DefaultConventions() Conventions {
	return Conventions{
		ImageExts:         []string{".jpg", ".jpeg"},
		MetadataDirSuffix: "_metadata",
		MetadataExt:       ".json",
		IDDigits:          7,
	}
}

// Build scans dir for image files matching the conventions and returns
// one entry per match. Files without a parseable id are skipped, so an
// empty catalog with a nil error means the directory held no matching
// files. Metadata files are not checked for existence.
func Build(dir string, conv Conventions) (Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	idPattern, err := regexp.Compile(fmt.Sprintf(`\d{%d}`, conv.IDDigits))
	if err != nil {
		return nil, fmt.Errorf("failed to compile id pattern: %w", err)
	}

	var cat Catalog
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !containsExt(conv.ImageExts, ext) {
			continue
		}
		id := idPattern.FindString(name)
		if id == "" {
			continue
		}
		path := filepath.Join(dir, name)
		cat = append(cat, Entry{
			Path:         path,
			FileName:     name,
			FaceID:       id,
			MetadataPath: metadataPath(path, conv),
		})
	}

	return cat, nil
}

// metadataPath derives the metadata file location by substituting the
// image directory segment and file extension with the dataset
// conventions: .../generated.photos/a_0000001_b.jpg becomes
// .../generated.photos_metadata/a_0000001_b.json.
func metadataPath(imagePath string, conv Conventions) string {
	dir := filepath.Dir(imagePath)
	parent := filepath.Dir(dir)
	metaDir := filepath.Base(dir) + conv.MetadataDirSuffix

	name := filepath.Base(imagePath)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + conv.MetadataExt

	return filepath.Join(parent, metaDir, name)
}

// Paths returns the image paths in catalog order.
func (c Catalog) Paths() []string {
	paths := make([]string, len(c))
	for i, e := range c {
		paths[i] = e.Path
	}
	return paths
}

// IDs returns the face ids in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, e := range c {
		ids[i] = e.FaceID
	}
	return ids
}

// FindByID returns the first entry with the given face id.
func (c Catalog) FindByID(id string) (Entry, bool) {
	for _, e := range c {
		if e.FaceID == id {
			return e, true
		}
	}
	return Entry{}, false
}

func containsExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
