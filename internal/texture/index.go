package texture

import (
	"os"
	"path/filepath"
	"strings"
)

// Index maps lowercase file stems in a texture directory to full paths.
// TGA files take priority over JPEG/PNG/BMP for the same stem (alpha
// channel).
type Index struct {
	entries map[string]string // stem.lower() → full path
}

var indexedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tga":  true,
}

// BuildIndex scans dir (recursively) for texture image files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !indexedExts[ext] {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists {
			idx.entries[stem] = path
		} else if ext == ".tga" && strings.ToLower(filepath.Ext(existing)) != ".tga" {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the filesystem path for a texture name (stem or
// filename, case-insensitive), or ("", false).
func (idx *Index) ResolvePath(name string) (string, bool) {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
