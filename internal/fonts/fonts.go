package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions we consider as font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
// First that exists is typically used when scanning.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. Only .ttf and .otf are included. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFontFile(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFontFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Resolve turns the prefs font setting into a file path. An existing path is used as is;
// anything else is searched for by name under BaseDirs. Empty means the raylib default font.
func Resolve(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", os.ErrNotExist
	}
	if isFontFile(name) {
		if _, err := os.Stat(name); err == nil {
			return name, nil
		}
	}
	_, full, err := FindIn(BaseDirs(), name)
	return full, err
}

// FindFont searches BaseDirs for a font file whose path matches the search term.
func FindFont(search string) (relPath string, fullPath string, err error) {
	return FindIn(BaseDirs(), search)
}

// FindIn searches bases for a font file whose path matches the search term.
// search can be a name like "Inter", "Google Sans", or a partial path like "Inter-Regular".
// When multiple files match, prefers one whose path contains "Regular" (e.g. Inter-Regular.ttf).
func FindIn(bases []string, search string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(strings.TrimSuffix(strings.TrimSuffix(search, ".ttf"), ".otf"))
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	var candidates []struct{ rel, full string }
	for _, base := range bases {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				full := base + "/" + rel
				if _, err := os.Stat(full); err == nil {
					candidates = append(candidates, struct{ rel, full string }{rel, full})
				}
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	// Prefer path containing "regular" when multiple match
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
