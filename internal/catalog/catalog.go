// Package catalog discovers theme files on disk.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bennypowers.dev/imstyle/internal/collections"
	"bennypowers.dev/imstyle/internal/log"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match every .ini file below the root
var DefaultPatterns = []string{"**/*.ini"}

var skipDirs = collections.NewSet("node_modules", "dist", "build")

// Entry is a discovered theme
type Entry struct {
	// Name is the file name without extension
	Name string
	Path string
}

// Discover walks root and returns the files whose slash separated path
// relative to root matches one of patterns, sorted by name then path.
// Hidden directories are not entered.
func Discover(root string, patterns []string) ([]Entry, error) {
	return DiscoverAll([]string{root}, patterns)
}

// DiscoverAll runs Discover over several roots. A file reachable from more
// than one root is listed once. Roots that cannot be walked are reported
// together after the others have been searched.
func DiscoverAll(roots []string, patterns []string) ([]Entry, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := collections.NewSet[string]()
	var entries []Entry
	var errs []error
	for _, root := range roots {
		if _, err := os.Stat(root); err != nil {
			errs = append(errs, fmt.Errorf("failed to search %s: %w", root, err))
			continue
		}
		log.Debug("Searching %s for %v", root, patterns)
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if path != root && shouldSkipDir(info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil || !matchesAny(patterns, rel) {
				return nil
			}
			abs, err := filepath.Abs(path)
			if err != nil {
				abs = path
			}
			if seen.Insert(abs) {
				entries = append(entries, Entry{Name: nameOf(path), Path: path})
			}
			return nil
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to walk %s: %w", root, err))
		}
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Path, b.Path))
	})
	log.Debug("Found %d themes", len(entries))
	return entries, errors.Join(errs...)
}

// Find returns the first entry called name
func Find(entries []Entry, name string) (Entry, bool) {
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.Name == name })
	if i < 0 {
		return Entry{}, false
	}
	return entries[i], true
}

func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || skipDirs.Has(name)
}

func matchesAny(patterns []string, rel string) bool {
	// doublestar wants forward slashes on every platform
	rel = filepath.ToSlash(rel)
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func nameOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
