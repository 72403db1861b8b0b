package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// maxSearchDepth bounds SearchByName recursion, measured in levels
	// below the search root (root = depth 0).
	maxSearchDepth = 6
	// maxSearchResults caps the number of matches returned after
	// ranking; anything beyond the cap is discarded.
	maxSearchResults = 20
)

// SearchByName walks the user's home tree looking for directories
// whose leaf name equals name, compared case-insensitively. Hidden
// directories and excluded directories are pruned entirely. Unlike
// Scan, unreadable directories are skipped and the search continues.
//
// Matches are sorted ascending by path component count, so matches
// closer to home rank first; equal-depth matches keep discovery order.
// At most 20 matches are returned.
func SearchByName(name string) ([]DirectoryMatch, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve home directory")
	}
	return searchFrom(home, name), nil
}

// searchFrom is the root-parameterized body of SearchByName. The root
// itself is always entered, even when its own name is hidden.
func searchFrom(root, name string) []DirectoryMatch {
	target := strings.ToLower(name)

	var matches []DirectoryMatch
	searchLevel(root, 0, target, &matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return componentCount(matches[i].Path) < componentCount(matches[j].Path)
	})
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}
	return matches
}

// searchLevel enumerates dir at the given depth; its children sit at
// depth+1. Unreadable directories end their subtree silently.
func searchLevel(dir string, depth int, target string, matches *[]DirectoryMatch) {
	if depth >= maxSearchDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Hidden directories are neither reported nor recursed into.
		if strings.HasPrefix(name, ".") {
			continue
		}
		if IsExcluded(name) {
			continue
		}
		path := filepath.Join(dir, name)

		if strings.ToLower(name) == target {
			*matches = append(*matches, DirectoryMatch{Name: name, Path: path})
		}

		searchLevel(path, depth+1, target, matches)
	}
}

// componentCount counts path components from the filesystem root.
func componentCount(path string) int {
	trimmed := strings.Trim(filepath.ToSlash(path), "/")
	if trimmed == "" {
		return 0
	}
	return len(strings.Split(trimmed, "/"))
}
