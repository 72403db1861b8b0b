package discovery

// excludedDirs lists directory leaf names that are never reported and
// never recursed into: build artifacts, dependency trees, VCS
// internals, IDE metadata. Compared case-sensitively against the leaf
// name only.
var excludedDirs = map[string]bool{
	// JavaScript / Node
	"node_modules": true,
	// Python
	"__pycache__":   true,
	".pytest_cache": true,
	".mypy_cache":   true,
	// VCS
	".git": true,
	".svn": true,
	".hg":  true,
	// Rust / Cargo
	"target": true,
	// Java / JVM
	"out":   true,
	"bin":   true,
	"build": true,
	// C / C++ build systems
	"cmake-build-debug":   true,
	"cmake-build-release": true,
	"Debug":               true,
	"Release":             true,
	// Web / frontend
	"dist":     true,
	".next":    true,
	".nuxt":    true,
	".angular": true,
	".cache":   true,
	// IDE / editor
	".idea":   true,
	".vscode": true,
	// Other generated dirs
	"coverage": true,
	"logs":     true,
	"tmp":      true,
	"temp":     true,
}

// IsExcluded reports whether a directory leaf name is in the static
// exclusion set. Exclusion prunes the whole subtree: an excluded
// directory is neither reported nor descended into.
func IsExcluded(leaf string) bool {
	return excludedDirs[leaf]
}
