package discovery

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

// Scan walks basePath and reports directories found exactly at
// targetDepth, where depth 1 means the immediate children of basePath.
// Excluded directories prune their whole subtree. In FilterAuto mode
// only directories that classify to a project type are reported;
// FilterAll reports every non-excluded directory at the target depth.
//
// Results are returned in filesystem enumeration order with absolute
// paths. Scan is fail-fast: the first unreadable directory aborts the
// call with a ScanError. A missing or non-directory basePath fails
// with an invalid-base ScanError and no partial result.
func Scan(basePath string, targetDepth int, mode FilterMode) ([]FoundProject, error) {
	if targetDepth < 1 {
		return nil, errors.Newf("target depth must be at least 1, got %d", targetDepth)
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", basePath)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, vcerrors.NewInvalidBaseError(basePath)
	}

	var found []FoundProject
	if err := scanLevel(abs, targetDepth, 1, mode, &found); err != nil {
		return nil, err
	}
	return found, nil
}

// scanLevel enumerates dir, whose child directories sit at depth.
// Children at the target depth are evaluated for inclusion and never
// descended into; children above it are recursed and never evaluated.
func scanLevel(dir string, targetDepth, depth int, mode FilterMode, found *[]FoundProject) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return vcerrors.NewScanIOError(dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if IsExcluded(name) {
			continue
		}
		path := filepath.Join(dir, name)

		if depth == targetDepth {
			typ := Classify(path)
			if mode == FilterAll || typ != TypeUnclassified {
				*found = append(*found, FoundProject{Name: name, Path: path, Type: typ})
			}
			continue
		}

		if err := scanLevel(path, targetDepth, depth+1, mode, found); err != nil {
			return err
		}
	}
	return nil
}
