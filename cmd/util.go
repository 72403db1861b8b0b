package cmd

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/vcode-cli/vcode/pkg/registry"
)

// openStore opens the registry database configured for this run.
// Callers must Close the returned store.
func openStore() (*registry.Store, error) {
	if appConfig == nil {
		if err := initConfig(); err != nil {
			return nil, err
		}
	}
	return registry.Open(appConfig.Registry.DatabasePath)
}

// resolvePath canonicalizes an existing path, or anchors a
// not-yet-existing relative path at the current directory.
func resolvePath(input string) (string, error) {
	if _, err := os.Stat(input); err == nil {
		abs, err := filepath.Abs(input)
		if err != nil {
			return "", errors.Wrapf(err, "failed to resolve %s", input)
		}
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return abs, nil
		}
		return resolved, nil
	}

	if filepath.IsAbs(input) {
		return filepath.Clean(input), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "failed to get current directory")
	}
	return filepath.Join(cwd, input), nil
}

// pluralize returns "" for one and "s" otherwise.
func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
