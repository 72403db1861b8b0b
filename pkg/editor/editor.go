// Package editor launches the user's editor on a project directory.
package editor

import (
	"os/exec"
	"slices"

	"github.com/vcode-cli/vcode/pkg/config"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
)

// Open launches the named editor on projectPath as a fully detached
// process: its own session, no inherited stdio. vcode exits
// immediately; the editor keeps running.
//
// When reuse is set and the editor config declares a reuse flag, that
// flag is appended so the editor reuses an existing window. Editors
// with VS Code style flags always get --no-sandbox, even when a
// custom editor config omits it.
func Open(cfg *config.Config, name, projectPath string, reuse bool) error {
	ec := cfg.GetEditor(name)

	bin, err := exec.LookPath(ec.Command)
	if err != nil {
		return vcerrors.NewEditorErrorWithCause(name, "command not found in PATH", err)
	}

	args := append([]string{}, ec.Args...)
	if IsVSCodeLike(name) && !slices.Contains(args, "--no-sandbox") {
		args = append(args, "--no-sandbox")
	}
	if reuse && ec.ReuseFlag != "" {
		args = append(args, ec.ReuseFlag)
	}
	args = append(args, projectPath)

	// #nosec G204 - the binary is resolved from the user's own editor
	// configuration, not from untrusted input.
	cmd := exec.Command(bin, args...)
	cmd.SysProcAttr = detachedProcAttr()

	if err := cmd.Start(); err != nil {
		return vcerrors.NewEditorErrorWithCause(name, "failed to start", err)
	}

	// Let the child outlive us.
	if err := cmd.Process.Release(); err != nil {
		return vcerrors.NewEditorErrorWithCause(name, "failed to detach", err)
	}
	return nil
}

// IsVSCodeLike reports whether the editor takes VS Code style flags.
func IsVSCodeLike(name string) bool {
	switch name {
	case "code", "cursor", "vscodium":
		return true
	}
	return false
}
