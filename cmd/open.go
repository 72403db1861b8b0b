package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/vcode-cli/vcode/pkg/editor"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// runOpenCommand opens a registered project in the configured editor.
// This is the default action of the bare `vcode <name>` invocation.
func runOpenCommand(name string, reuse bool, editorName string) error {
	store, err := openStore()
	if err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}
	defer store.Close()

	path, ok, err := store.Get(name)
	if err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}
	if !ok {
		ui.Infof("use 'vcode list' to see all projects or 'vcode add' to add a new one")
		return errors.Newf("project %q not found", name)
	}

	if editorName == "" {
		editorName = appConfig.DefaultEditor
	}
	ui.Debugf("resolved %q to %s", name, path)

	if err := editor.Open(appConfig, editorName, path, reuse); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("Opening %q in %s", name, editorName)
	return nil
}
