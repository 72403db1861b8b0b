package errors

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// FormatUserError returns a user-friendly error message with actionable guidance.
// It examines the error chain and provides context-appropriate help text.
func FormatUserError(err error) string {
	if err == nil {
		return ""
	}

	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return formatScanError(scanErr)
	}

	var regErr *RegistryError
	if errors.As(err, &regErr) {
		return formatRegistryError(regErr)
	}

	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return formatConfigError(configErr)
	}

	var edErr *EditorError
	if errors.As(err, &edErr) {
		return formatEditorError(edErr)
	}

	// Default: return the error message as-is
	return err.Error()
}

// formatScanError formats a ScanError with actionable guidance.
func formatScanError(err *ScanError) string {
	var b strings.Builder

	if err.InvalidBase {
		fmt.Fprintf(&b, "Cannot scan '%s': %s\n", err.Path, err.Message)
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check the path for typos\n")
		b.WriteString("  • Run 'vcode config --projects-root <dir>' to change the default scan root\n")
	} else {
		fmt.Fprintf(&b, "Scan aborted at '%s': %s\n", err.Path, err.Message)
		b.WriteString("\nTo fix this:\n")
		b.WriteString("  • Check read permissions on the directory\n")
		b.WriteString("  • Scan a narrower base path that avoids it\n")
	}

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatRegistryError formats a RegistryError with actionable guidance.
func formatRegistryError(err *RegistryError) string {
	var b strings.Builder

	if err.Name != "" {
		fmt.Fprintf(&b, "Registry error for '%s' during %s: %s\n", err.Name, err.Operation, err.Message)
	} else {
		fmt.Fprintf(&b, "Registry error during %s: %s\n", err.Operation, err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Run 'vcode list' to see registered projects\n")
	b.WriteString("  • Check that the registry database is writable\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatConfigError formats a ConfigError with actionable guidance.
func formatConfigError(err *ConfigError) string {
	var b strings.Builder

	if err.Field != "" {
		fmt.Fprintf(&b, "Configuration error in '%s': %s\n", err.Field, err.Message)
	} else {
		fmt.Fprintf(&b, "Configuration error: %s\n", err.Message)
	}

	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check your config file: ~/.config/vcode/config.toml\n")
	b.WriteString("  • Run 'vcode config --show' to inspect the loaded values\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}

// formatEditorError formats an EditorError with actionable guidance.
func formatEditorError(err *EditorError) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Failed to launch editor '%s': %s\n", err.Editor, err.Message)
	b.WriteString("\nTo fix this:\n")
	b.WriteString("  • Check that the editor command is installed and on PATH\n")
	b.WriteString("  • Run 'vcode config --editor <name>' to change the default editor\n")

	if err.Cause != nil {
		fmt.Fprintf(&b, "\nUnderlying error: %v", err.Cause)
	}

	return b.String()
}
