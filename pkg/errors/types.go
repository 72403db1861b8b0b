// Package errors provides typed errors for the vcode project.
//
// This package defines domain-specific error types that provide structured
// error information for different subsystems (scan, registry, config,
// editor). All error types implement the standard error interface and
// support errors.Is() and errors.As() from the standard library and
// cockroachdb/errors.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ScanError represents directory scanning errors.
type ScanError struct {
	Path        string // The directory that caused the failure
	InvalidBase bool   // True when the base path is missing or not a directory
	Message     string
	Cause       error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.InvalidBase {
		return fmt.Sprintf("scan base %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("scan failed at %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewInvalidBaseError creates a ScanError for a base path that does
// not exist or is not a directory.
func NewInvalidBaseError(path string) *ScanError {
	return &ScanError{
		Path:        path,
		InvalidBase: true,
		Message:     "path does not exist or is not a directory",
	}
}

// NewScanIOError creates a ScanError for an unreadable directory
// encountered mid-scan.
func NewScanIOError(path string, cause error) *ScanError {
	return &ScanError{Path: path, Message: "directory is not readable", Cause: cause}
}

// RegistryError represents project registry errors.
type RegistryError struct {
	Operation string // e.g., "Add", "Remove", "Rename"
	Name      string // Project name, if applicable
	Message   string
	Cause     error
}

// Error implements the error interface.
func (e *RegistryError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("registry %s for %q failed: %s", e.Operation, e.Name, e.Message)
	}
	return fmt.Sprintf("registry %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *RegistryError) Unwrap() error {
	return e.Cause
}

// NewRegistryError creates a new RegistryError.
func NewRegistryError(operation, name, message string) *RegistryError {
	return &RegistryError{Operation: operation, Name: name, Message: message}
}

// NewRegistryErrorWithCause creates a new RegistryError with an underlying cause.
func NewRegistryErrorWithCause(operation, name, message string, cause error) *RegistryError {
	return &RegistryError{Operation: operation, Name: name, Message: message, Cause: cause}
}

// ConfigError represents configuration-related errors.
type ConfigError struct {
	Field   string // Which config field has the issue
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return "config error: " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// NewConfigErrorWithCause creates a new ConfigError with an underlying cause.
func NewConfigErrorWithCause(field, message string, cause error) *ConfigError {
	return &ConfigError{Field: field, Message: message, Cause: cause}
}

// EditorError represents editor launch errors.
type EditorError struct {
	Editor  string // Editor name as configured
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EditorError) Error() string {
	return fmt.Sprintf("editor %s: %s", e.Editor, e.Message)
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *EditorError) Unwrap() error {
	return e.Cause
}

// NewEditorError creates a new EditorError.
func NewEditorError(editor, message string) *EditorError {
	return &EditorError{Editor: editor, Message: message}
}

// NewEditorErrorWithCause creates a new EditorError with an underlying cause.
func NewEditorErrorWithCause(editor, message string, cause error) *EditorError {
	return &EditorError{Editor: editor, Message: message, Cause: cause}
}

// IsInvalidBase checks if an error chain contains a ScanError for an
// invalid base path.
func IsInvalidBase(err error) bool {
	var scanErr *ScanError
	return errors.As(err, &scanErr) && scanErr.InvalidBase
}

// IsScanError checks if an error or any error in its chain is a ScanError.
func IsScanError(err error) bool {
	var scanErr *ScanError
	return errors.As(err, &scanErr)
}

// IsRegistryError checks if an error or any error in its chain is a RegistryError.
func IsRegistryError(err error) bool {
	var regErr *RegistryError
	return errors.As(err, &regErr)
}

// IsConfigError checks if an error or any error in its chain is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEditorError checks if an error or any error in its chain is an EditorError.
func IsEditorError(err error) bool {
	var edErr *EditorError
	return errors.As(err, &edErr)
}
