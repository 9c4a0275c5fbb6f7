//go:build !linux && !darwin

package pasteexec

// New returns the copy-only executor on platforms without a supported
// keystroke-injection tool.
func New() Executor { return noop{} }
