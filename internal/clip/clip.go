// Package clip provides access to the system text clipboard.
//
// golang.design/x/clipboard backs the real implementation on Linux,
// macOS and Windows (clip_system.go). When the display environment is
// unavailable at startup, or on any other platform, a no-op headless
// backend is used instead (clip_headless.go, clip_other.go).
package clip

// Backend is the OS clipboard accessor used by the watcher and daemon.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns the current clipboard text. An empty string with a
	// nil error means the clipboard holds no text.
	Read() (string, error)

	// Write replaces the clipboard text.
	Write(text string) error

	// Close releases any resources held by the backend.
	Close()
}
