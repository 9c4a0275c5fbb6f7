//go:build linux || darwin || windows

package clip

import (
	"log/slog"

	"golang.design/x/clipboard"
)

type systemBackend struct{}

// New returns the system clipboard backend, or the headless no-op
// backend if the display environment is unavailable (e.g. an SSH
// session without X11 or Wayland). clipboard.Init is called here rather
// than in init() so that sub-commands that never touch the clipboard
// don't trigger the warning.
func New() Backend {
	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable, running headless", "err", err)
		return &headlessBackend{}
	}
	return &systemBackend{}
}

func (*systemBackend) Name() string { return "system clipboard" }

func (*systemBackend) Read() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (*systemBackend) Write(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (*systemBackend) Close() {}
