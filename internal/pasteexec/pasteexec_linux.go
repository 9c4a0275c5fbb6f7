//go:build linux

package pasteexec

import "os/exec"

// New returns an Executor backed by wtype (Wayland) or xdotool (X11),
// whichever is installed, falling back to copy-only.
func New() Executor {
	if path, err := exec.LookPath("wtype"); err == nil {
		return &cmdExecutor{
			name: "wtype",
			argv: []string{path, "-M", "ctrl", "v", "-m", "ctrl"},
		}
	}
	if path, err := exec.LookPath("xdotool"); err == nil {
		return &cmdExecutor{
			name: "xdotool",
			argv: []string{path, "key", "--clearmodifiers", "ctrl+v"},
		}
	}
	return noop{}
}
