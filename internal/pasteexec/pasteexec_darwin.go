//go:build darwin

package pasteexec

import "os/exec"

// New returns an Executor that sends Cmd+V through osascript.
func New() Executor {
	path, err := exec.LookPath("osascript")
	if err != nil {
		return noop{}
	}
	return &cmdExecutor{
		name: "osascript",
		argv: []string{path, "-e", `tell application "System Events" to keystroke "v" using command down`},
	}
}
