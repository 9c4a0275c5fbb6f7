// Package pasteexec sends a paste keystroke to the focused application
// after a history entry has been copied back to the clipboard. It is
// best-effort: without an injection tool the selection still sits on
// the clipboard and the user pastes by hand.
package pasteexec

import (
	"bytes"
	"fmt"
	"os/exec"
	"time"
)

// Executor triggers a paste keystroke in the focused application.
type Executor interface {
	// Name returns a human-readable name for the executor.
	Name() string

	// Paste sends the paste keystroke. The clipboard must already hold
	// the text to paste.
	Paste() error
}

type noop struct{}

func (noop) Name() string { return "none (copy only)" }
func (noop) Paste() error { return nil }

// cmdExecutor shells out to a platform keystroke-injection tool.
type cmdExecutor struct {
	name string
	argv []string
}

func (c *cmdExecutor) Name() string { return c.name }

func (c *cmdExecutor) Paste() error {
	// Short delay so the picker has released focus before the keystroke
	// lands in the target application.
	time.Sleep(50 * time.Millisecond)
	out, err := exec.Command(c.argv[0], c.argv[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w (%s)", c.name, err, bytes.TrimSpace(out))
	}
	return nil
}
