// Package ipc provides the local Unix-socket channel clippick
// sub-commands use to talk to a running watch daemon instead of opening
// the state file themselves.
package ipc

import (
	"net"
	"os"
	"path/filepath"
)

// SocketPath returns the path for the IPC socket.
//
//   - $CLIPPICK_SOCKET when set
//   - $XDG_RUNTIME_DIR/clippick.sock (Linux)
//   - $TMPDIR/clippick.sock otherwise
func SocketPath() string {
	if s := os.Getenv("CLIPPICK_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "clippick.sock")
	}
	return filepath.Join(os.TempDir(), "clippick.sock")
}

// IsRunning reports whether a watch daemon appears to be listening on
// the IPC socket. It does a cheap dial-and-close; no data is exchanged.
func IsRunning() bool {
	c, err := net.Dial("unix", SocketPath())
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

// Listen creates and returns a net.Listener on the IPC socket path,
// removing any stale socket file from a previous (crashed) run first.
func Listen() (net.Listener, error) {
	path := SocketPath()
	_ = os.Remove(path)
	return net.Listen("unix", path)
}

// Dial connects to the IPC socket.
func Dial() (net.Conn, error) {
	return net.Dial("unix", SocketPath())
}
