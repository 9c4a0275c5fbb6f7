package clip

// headlessBackend is a no-op backend for environments without a display
// server (headless boxes, containers, CI). Reads see an empty clipboard
// and writes are silently discarded.
type headlessBackend struct{}

func (*headlessBackend) Name() string          { return "headless (no-op)" }
func (*headlessBackend) Read() (string, error) { return "", nil }
func (*headlessBackend) Write(string) error    { return nil }
func (*headlessBackend) Close()                {}
