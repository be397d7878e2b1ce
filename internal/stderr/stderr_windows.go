//go:build windows

// Package stderr is a no-op on Windows, where fd redirection via dup2
// is unavailable and the native libraries in use stay quiet.
package stderr

// Messages never receives anything on Windows.
var Messages = make(chan string)

// Start is a no-op.
func Start() error { return nil }

// Stop is a no-op.
func Stop() {}
