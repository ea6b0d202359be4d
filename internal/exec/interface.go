// Package exec provides an interface for command execution.
package exec

// CommandRunner defines the interface for spawning external commands.
// This abstraction allows mocking command execution in tests.
type CommandRunner interface {
	// Start spawns a command without waiting for it. The process is reaped
	// in the background; the caller only learns about spawn failures.
	Start(name string, args ...string) error
}
