// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion, including a normal bye.
	Success = 0

	// Error indicates a runtime failure (config, I/O, terminal).
	Error = 1

	// Usage indicates bad flags or arguments.
	Usage = 2
)

// Coder is implemented by errors that carry their own exit code.
type Coder interface {
	ExitCode() int
}

// UsageError marks err as a command-line usage problem.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }
func (e *UsageError) ExitCode() int { return Usage }
