package handlers

import "fmt"

// ExitUsage is returned for errors that happen before a handler runs, such as
// unknown flags.
const ExitUsage = 64

// ExitError carries the process exit code of a finished command.
// Err is nil when the command already printed everything the user needs.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
