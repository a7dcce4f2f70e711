package cmd

import "fmt"

// Exit code for values and tables that fail their checks. Other errors
// fall back to 1 in main.
const exitInvalid = 1

// ExitError is an error that carries a specific process exit code.
// RunE returns it to signal the desired code to main.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func exitError(code int, format string, args ...any) *ExitError {
	return &ExitError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
