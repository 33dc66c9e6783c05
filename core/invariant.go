package core

import "fmt"

// InvariantError is the panic value raised by Assert
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

// Assert panics with an *InvariantError when cond is false
// Reserved for states that are impossible by construction, never for recoverable errors
func Assert(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&InvariantError{Msg: fmt.Sprintf(format, args...)})
}
