package eval

import (
	"errors"
	"fmt"
)

// Runtime errors handed to the diagnostic channel.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// UndefinedError is reported for reading an unassigned variable, if
// option StrictVars is set.
type UndefinedError struct {
	Name string
	Line int
}

func (e *UndefinedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: undefined variable '%s'", e.Line, e.Name)
	}
	return fmt.Sprintf("undefined variable '%s'", e.Name)
}
