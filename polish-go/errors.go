package polish_go

import (
	"errors"
	"fmt"
)

var (
	ErrNotEnoughOperands      = errors.New("Not enough operands in expression")
	ErrNotEnoughOperators     = errors.New("Not enough operators in expression")
	ErrDivisionByZero         = errors.New("Encountered division by zero")
	ErrOpeningBracketNotFound = errors.New("Opening bracket not found")
	ErrInvalidVariableValue   = errors.New("variable value is not an integer")
	ErrNumberOutOfRange       = errors.New("Number out of range")
)

// UnexpectedTokenError reports a token that is neither an integer literal
// nor an operator.
type UnexpectedTokenError struct {
	Token string
}

func (this *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Received unexpected token: %s", this.Token)
}
