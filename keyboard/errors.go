package keyboard

import (
	"errors"
	"fmt"
)

var (
	ErrMissingElement     = errors.New("missing element")
	ErrAlreadyInitialized = errors.New("keyboard already initialized")
	ErrInvalidConfig      = errors.New("invalid keyboard config")
)

type Role string

const (
	RoleKey       Role = "key"
	RoleShift     Role = "shift"
	RoleBackspace Role = "backspace"
	RoleDisplay   Role = "display"
)

// MissingElementError is returned by Initialize when the document has no
// element for a role.
type MissingElementError struct {
	Role     Role
	Selector string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%s element not found (selector %q)", e.Role, e.Selector)
}

func (e *MissingElementError) Unwrap() error {
	return ErrMissingElement
}
