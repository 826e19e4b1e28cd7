package strscan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an integer argument is outside the
	// domain accepted by the operation (e.g. a negative length).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned when a value does not fit the platform int or
	// a position falls outside the buffer.
	ErrOutOfRange = errors.New("value out of range")
	// ErrWrongType is returned when an argument is not an integer at all.
	ErrWrongType = errors.New("wrong argument type")
)

// ArgError records the operation and argument that caused a failure.
type ArgError struct {
	Op  string
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("strscan: %s(%s): %v", e.Op, e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

func argError(op string, arg any, err error) *ArgError {
	return &ArgError{Op: op, Arg: fmt.Sprint(arg), Err: err}
}
