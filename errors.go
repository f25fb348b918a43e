package dct

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the base error for caller-contract violations.
// Every validation error returned by this package matches it with
// errors.Is.
var ErrInvalidInput = errors.New("dct: invalid input")

// ErrEmptySequence reports a zero-length input sequence.
var ErrEmptySequence = fmt.Errorf("%w: empty sequence", ErrInvalidInput)

// NonFiniteValueError reports a NaN or infinite input element.
type NonFiniteValueError struct {
	Index int
	Value float64
}

func (e *NonFiniteValueError) Error() string {
	return fmt.Sprintf("dct: invalid input: non-finite value %v at index %d", e.Value, e.Index)
}

func (e *NonFiniteValueError) Unwrap() error { return ErrInvalidInput }

// LengthError reports a slice whose length does not match a plan's
// transform size.
type LengthError struct {
	Got, Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("dct: invalid input: sequence length %d, plan size %d", e.Got, e.Want)
}

func (e *LengthError) Unwrap() error { return ErrInvalidInput }
