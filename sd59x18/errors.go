package sd59x18

import (
	"errors"
	"fmt"

	"github.com/zeebo/errs"

	"github.com/calebcase/sd59x18/integer"
)

// Error is the error class for this package.
var Error = errs.Class("sd59x18")

var (
	// ErrSyntax is returned for malformed decimal literals.
	ErrSyntax = Error.New("invalid literal")

	// ErrPrecision is returned for literals with more than 18 decimals.
	ErrPrecision = Error.New("more than 18 decimals")
)

// Kind identifies why a multiplication failed.
type Kind uint8

// Failure kinds. The zero Kind is not a failure.
const (
	// MulInputTooSmall: an operand is Min and the product is not zero.
	MulInputTooSmall Kind = iota + 1

	// MulOverflow: the signed product is outside [Min, Max].
	MulOverflow

	// MulDivFixedPointOverflow: the unsigned product of the magnitudes
	// divided by 10^18 needs more than 256 bits.
	MulDivFixedPointOverflow
)

var kindNames = [...]string{
	MulInputTooSmall:         "MulInputTooSmall",
	MulOverflow:              "MulOverflow",
	MulDivFixedPointOverflow: "MulDivFixedPointOverflow",
}

// Kinds lists every failure kind.
var Kinds = []Kind{MulInputTooSmall, MulOverflow, MulDivFixedPointOverflow}

// String returns the kind's name.
func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}

	return kindNames[k]
}

// Error implements error so a Kind can be the target of errors.Is.
func (k Kind) Error() string {
	return k.String()
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	for _, c := range Kinds {
		if c.String() == string(text) {
			*k = c
			return nil
		}
	}

	return Error.New("unknown kind %q", text)
}

// OpError describes a failed operation on two raw operands.
type OpError struct {
	Op   string
	Kind Kind
	X, Y integer.Int

	// Err is the underlying cause, if any.
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("sd59x18: %s(%s, %s): %s", e.Op, SD59x18(e.X), SD59x18(e.Y), e.Kind)
}

// Unwrap returns the underlying cause.
func (e *OpError) Unwrap() error {
	return e.Err
}

// Is reports whether target is e's Kind.
func (e *OpError) Is(target error) bool {
	k, ok := target.(Kind)

	return ok && k == e.Kind
}

// KindOf returns the failure kind carried by err.
func KindOf(err error) (k Kind, ok bool) {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind, true
	}

	if errors.As(err, &k) {
		return k, true
	}

	return 0, false
}
