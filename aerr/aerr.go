// Package aerr defines the error taxonomy shared by every layer of the
// arithmetic kernel. Numeric domain conditions are reported as values,
// never as panics; only broken caller contracts (external synchronization,
// internal invariants) panic.
package aerr

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// DOMAIN is returned when an input falls outside the mathematical
	// domain of the operation (even root of a negative number, log of
	// zero, division by zero, a negative exponent passed to ModPow).
	DOMAIN Kind = iota
	// ZeroToZero is returned for 0**0 in Pow or Root.
	ZeroToZero
	// Precision is returned when a transcendental function is asked to
	// operate at infinite precision, or when the result would have
	// fewer than one significant digit left.
	Precision
	// Overflow is returned when Exp is asked to evaluate an operand too
	// large to represent at the target precision.
	Overflow
	// Resource is returned when a requested transform length exceeds
	// the element type's maximum transform length, or a DataStorage
	// allocation fails.
	Resource
)

func (k Kind) String() string {
	switch k {
	case DOMAIN:
		return "DOMAIN"
	case ZeroToZero:
		return "ZERO-TO-ZERO"
	case Precision:
		return "PRECISION"
	case Overflow:
		return "OVERFLOW"
	case Resource:
		return "RESOURCE"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the concrete error type returned by every fallible operation in
// this module. It is comparable by Kind via errors.As / Is.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, aerr.Domain("", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

func Domain(op, msg string) *Error    { return New(DOMAIN, op, msg) }
func Zero(op, msg string) *Error      { return New(ZeroToZero, op, msg) }
func Prec(op, msg string) *Error      { return New(Precision, op, msg) }
func Overflowf(op, msg string) *Error { return New(Overflow, op, msg) }
func Res(op, msg string) *Error       { return New(Resource, op, msg) }
