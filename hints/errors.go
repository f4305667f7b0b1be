package hints

import "errors"

// Hint failures are fatal: they abort the VM's current execution step and
// are never recovered locally. Memory consistency violations surface as
// memory.ErrMemoryWriteOnce, propagated unchanged.
var (
	// ErrMissingConstant reports a required program constant absent from
	// the constants table.
	ErrMissingConstant = errors.New("missing constant")
	// ErrUnknownIdentifier reports a variable name with no reference in
	// the current frame.
	ErrUnknownIdentifier = errors.New("unknown identifier")
	// ErrIdentifierHasNoMember reports a struct variable whose member cell
	// is absent from memory.
	ErrIdentifierHasNoMember = errors.New("identifier has no member")
	// ErrApTrackingMismatch reports an ap-based reference recorded under a
	// different tracking group than the hint's.
	ErrApTrackingMismatch = errors.New("ap tracking mismatch")
	// ErrAssertionFailed reports a violated precondition over program
	// constants.
	ErrAssertionFailed = errors.New("assertion failed")
	// ErrDivisionByZero reports a zero divisor handed to the division
	// primitive.
	ErrDivisionByZero = errors.New("division by zero")
)
