// Package planerr defines the error taxonomy surfaced by the logical
// plan core: invariant violations, malformed expressions, unsupported
// plan shapes, and clone failures. Every error is a *errors.Kind so
// callers can match on kind with errors.Is / Kind.Is rather than on
// message text.
package planerr

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvariantViolation signals that a precondition of a core API was
	// broken by the caller. Programmer error: never recovered.
	ErrInvariantViolation = errors.NewKind("invariant violation: %s")

	// ErrMalformedExpression signals that an expression passed to an
	// analysis has a structural shape the analysis does not support.
	ErrMalformedExpression = errors.NewKind("malformed expression: %s")

	// ErrUnsupportedPlan signals that a rewrite encountered a node kind
	// it does not know how to transform.
	ErrUnsupportedPlan = errors.NewKind("unsupported plan: %s")

	// ErrCloneFailure signals that cloning a node payload failed.
	ErrCloneFailure = errors.NewKind("clone failed: %s")
)
