// Copyright (c) 2026, Chromalab. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chromaerr defines the error kinds shared across the colorimetry
// core. Every fallible operation in the module returns one of these kinds
// wrapped in an *Error so callers can distinguish "bad input" from
// "library bug" without parsing message strings.
package chromaerr

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// InputDomain means a component, name, or string was out of range or
	// unrecognized: an RGB channel above 1 at construction, a malformed
	// hex string, an unknown illuminant/observer/space/method name.
	InputDomain Kind = iota

	// Precondition means an invariant the caller controls was violated,
	// such as registering a duplicate adaptation method or color space.
	Precondition

	// Singular means a matrix inversion was attempted on a matrix whose
	// determinant is too small to invert reliably.
	Singular

	// Representation means an output conversion produced NaN or Inf from
	// inputs that already passed validation. This indicates a bug in the
	// core, not an expected failure, and callers should treat it as such.
	Representation
)

func (k Kind) String() string {
	switch k {
	case InputDomain:
		return "input domain"
	case Precondition:
		return "precondition"
	case Singular:
		return "singular"
	case Representation:
		return "representation"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by the core.
type Error struct {
	Kind Kind
	// Op names the function or operation that failed.
	Op string
	// Msg is a human-readable message identifying the offending input.
	Msg string
	// Err, if non-nil, is a wrapped lower-level cause.
	Err error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same Kind, so callers
// can check the kind with errors.Is against a sentinel built with
// New(kind, "", ""), e.g. errors.Is(err, chromaerr.New(chromaerr.Singular, "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New constructs an *Error of the given kind.
func New(kind Kind, op, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}

// Wrap constructs an *Error of the given kind wrapping a lower-level cause.
func Wrap(kind Kind, op, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg, Err: err}
}
