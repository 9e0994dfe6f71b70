// Copyright 2024 The lzcomplex Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzerr defines the error taxonomy shared by every lzcomplex
// package: invalid caller input, resource exhaustion, and internal
// invariant violations.
package lzerr

import "runtime"

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "lzcomplex: " + string(e) }

// Kind classifies an Error for callers that want to branch on the
// failure category rather than match on message text.
type Kind int

const (
	// Other covers errors that do not fit one of the named kinds below.
	Other Kind = iota
	// InvalidInput marks a caller error: a nil buffer, a mismatched
	// length, or an out-of-range dimension/length parameter.
	InvalidInput
	// ResourceExhausted marks an allocation failure encountered while
	// building a result.
	ResourceExhausted
	// StateCorruption marks an assertion-class bug: an internal
	// invariant was violated. Reachable only via a bug in this library.
	StateCorruption
)

// KindError pairs a Kind with a message, so callers can use errors.As
// to recover the classification.
type KindError struct {
	Kind Kind
	Msg  string
}

func (e *KindError) Error() string { return "lzcomplex: " + e.Msg }

// New constructs a classified error.
func New(k Kind, msg string) error { return &KindError{Kind: k, Msg: msg} }

var (
	// ErrNilBuffer signals a nil or zero-length buffer where content
	// was required.
	ErrNilBuffer = New(InvalidInput, "nil or empty buffer")
	// ErrLengthMismatch signals a length argument inconsistent with the
	// buffer actually supplied.
	ErrLengthMismatch = New(InvalidInput, "length inconsistent with buffer")
	// ErrBadLength signals an exhaustive-enumeration length L outside
	// the supported range.
	ErrBadLength = New(InvalidInput, "L is non-positive or exceeds the supported bound")
	// ErrCorruptState signals an internal invariant violation, such as
	// a suffix-tree active point referencing a non-existent edge.
	ErrCorruptState = New(StateCorruption, "internal invariant violated")
)

// Recover turns a panic carrying an error value into a returned error,
// the way the teacher's codec packages recover prefix-decoding panics
// at their public API boundary (flate.errRecover, bzip2.errRecover).
// Any other panic value (including a runtime.Error) is re-raised: only
// deliberately raised library errors are meant to be caught here.
//
// recover only has an effect when called directly by the deferred
// function, so Recover must be the function passed to defer itself
// (`defer lzerr.Recover(&err)`) rather than invoked from inside another
// deferred closure; calling it through an extra layer of indirection
// would silently fail to catch the panic.
func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
