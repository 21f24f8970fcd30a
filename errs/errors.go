/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package errs defines the error kinds raised at the boundary of the
// peks, pecdk and expr packages. None of the three recover internally;
// every error reaches the caller at the operation that caused it.
package errs

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// InvalidArgument signals a precondition violation: a vector of the wrong
// size, an n or bit-size parameter out of range.
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Msg)
}

// NewInvalidArgument builds an InvalidArgument error.
func NewInvalidArgument(msg string) error {
	return &InvalidArgument{Msg: msg}
}

// TooManyKeywords is returned by an expression encoder asked to encode
// more keywords than the key's n allows.
type TooManyKeywords struct {
	Got int
	Max int
}

func (e *TooManyKeywords) Error() string {
	return fmt.Sprintf("got %d keywords, but at most %d are supported", e.Got, e.Max)
}

// NewTooManyKeywords builds a TooManyKeywords error.
func NewTooManyKeywords(got, max int) error {
	return &TooManyKeywords{Got: got, Max: max}
}

// InverseFailure reports a scalar or target-group element that should be
// invertible (cryptographically negligible to fail) evaluating to zero.
// The offending value is carried as opaque hex rather than the curve's
// native type, so this error stays non-generic.
type InverseFailure struct {
	// What names which quantity failed to invert (e.g. "trapdoor denominator D").
	What string
	// ValueHex is the hex encoding of the zero value's canonical bytes, for
	// debugging; it carries no secret beyond what a failed inversion already
	// reveals (the value is zero).
	ValueHex string
}

func (e *InverseFailure) Error() string {
	return fmt.Sprintf("failed to invert %s (value %s)", e.What, e.ValueHex)
}

// NewInverseFailure builds an InverseFailure error.
func NewInverseFailure(what string, valueHex string) error {
	return &InverseFailure{What: what, ValueHex: valueHex}
}

// HashError wraps an I/O or encoding failure from a hash-to-curve or
// group-element compression step. Err carries a github.com/pkg/errors
// stack trace when cause is non-nil, so a failing hash-to-field call
// during trapdoor generation still points at the underlying I/O error.
type HashError struct {
	Msg string
	Err error
}

func (e *HashError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hash error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("hash error: %s", e.Msg)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

// NewHashError builds a HashError, wrapping a lower-level cause (if any)
// with a stack trace via github.com/pkg/errors.
func NewHashError(msg string, cause error) error {
	if cause != nil {
		cause = pkgerrors.Wrap(cause, msg)
	}
	return &HashError{Msg: msg, Err: cause}
}
