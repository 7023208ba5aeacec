// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// errors.go - sentinel errors shared by every search engine.
//
// Error policy:
//   • Two classes: ErrInvalidInput (bad caller data) and ErrPrecondition
//     (a structural requirement of the algorithm is violated).
//   • Refined sentinels (ErrTypeMismatch, ErrEmptyInputSet, ...) match their
//     class via errors.Is, so callers may branch on either level.
//   • Context is attached with %w at the failure site; sentinels themselves
//     never carry formatted parameters.

package subset

import "errors"

// ErrInvalidInput is the class of errors caused by unusable caller data:
// a non-iterable collection or elements that are not integers.
var ErrInvalidInput = errors.New("subset: invalid input")

// ErrPrecondition is the class of errors raised when a search cannot start
// because one of its structural requirements is not met (empty input set,
// non-positive budget, odd population, ...).
var ErrPrecondition = errors.New("subset: precondition violated")

// ErrTypeMismatch indicates an element that cannot take part in integer
// arithmetic (string, float, nil, ...). Matches ErrInvalidInput.
var ErrTypeMismatch = NewInvalidInput("subset: non-integer element")

// ErrEmptyInputSet indicates that the deduplicated input holds no values,
// so masks would have length zero. Matches ErrPrecondition.
var ErrEmptyInputSet = NewPrecondition("subset: empty input set")

// ErrNonPositiveBudget indicates an iteration/generation budget ≤ 0.
// Matches ErrPrecondition.
var ErrNonPositiveBudget = NewPrecondition("subset: iteration budget must be positive")

// ErrMaskLength indicates a mask whose length differs from the InputSet size.
// Matches ErrPrecondition.
var ErrMaskLength = NewPrecondition("subset: mask length does not match input set")

// classified is a sentinel that belongs to a broader error class.
type classified struct {
	msg   string
	class error
}

func (e *classified) Error() string { return e.msg }
func (e *classified) Unwrap() error { return e.class }

// NewPrecondition returns a new sentinel with the given message that matches
// ErrPrecondition under errors.Is. Engine packages use it to declare their own
// precondition sentinels.
func NewPrecondition(msg string) error {
	return &classified{msg: msg, class: ErrPrecondition}
}

// NewInvalidInput returns a new sentinel with the given message that matches
// ErrInvalidInput under errors.Is.
func NewInvalidInput(msg string) error {
	return &classified{msg: msg, class: ErrInvalidInput}
}
