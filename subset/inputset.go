// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// inputset.go - the deduplicated, order-stable value list that defines bit
// positions for every Mask.

package subset

import (
	"fmt"
	"math"
	"reflect"
)

const methodDedupe = "Dedupe"

// InputSet is an ordered sequence of distinct integers. Position i of the
// InputSet corresponds to bit i of every Mask built for it.
// The zero value is an empty set.
type InputSet struct {
	values []int
}

// NewInputSet removes duplicates from values, keeping the first occurrence of
// each integer. The caller's slice is never retained.
//
// Complexity: O(n) time, O(n) extra space.
func NewInputSet(values []int) InputSet {
	out := make([]int, 0, len(values))
	seen := make(map[int]struct{}, len(values))

	var (
		v  int
		ok bool
	)
	for _, v = range values {
		if _, ok = seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return InputSet{values: out}
}

// Dedupe builds an InputSet from a loosely typed collection, e.g. values
// decoded from YAML or JSON. Accepted inputs:
//   - any slice or array whose element kind is a Go integer kind;
//   - []any (or any slice of interfaces) whose elements are integers;
//   - an existing InputSet (returned as is).
//
// Errors:
//   - ErrInvalidInput when values is nil or not a slice/array (maps and
//     strings are rejected: their iteration order or element type is not a
//     sequence of integers).
//   - ErrTypeMismatch (matches ErrInvalidInput) when an element is not an
//     integer, or an unsigned value does not fit into int.
//
// Complexity: O(n).
func Dedupe(values any) (InputSet, error) {
	switch v := values.(type) {
	case nil:
		return InputSet{}, fmt.Errorf("%s: nil collection: %w", methodDedupe, ErrInvalidInput)
	case InputSet:
		return v, nil
	case []int:
		return NewInputSet(v), nil
	}

	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return InputSet{}, fmt.Errorf("%s: %T is not a sequence: %w", methodDedupe, values, ErrInvalidInput)
	}

	ints := make([]int, rv.Len())
	var (
		i   int
		x   int
		err error
	)
	for i = 0; i < rv.Len(); i++ {
		if x, err = toInt(rv.Index(i)); err != nil {
			return InputSet{}, fmt.Errorf("%s: element %d: %w", methodDedupe, i, err)
		}
		ints[i] = x
	}

	return NewInputSet(ints), nil
}

// toInt converts a reflected integer value into int.
func toInt(v reflect.Value) (int, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return 0, fmt.Errorf("nil: %w", ErrTypeMismatch)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("%d overflows int: %w", u, ErrTypeMismatch)
		}
		return int(u), nil
	default:
		return 0, fmt.Errorf("%s value %v: %w", v.Kind(), v.Interface(), ErrTypeMismatch)
	}
}

// Len returns the number of distinct values (the mask length).
func (s InputSet) Len() int { return len(s.values) }

// At returns the value at bit position i. It panics on out-of-range i,
// like slice indexing.
func (s InputSet) At(i int) int { return s.values[i] }

// Values returns a copy of the distinct values in bit order.
func (s InputSet) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}
