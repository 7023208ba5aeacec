// SPDX-License-Identifier: MIT
// Package: sumsearch/subset
//
// problem.go - a validated (InputSet, target) pair that engines compose over.

package subset

import "fmt"

// Problem bundles a non-empty InputSet with the target sum. Engines hold a
// Problem by value; it is immutable after construction.
type Problem struct {
	set    InputSet
	target int
}

// NewProblem deduplicates values and pairs them with target.
//
// Errors: ErrEmptyInputSet when no values remain.
//
// Complexity: O(n).
func NewProblem(target int, values []int) (Problem, error) {
	return NewProblemFromSet(target, NewInputSet(values))
}

// NewProblemFromSet pairs an already built InputSet with target.
//
// Errors: ErrEmptyInputSet when set is empty.
func NewProblemFromSet(target int, set InputSet) (Problem, error) {
	if set.Len() == 0 {
		return Problem{}, fmt.Errorf("NewProblem: %w", ErrEmptyInputSet)
	}
	return Problem{set: set, target: target}, nil
}

// Set returns the problem's InputSet.
func (p Problem) Set() InputSet { return p.set }

// Target returns the searched sum.
func (p Problem) Target() int { return p.target }

// Len returns the mask length for this problem.
func (p Problem) Len() int { return p.set.Len() }

// Fitness evaluates mask against the problem's target.
func (p Problem) Fitness(mask Mask) (int, error) {
	return Fitness(mask, p.set, p.target)
}

// Decode returns the values selected by mask.
func (p Problem) Decode(mask Mask) ([]int, error) {
	return Decode(mask, p.set)
}
