// SPDX-License-Identifier: MIT
// Package annealing implements simulated annealing for subset sum.
//
// The loop is first-choice hill climbing with one extra transition: a
// candidate that is not strictly better is still accepted with probability
//
//	P = exp(−(candidate − best) / T(t)),   T(t) = InitialTemperature / t,
//
// where t is the accept counter (starts at 1, grows on every accept). One
// uniform draw in [0,1) per round decides the move. Equal-fitness moves have
// P = 1 and are always taken.
//
// Because the working best may regress, the engine separately tracks a
// global best that only ever improves. Search returns the decoded global best.
//
// Termination (checked in this order):
//   - the working best is an exact solution;
//   - MaxNeighborAttempts consecutive rejections from the same working best;
//   - the accept counter reaches the iteration budget.
//
// Complexity: O(rounds · n) time, O(n) extra memory.
package annealing
