// Package genetic implements a generational genetic algorithm for subset sum.
//
// One generation:
//
//  1. Fitness   f_i = |target − Σ selected values| for every individual.
//  2. Rescale   w_i = Σf − f_i, so lower fitness ⇒ higher weight.
//  3. Select    PopulationSize roulette picks with replacement.
//  4. Crossover consecutive pairs (0&1, 2&3, …) swap tails at one split
//     point drawn from [1, n−1].
//  5. Mutate    every bit flips when a draw from [0, MutationDenominator]
//     hits 0, i.e. with probability 1/(MutationDenominator+1).
//
// Search runs exactly `generations` generations and returns the final
// population. BestIndividual decodes its fittest member.
//
// The operators are exported so callers can compose their own loops:
//
//	w := genetic.Rescale(fitness)
//	next, err := genetic.RouletteSelect(pop, w, rng)
//	next, err = genetic.Crossover(next, rng)
//	next, err = genetic.Mutate(next, 100, rng)
//
// Complexity: O(generations · P · n) time and O(P · n) memory for
// population size P and mask length n.
package genetic
