// Package scramble produces scrambled sliding-tile boards that are
// guaranteed reachable from a given goal.
//
// Two generation modes:
//
//   - Uniform (default): shuffle the tile multiset and keep the first
//     permutation the parity test accepts. Draws uniformly from the
//     solvable half of the permutation space; expected two draws per
//     scramble.
//   - Walk: perform a random walk of legal blank slides from the goal.
//     Always solvable by construction and never farther from the goal
//     than the walk length, which makes it the right source of test
//     fixtures with bounded solution depth.
//
// Scrambles are reproducible via WithSeed; a zero seed draws entropy
// from the clock.
package scramble
