// Package cadre partitions a set of people into balanced, disjoint groups ("cadres").
//
// # Reading Guide
//
// Start with these files:
//   - compat.go: the compatibility graph (people joined unless a forbidden group pairs them)
//   - clique.go: maximal-clique search around a seed person and seeded candidate selection
//   - generator.go: the assembly loop that emits preferred groups, then carves cliques out of
//     the graph until everybody is placed
//
// # Determinism
//
// A run draws every random choice from one math/rand stream seeded by GenerationKey.
// The same Config therefore always yields the same Result, cadre for cadre.
//
// # Clique policies
//
// The assembler asks for a compatible group of a target size around the lowest-degree person.
// CliquePolicy decides how maximal cliques become candidates of that size:
//   - PolicyTrimmed: any maximal clique at least that large, trimmed at random to size
//   - PolicyMaximal: only maximal cliques of exactly that size
//
// When no compatible group of the target size exists, the group is padded with random
// remaining people. Padding may co-place a forbidden pair; every such pair is reported in
// Result.Violations.
package cadre
