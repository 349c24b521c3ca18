package core

import "cmp"

// FitnessFn scores a genome. It must be pure and deterministic; the engine
// calls it exactly once per produced genome and caches the result on the
// chromosome. Higher is better.
type FitnessFn[G comparable, F cmp.Ordered] func(genes []G) F

// MutateFn is an optional caller-supplied mutation. It transforms the gene
// slice in place and may change any number of positions.
type MutateFn[G comparable] func(genes []G)

// CreateFn is an optional caller-supplied replacement for the default
// random-genome construction. It must return a genome of the configured
// target length.
type CreateFn[G comparable] func() []G

// CrossoverFn combines a parent genome with a donor genome from another
// pool slot. Returning nil signals that the two are too similar to combine
// meaningfully; the engine then refreshes the donor's slot and falls back
// to mutation for the current iteration.
type CrossoverFn[G comparable] func(parent, donor []G) []G

// ImprovementFn observes every new global best as it is found. It must not
// mutate the chromosome; the engine hands it a private copy.
type ImprovementFn[G comparable, F cmp.Ordered] func(best *Chromosome[G, F])
