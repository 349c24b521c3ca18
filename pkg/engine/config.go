package engine

import (
	"cmp"
	"math/rand"
	"time"

	"github.com/andrei0929/genetic-go/pkg/core"
	"github.com/andrei0929/genetic-go/pkg/errors"
	"github.com/andrei0929/genetic-go/pkg/utils"
)

// Config contains all options for a search. It is passed once at
// construction; the engine never reads ambient state.
type Config[G comparable, F cmp.Ordered] struct {
	// Fitness scores a genome. Required, pure, deterministic.
	Fitness core.FitnessFn[G, F]

	// TargetLength is the genome length for the run. Zero is legal: the
	// genome is empty and fitness is computed once on an empty sequence.
	TargetLength int

	// OptimalFitness stops the driver once a best candidate reaches or
	// exceeds it.
	OptimalFitness F

	// GeneSet is the finite alphabet the default operators draw from.
	// Duplicates are removed at construction. Must hold at least two
	// distinct symbols while the default mutation is active.
	GeneSet []G

	// OnImprovement is invoked with a copy of every new global best.
	// Observation only; it cannot influence the search. Optional.
	OnImprovement core.ImprovementFn[G, F]

	// CustomMutate replaces the default single-position mutation with an
	// in-place transformation of arbitrary extent. Optional.
	CustomMutate core.MutateFn[G]

	// CustomCreate replaces the default random-genome construction.
	// Optional.
	CustomCreate core.CreateFn[G]

	// Crossover enables the crossover strategy. A nil return from the
	// function marks parent and donor as too similar to combine. Requires
	// PoolSize >= 2: self-donation is rejected at validation time.
	// Optional.
	Crossover core.CrossoverFn[G]

	// MaxAge is the number of consecutive failed generations a lineage
	// survives before the annealing rule decides its fate. Zero disables
	// aging entirely.
	MaxAge int

	// PoolSize is the number of concurrently evolving lineages. Zero
	// defaults to 1.
	PoolSize int

	// Seed seeds the engine's private random source when Rand is nil.
	// Zero picks a time-based seed.
	Seed int64

	// Rand, when set, is used as-is. Inject a fixed-seed source for
	// deterministic runs.
	Rand *rand.Rand
}

// setDefaults normalizes the zero values. Called by New before Validate.
func (c *Config[G, F]) setDefaults() {
	if c.PoolSize == 0 {
		c.PoolSize = 1
	}
	c.GeneSet = utils.Dedupe(c.GeneSet)
	if c.Rand == nil {
		seed := c.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		c.Rand = rand.New(rand.NewSource(seed))
	}
}

// Validate rejects configurations that would fail mid-run. Every violation
// is reported before the improvement loop starts.
func (c *Config[G, F]) Validate() error {
	if c.Fitness == nil {
		return errors.New(errors.InvalidConfiguration, "fitness function is required")
	}
	if c.TargetLength < 0 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "target length cannot be negative"),
			errors.Fields{"target_length": c.TargetLength})
	}
	if c.PoolSize < 1 {
		return errors.WithFields(
			errors.New(errors.InvalidPoolSize, "pool size must be at least 1"),
			errors.Fields{"pool_size": c.PoolSize})
	}
	if c.MaxAge < 0 {
		return errors.WithFields(
			errors.New(errors.InvalidConfiguration, "max age cannot be negative"),
			errors.Fields{"max_age": c.MaxAge})
	}
	if c.CustomMutate == nil && len(c.GeneSet) < 2 {
		return errors.WithFields(
			errors.New(errors.InvalidGeneSet, "default mutation samples two distinct symbols; gene set needs at least two"),
			errors.Fields{"gene_set_size": len(c.GeneSet)})
	}
	if c.CustomCreate == nil && c.TargetLength > 0 && len(c.GeneSet) == 0 {
		return errors.New(errors.InvalidGeneSet, "gene set is empty and no custom create function was supplied")
	}
	if c.Crossover != nil && c.PoolSize == 1 {
		return errors.New(errors.InvalidConfiguration, "crossover requires a pool of at least two lineages")
	}
	return nil
}
