package engine

import (
	"github.com/andrei0929/genetic-go/pkg/core"
	"github.com/andrei0929/genetic-go/pkg/utils"
)

// generate produces a fresh chromosome. The default construction samples
// the gene set in batches of distinct symbols, so the whole alphabet is
// spanned before any symbol repeats; this avoids early clustering of
// identical genes.
func (s *Stream[G, F]) generate() *core.Chromosome[G, F] {
	var genes []G
	if s.cfg.CustomCreate != nil {
		genes = s.cfg.CustomCreate()
	} else {
		genes = make([]G, 0, s.cfg.TargetLength)
		for len(genes) < s.cfg.TargetLength {
			sampleSize := s.cfg.TargetLength - len(genes)
			if sampleSize > len(s.cfg.GeneSet) {
				sampleSize = len(s.cfg.GeneSet)
			}
			genes = append(genes, utils.SampleDistinct(s.rng, s.cfg.GeneSet, sampleSize)...)
		}
	}
	return core.NewChromosome(genes, s.cfg.Fitness(genes), core.StrategyCreate)
}

// mutate produces a child from a single parent. The default operator
// rewrites one random position; drawing two distinct symbols guarantees
// the position actually changes value. A custom mutation may transform the
// copy to any extent.
func (s *Stream[G, F]) mutate(parent *core.Chromosome[G, F]) *core.Chromosome[G, F] {
	childGenes := make([]G, len(parent.Genes))
	copy(childGenes, parent.Genes)

	switch {
	case s.cfg.CustomMutate != nil:
		s.cfg.CustomMutate(childGenes)
	case len(childGenes) == 0:
		// Empty genome, nothing to rewrite.
	default:
		index := s.rng.Intn(len(childGenes))
		pair := utils.SampleDistinct(s.rng, s.cfg.GeneSet, 2)
		if pair[0] == childGenes[index] {
			childGenes[index] = pair[1]
		} else {
			childGenes[index] = pair[0]
		}
	}

	return core.NewChromosome(childGenes, s.cfg.Fitness(childGenes), core.StrategyMutate)
}

// crossover combines the parent at index with a donor drawn uniformly from
// the pool, advancing cyclically past the parent itself. If the crossover
// function signals that the two genomes are indistinguishable, the donor's
// slot is refreshed with a brand-new chromosome and the iteration degrades
// to a plain mutation of the parent.
func (s *Stream[G, F]) crossover(parent *core.Chromosome[G, F], index int) *core.Chromosome[G, F] {
	donorIndex := s.rng.Intn(s.pool.size())
	if donorIndex == index {
		donorIndex = (donorIndex + 1) % s.pool.size()
	}
	donor := s.pool.at(donorIndex)

	// The callback receives copies; pool genomes must never leak out.
	parentGenes := make([]G, len(parent.Genes))
	copy(parentGenes, parent.Genes)
	donorGenes := make([]G, len(donor.Genes))
	copy(donorGenes, donor.Genes)

	childGenes := s.cfg.Crossover(parentGenes, donorGenes)
	if childGenes == nil {
		s.pool.replace(donorIndex, s.generate())
		return s.mutate(parent)
	}
	return core.NewChromosome(childGenes, s.cfg.Fitness(childGenes), core.StrategyCrossover)
}

// newChild applies the strategy selector: uniform among the enabled
// operators. Create never competes here; it only seeds the pool and
// refreshes stale donors inside crossover.
func (s *Stream[G, F]) newChild(parent *core.Chromosome[G, F], index int) *core.Chromosome[G, F] {
	if s.cfg.Crossover == nil {
		return s.mutate(parent)
	}
	if s.rng.Intn(2) == 0 {
		return s.mutate(parent)
	}
	return s.crossover(parent, index)
}
