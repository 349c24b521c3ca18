package core

import (
	"cmp"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StrategyKind records which reproduction operator produced a chromosome.
// It is provenance only: nothing in the engine branches on it after creation.
type StrategyKind int

const (
	StrategyCreate StrategyKind = iota
	StrategyMutate
	StrategyCrossover
)

// String provides human-readable strategy names.
func (s StrategyKind) String() string {
	switch s {
	case StrategyCreate:
		return "create"
	case StrategyMutate:
		return "mutate"
	case StrategyCrossover:
		return "crossover"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Chromosome is a single candidate solution: a genome plus its evaluated
// fitness, the operator that produced it, and the number of consecutive
// generations its lineage has failed to improve.
//
// Genes and Fitness are never mutated in place; producing different genes
// means constructing a new Chromosome through one of the engine's operators.
// Age is the only mutable field, and only the pool's acceptance logic
// touches it.
type Chromosome[G comparable, F cmp.Ordered] struct {
	ID        string
	Genes     []G
	Fitness   F
	Strategy  StrategyKind
	Age       int
	CreatedAt time.Time
}

// NewChromosome builds a chromosome from already-evaluated genes.
// Age always starts at zero.
func NewChromosome[G comparable, F cmp.Ordered](genes []G, fitness F, strategy StrategyKind) *Chromosome[G, F] {
	return &Chromosome[G, F]{
		ID:        uuid.New().String(),
		Genes:     genes,
		Fitness:   fitness,
		Strategy:  strategy,
		Age:       0,
		CreatedAt: time.Now(),
	}
}

// Clone returns a copy with its own genome slice. The copy keeps the ID:
// it is the same individual, handed out so the caller cannot alias the
// pool's genome.
func (c *Chromosome[G, F]) Clone() *Chromosome[G, F] {
	genes := make([]G, len(c.Genes))
	copy(genes, c.Genes)
	clone := *c
	clone.Genes = genes
	return &clone
}

// String formats the chromosome for logs and improvement displays.
func (c *Chromosome[G, F]) String() string {
	return fmt.Sprintf("fitness=%v age=%d strategy=%s genes=%v", c.Fitness, c.Age, c.Strategy, c.Genes)
}
