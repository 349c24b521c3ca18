package engine

import (
	"cmp"
	"math"
	"math/rand"
	"sort"
)

// decision is the outcome of weighing a child against its parent's slot.
type decision int

const (
	keepParent decision = iota // slot unchanged, retry next cycle
	adoptChild                 // child takes the slot
	adoptBest                  // lineage restarts from a copy of the global best
)

// acceptance implements the aging acceptance rule. The ledger records
// every fitness that was ever a global best; appends only ever add a
// strictly larger value, so it stays ascending by construction.
type acceptance[F cmp.Ordered] struct {
	maxAge int
	ledger []F
	rng    *rand.Rand
}

func (a *acceptance[F]) recordBest(fitness F) {
	a.ledger = append(a.ledger, fitness)
}

// proportionSimilar is the fraction of historical bests at or above the
// given fitness. A high value means the fitness is unremarkable relative
// to history; a low value means it is rare for a below-par candidate.
func (a *acceptance[F]) proportionSimilar(fitness F) float64 {
	index := sort.Search(len(a.ledger), func(i int) bool {
		return a.ledger[i] >= fitness
	})
	difference := len(a.ledger) - index
	return float64(difference) / float64(len(a.ledger))
}

// weigh decides the fate of a pool slot whose freshly produced child fell
// below the parent's fitness. It advances the parent's age while aging is
// enabled; with aging disabled the slot is simply left unchanged.
func (a *acceptance[F]) weigh(parentAge *int, childFitness F) decision {
	if a.maxAge == 0 {
		return keepParent
	}
	*parentAge++
	if *parentAge < a.maxAge {
		return keepParent
	}
	// The lineage is exhausted. Keep the weak child anyway with
	// probability exp(-proportionSimilar): novel-looking fitness values
	// get another chance, common ones restart the lineage from the best
	// known point.
	if a.rng.Float64() < math.Exp(-a.proportionSimilar(childFitness)) {
		return adoptChild
	}
	return adoptBest
}
