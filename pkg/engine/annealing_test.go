package engine

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/andrei0929/genetic-go/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProportionSimilar(t *testing.T) {
	a := &acceptance[int]{ledger: []int{3, 5, 8}}

	tests := []struct {
		name    string
		fitness int
		want    float64
	}{
		{"below all history", 1, 1.0},
		{"between entries", 4, 2.0 / 3.0},
		{"equal to an entry", 8, 1.0 / 3.0},
		{"above all history", 9, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.proportionSimilar(tt.fitness), 1e-12)
		})
	}
}

func TestWeighWithoutMaxAge(t *testing.T) {
	a := &acceptance[int]{maxAge: 0, ledger: []int{3}}
	age := 0
	assert.Equal(t, keepParent, a.weigh(&age, 1))
	// No age bookkeeping while aging is disabled.
	assert.Equal(t, 0, age)
}

func TestWeighAgesLineageBelowLimit(t *testing.T) {
	a := &acceptance[int]{maxAge: 5, ledger: []int{3, 5, 8}}
	age := 0
	for want := 1; want < 5; want++ {
		assert.Equal(t, keepParent, a.weigh(&age, 1))
		assert.Equal(t, want, age)
	}
}

func TestWeighAnnealingBranch(t *testing.T) {
	// ledger {3,5,8}, child fitness 4: two of three historical bests sit
	// at or above it, so the child survives with probability exp(-2/3).
	threshold := math.Exp(-2.0 / 3.0)

	t.Run("novel child is adopted", func(t *testing.T) {
		a := &acceptance[int]{
			maxAge: 5,
			ledger: []int{3, 5, 8},
			rng:    rand.New(testutil.NewScriptedSource(testutil.Float64Value(threshold - 0.01))),
		}
		age := 4
		assert.Equal(t, adoptChild, a.weigh(&age, 4))
	})

	t.Run("unremarkable child restarts the lineage", func(t *testing.T) {
		a := &acceptance[int]{
			maxAge: 5,
			ledger: []int{3, 5, 8},
			rng:    rand.New(testutil.NewScriptedSource(testutil.Float64Value(threshold + 0.01))),
		}
		age := 4
		assert.Equal(t, adoptBest, a.weigh(&age, 4))
	})
}

// agingStreamConfig builds a search whose mutations always worsen fitness:
// creation yields [1,1,1,0] (fitness 3), every mutation zeroes the genome
// (fitness 0). The optimum is unreachable, so the mutation callback cancels
// the context after enough attempts.
func agingStreamConfig(cancel context.CancelFunc, attempts int, draw float64) Config[int, int] {
	calls := 0
	return Config[int, int]{
		Fitness:        countOnes,
		TargetLength:   4,
		OptimalFitness: 99,
		GeneSet:        []int{0, 1},
		CustomCreate:   func() []int { return []int{1, 1, 1, 0} },
		CustomMutate: func(genes []int) {
			calls++
			if calls > attempts {
				cancel()
			}
			for i := range genes {
				genes[i] = 0
			}
		},
		MaxAge:   2,
		PoolSize: 1,
		Rand:     rand.New(testutil.NewScriptedSource(testutil.Float64Value(draw))),
	}
}

func TestAgingRestartsLineageFromBest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Draw 0.99 always fails the exp(-proportionSimilar) check, so every
	// exhausted lineage restarts from the global best.
	s, err := NewStream(agingStreamConfig(cancel, 10, 0.99))
	require.NoError(t, err)

	first, err := s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, first.Fitness)

	_, err = s.Next(ctx)
	require.Error(t, err)

	// Restart cycle: age 1 (keep), age 2 (restart from best, age 0).
	// Eleven failed attempts end one step into a fresh cycle.
	slot := s.pool.at(0)
	assert.Equal(t, 3, slot.Fitness)
	assert.Equal(t, 1, slot.Age)
	assert.Equal(t, []int{3}, s.accept.ledger)
	assert.Equal(t, 3, s.Best().Fitness)
}

func TestAgingAdoptsNovelWeakChild(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Draw 0.0 always passes the annealing check: the weak child takes
	// the slot once the lineage is exhausted.
	s, err := NewStream(agingStreamConfig(cancel, 10, 0.0))
	require.NoError(t, err)

	first, err := s.Next(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, first.Fitness)

	_, err = s.Next(ctx)
	require.Error(t, err)

	// After adoption every further child is a lateral move (0 == 0), so
	// the lineage keeps aging without further annealing checks: attempts
	// 3..11 raise the age to 9.
	slot := s.pool.at(0)
	assert.Equal(t, 0, slot.Fitness)
	assert.Equal(t, 9, slot.Age)

	// The global best and the ledger are untouched by the adoption.
	assert.Equal(t, []int{3}, s.accept.ledger)
	assert.Equal(t, 3, s.Best().Fitness)
}
