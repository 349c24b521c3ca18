package engine

import (
	"testing"

	"github.com/andrei0929/genetic-go/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolReverseCyclicTraversal(t *testing.T) {
	p := newParentPool[int, int](4)
	for i := 0; i < 4; i++ {
		p.add(core.NewChromosome([]int{i}, i, core.StrategyCreate))
	}
	require.Equal(t, 4, p.size())

	// The cursor starts conceptually at 1, so the first visit is slot 0,
	// then it wraps backwards through the pool.
	want := []int{0, 3, 2, 1, 0, 3, 2, 1, 0}
	var got []int
	for range want {
		got = append(got, p.advance())
	}
	assert.Equal(t, want, got)
}

func TestPoolSingleSlotTraversal(t *testing.T) {
	p := newParentPool[int, int](1)
	p.add(core.NewChromosome([]int{1}, 1, core.StrategyCreate))

	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, p.advance())
	}
}

func TestPoolReplace(t *testing.T) {
	p := newParentPool[int, int](2)
	a := core.NewChromosome([]int{0}, 0, core.StrategyCreate)
	b := core.NewChromosome([]int{1}, 1, core.StrategyCreate)
	p.add(a)
	p.add(b)

	c := core.NewChromosome([]int{2}, 2, core.StrategyMutate)
	p.replace(0, c)
	assert.Same(t, c, p.at(0))
	assert.Same(t, b, p.at(1))
	assert.Equal(t, 2, p.size())
}
