package engine

import (
	"cmp"

	"github.com/andrei0929/genetic-go/pkg/core"
)

// parentPool holds the fixed-size set of concurrently evolving lineages.
// Once seeded it never grows or shrinks; slot contents are replaced in
// place by the acceptance logic.
//
// The cursor visits slots in reverse cyclic order: 1, 0, size-1, size-2,
// ..., matching the traversal of the reference algorithm.
type parentPool[G comparable, F cmp.Ordered] struct {
	slots  []*core.Chromosome[G, F]
	cursor int
}

func newParentPool[G comparable, F cmp.Ordered](capacity int) *parentPool[G, F] {
	return &parentPool[G, F]{
		slots:  make([]*core.Chromosome[G, F], 0, capacity),
		cursor: 1,
	}
}

func (p *parentPool[G, F]) add(c *core.Chromosome[G, F]) {
	p.slots = append(p.slots, c)
}

func (p *parentPool[G, F]) size() int {
	return len(p.slots)
}

func (p *parentPool[G, F]) at(i int) *core.Chromosome[G, F] {
	return p.slots[i]
}

func (p *parentPool[G, F]) replace(i int, c *core.Chromosome[G, F]) {
	p.slots[i] = c
}

// advance moves the cursor one step backwards, wrapping to the last slot,
// and returns the new position.
func (p *parentPool[G, F]) advance() int {
	if p.cursor > 0 {
		p.cursor--
	} else {
		p.cursor = len(p.slots) - 1
	}
	return p.cursor
}
