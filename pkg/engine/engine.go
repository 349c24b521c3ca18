// Package engine implements a generic evolutionary search over fixed-length
// genomes drawn from a finite alphabet. A pool of competing lineages evolves
// through mutation and optional crossover; an aging rule lets exhausted
// lineages either keep a novel-looking weak child or restart from the best
// known point. The externally observed sequence of bests is strictly
// improving.
package engine

import (
	"cmp"
	"context"

	"github.com/andrei0929/genetic-go/pkg/core"
	"github.com/andrei0929/genetic-go/pkg/logging"
)

// Engine drives the improvement stream until the optimal fitness is
// reached.
type Engine[G comparable, F cmp.Ordered] struct {
	cfg    Config[G, F]
	stream *Stream[G, F]
	logger *logging.Logger
}

// New validates the configuration and builds an engine around a fresh
// improvement stream.
func New[G comparable, F cmp.Ordered](cfg Config[G, F]) (*Engine[G, F], error) {
	stream, err := NewStream(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine[G, F]{
		cfg:    stream.cfg,
		stream: stream,
		logger: logging.GetLogger(),
	}, nil
}

// Stream exposes the underlying improvement stream for callers that want
// to drive iteration themselves.
func (e *Engine[G, F]) Stream() *Stream[G, F] {
	return e.stream
}

// Run pulls improvements, reporting each through the configured callback,
// and returns the first chromosome whose fitness reaches or exceeds the
// configured optimum. With aging disabled and an unreachable optimum it
// runs until the context is done.
func (e *Engine[G, F]) Run(ctx context.Context) (*core.Chromosome[G, F], error) {
	for {
		best, err := e.stream.Next(ctx)
		if err != nil {
			return nil, err
		}

		lctx := logging.WithGeneration(ctx, e.stream.Generation())
		lctx = logging.WithStrategy(lctx, best.Strategy.String())
		e.logger.Improvement(lctx, best.Fitness, best.Strategy.String(), best.Age)

		if e.cfg.OnImprovement != nil {
			e.cfg.OnImprovement(best)
		}
		if best.Fitness >= e.cfg.OptimalFitness {
			e.logger.Info(lctx, "optimal fitness reached: %v", best.Fitness)
			return best, nil
		}
	}
}
