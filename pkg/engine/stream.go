package engine

import (
	"cmp"
	"context"
	"math/rand"

	"github.com/andrei0929/genetic-go/pkg/core"
	"github.com/andrei0929/genetic-go/pkg/errors"
	"github.com/andrei0929/genetic-go/pkg/logging"
)

// Stream is the pull-based sequence of global-best chromosomes. Each call
// to Next runs as many internal iterations as it takes to produce a new
// best; all loop state lives in the stream's own fields, so suspension is
// simply returning between pulls.
//
// The stream is infinite and non-restartable. It is single-threaded by
// contract: no locking, no background work, cancellation is just the
// consumer passing a done context or ceasing to pull.
type Stream[G comparable, F cmp.Ordered] struct {
	cfg    Config[G, F]
	rng    *rand.Rand
	pool   *parentPool[G, F]
	accept *acceptance[F]
	best   *core.Chromosome[G, F]
	gen    uint64
	logger *logging.Logger
}

// NewStream validates the configuration and builds an unseeded stream.
// Seeding happens lazily on the first pulls.
func NewStream[G comparable, F cmp.Ordered](cfg Config[G, F]) (*Stream[G, F], error) {
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Stream[G, F]{
		cfg:    cfg,
		rng:    cfg.Rand,
		pool:   newParentPool[G, F](cfg.PoolSize),
		accept: &acceptance[F]{maxAge: cfg.MaxAge, rng: cfg.Rand},
		logger: logging.GetLogger(),
	}, nil
}

// Generation returns the number of main-loop iterations completed so far.
// Pool seeding does not count.
func (s *Stream[G, F]) Generation() uint64 {
	return s.gen
}

// Best returns a copy of the current global best, or nil before the first
// pull.
func (s *Stream[G, F]) Best() *core.Chromosome[G, F] {
	if s.best == nil {
		return nil
	}
	return s.best.Clone()
}

// Next produces the next chromosome that sets a new global best. The
// returned chromosome is a private copy; the pool keeps its own.
//
// The very first pull emits the seed parent unconditionally. While the
// pool is still filling, each pull adds freshly created parents and emits
// any that beat the best by chance. After that, Next loops until an
// improvement appears — with aging disabled and an unreachable optimum
// that can be forever, so callers who need a bound should pass a
// cancellable context.
func (s *Stream[G, F]) Next(ctx context.Context) (*core.Chromosome[G, F], error) {
	if s.best == nil {
		first := s.generate()
		s.pool.add(first)
		s.best = first
		s.accept.recordBest(first.Fitness)
		s.logger.Debug(ctx, "seeded first lineage: fitness=%v", first.Fitness)
		return first.Clone(), nil
	}

	for s.pool.size() < s.cfg.PoolSize {
		if err := errors.CheckContext(ctx, "pool seeding"); err != nil {
			return nil, err
		}
		parent := s.generate()
		s.pool.add(parent)
		if parent.Fitness > s.best.Fitness {
			s.best = parent
			s.accept.recordBest(parent.Fitness)
			return parent.Clone(), nil
		}
	}

	for {
		if err := errors.CheckContext(ctx, "improvement search"); err != nil {
			return nil, err
		}
		s.gen++
		pindex := s.pool.advance()
		parent := s.pool.at(pindex)
		child := s.newChild(parent, pindex)

		if parent.Fitness > child.Fitness {
			switch s.accept.weigh(&parent.Age, child.Fitness) {
			case keepParent:
				// Retry with a new child next cycle.
			case adoptChild:
				s.pool.replace(pindex, child)
			case adoptBest:
				restart := s.best.Clone()
				restart.Age = 0
				s.pool.replace(pindex, restart)
				s.logger.Debug(ctx, "lineage %d restarted from global best (fitness=%v)", pindex, restart.Fitness)
			}
			continue
		}

		if child.Fitness == parent.Fitness {
			// Lateral move: accept, but lineage aging continues.
			child.Age = parent.Age + 1
			s.pool.replace(pindex, child)
			continue
		}

		child.Age = 0
		s.pool.replace(pindex, child)
		if child.Fitness > s.best.Fitness {
			s.best = child
			s.accept.recordBest(child.Fitness)
			return child.Clone(), nil
		}
	}
}
