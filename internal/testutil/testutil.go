// Package testutil provides shared test doubles for deterministic engine
// tests.
package testutil

import (
	"github.com/andrei0929/genetic-go/pkg/logging"
)

// ScriptedSource is a rand.Source that replays a fixed sequence of Int63
// values, letting tests pin down exactly what the engine draws. The
// sequence wraps around when exhausted.
type ScriptedSource struct {
	values []int64
	pos    int
}

func NewScriptedSource(values ...int64) *ScriptedSource {
	return &ScriptedSource{values: values}
}

func (s *ScriptedSource) Int63() int64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

func (s *ScriptedSource) Seed(seed int64) {}

// Float64Value converts a desired rand.Float64 draw into the Int63 value
// that produces it. Valid for 0 <= f < 1.
func Float64Value(f float64) int64 {
	return int64(f * (1 << 63))
}

// Quiet installs a global logger that only reports errors, keeping test
// output readable.
func Quiet() {
	logging.SetLogger(logging.NewLogger(logging.Config{
		Severity: logging.ERROR,
		Outputs:  []logging.Output{logging.NewConsoleOutput(true)},
	}))
}
