package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOutput captures entries for inspection.
type memoryOutput struct {
	entries []LogEntry
}

func (m *memoryOutput) Write(e LogEntry) error {
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryOutput) Sync() error  { return nil }
func (m *memoryOutput) Close() error { return nil }

func TestSeverityFiltering(t *testing.T) {
	out := &memoryOutput{}
	logger := NewLogger(Config{Severity: WARN, Outputs: []Output{out}})

	ctx := context.Background()
	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Len(t, out.entries, 2)
	assert.Equal(t, WARN, out.entries[0].Severity)
	assert.Equal(t, "warn message", out.entries[0].Message)
	assert.Equal(t, ERROR, out.entries[1].Severity)
}

func TestMessageFormattingAndCaller(t *testing.T) {
	out := &memoryOutput{}
	logger := NewLogger(Config{Severity: DEBUG, Outputs: []Output{out}})

	logger.Info(context.Background(), "generation %d improved to %v", 12, 7)

	require.Len(t, out.entries, 1)
	entry := out.entries[0]
	assert.Equal(t, "generation 12 improved to 7", entry.Message)
	assert.Equal(t, "logger_test.go", entry.File)
	assert.NotZero(t, entry.Line)
	assert.NotZero(t, entry.Time)
}

func TestContextAnnotations(t *testing.T) {
	out := &memoryOutput{}
	logger := NewLogger(Config{Severity: DEBUG, Outputs: []Output{out}})

	ctx := WithGeneration(context.Background(), 42)
	ctx = WithStrategy(ctx, "crossover")
	logger.Info(ctx, "improved")

	require.Len(t, out.entries, 1)
	assert.Equal(t, uint64(42), out.entries[0].Generation)
	assert.Equal(t, "crossover", out.entries[0].Strategy)
}

func TestDefaultFields(t *testing.T) {
	out := &memoryOutput{}
	logger := NewLogger(Config{
		Severity:      DEBUG,
		Outputs:       []Output{out},
		DefaultFields: map[string]interface{}{"run": "test"},
	})

	logger.Info(context.Background(), "seeded")

	require.Len(t, out.entries, 1)
	assert.Equal(t, "test", out.entries[0].Fields["run"])
}

func TestImprovementHelper(t *testing.T) {
	out := &memoryOutput{}
	logger := NewLogger(Config{Severity: INFO, Outputs: []Output{out}})

	logger.Improvement(context.Background(), 17, "mutate", 2)

	require.Len(t, out.entries, 1)
	assert.Contains(t, out.entries[0].Message, "fitness=17")
	assert.Contains(t, out.entries[0].Message, "strategy=mutate")
}

func TestGlobalLogger(t *testing.T) {
	custom := NewLogger(Config{Severity: ERROR, Outputs: []Output{&memoryOutput{}}})
	SetLogger(custom)
	assert.Same(t, custom, GetLogger())
}

func TestGetGenerationAbsent(t *testing.T) {
	_, ok := GetGeneration(context.Background())
	assert.False(t, ok)
	_, ok = GetStrategy(context.Background())
	assert.False(t, ok)
}
