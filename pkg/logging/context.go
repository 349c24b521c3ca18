package logging

import "context"

type contextKey string

const (
	generationKey contextKey = "generation"
	strategyKey   contextKey = "strategy"
)

// WithGeneration annotates the context with the current iteration count so
// every log entry written under it carries the generation number.
func WithGeneration(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, generationKey, gen)
}

// GetGeneration extracts the generation number from the context.
func GetGeneration(ctx context.Context) (uint64, bool) {
	gen, ok := ctx.Value(generationKey).(uint64)
	return gen, ok
}

// WithStrategy annotates the context with the reproduction operator in play.
func WithStrategy(ctx context.Context, strategy string) context.Context {
	return context.WithValue(ctx, strategyKey, strategy)
}

// GetStrategy extracts the strategy tag from the context.
func GetStrategy(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(strategyKey).(string)
	return s, ok
}
