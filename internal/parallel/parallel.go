// Package parallel splits index ranges into disjoint chunks and runs them concurrently.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Maximum number of concurrent goroutines.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 1 << 14,
	}
}

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Ranges partitions [0, n) into contiguous, non-overlapping chunks.
// Returns a single range when parallelism is disabled or n is too small,
// and nil when n <= 0.
func Ranges(n int, cfg Config) []Range {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return []Range{{0, n}}
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	out := make([]Range, 0, (n+chunkSize-1)/chunkSize)
	for start := 0; start < n; start += chunkSize {
		out = append(out, Range{start, min(start+chunkSize, n)})
	}
	return out
}

// ForRange calls f once per chunk of [0, n). Chunks run concurrently, at most
// cfg.NumWorkers at a time. The first error cancels ctx for the remaining
// chunks and is returned.
func ForRange(ctx context.Context, n int, f func(ctx context.Context, r Range) error, cfg Config) error {
	ranges := Ranges(n, cfg)
	if len(ranges) <= 1 {
		// Sequential fallback.
		for _, r := range ranges {
			if err := f(ctx, r); err != nil {
				return err
			}
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.NumWorkers)
	for _, r := range ranges {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(ctx, r)
		})
	}
	return g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	_ = ForRange(context.Background(), n, func(_ context.Context, r Range) error {
		for i := r.Start; i < r.End; i++ {
			f(i)
		}
		return nil
	}, cfg)
}
