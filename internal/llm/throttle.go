package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// ThrottledGenerator spaces calls to Inner according to Limiter.
type ThrottledGenerator struct {
	Inner   Generator
	Limiter *rate.Limiter
}

// NewThrottledGenerator wraps inner so that at most perMinute requests start
// per minute. perMinute <= 0 returns inner unchanged.
func NewThrottledGenerator(inner Generator, perMinute int) Generator {
	if perMinute <= 0 {
		return inner
	}
	return &ThrottledGenerator{
		Inner:   inner,
		Limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

// Generate waits for a token and delegates to the inner generator.
func (t *ThrottledGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := t.Limiter.Wait(ctx); err != nil {
		return "", err
	}
	return t.Inner.Generate(ctx, req)
}
