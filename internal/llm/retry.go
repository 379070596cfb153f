package llm

import "fmt"

// RetryConfig configures bounded retry. Attempts run back to back with no
// delay between them.
type RetryConfig struct {
	MaxRetries int
	OnRetry    func(attempt int, err error)
}

// Retry calls fn until it succeeds or MaxRetries attempts have failed.
// attempt is 1-based. The error of the last attempt is wrapped in the
// returned error.
func Retry(cfg RetryConfig, fn func(attempt int) error) error {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	var err error
	for attempt := 1; attempt <= cfg.MaxRetries; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if attempt < cfg.MaxRetries && cfg.OnRetry != nil {
			cfg.OnRetry(attempt, err)
		}
	}
	return fmt.Errorf("max retries (%d) exceeded: %w", cfg.MaxRetries, err)
}
