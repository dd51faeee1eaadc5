package ratelimit

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(key string, config RateLimitConfig) (bool, error)
	Reset(key string) error
}

// NoopRateLimiter admits everything. Used when redis is disabled by
// configuration.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() RateLimiter {
	return &NoopRateLimiter{}
}

func (l *NoopRateLimiter) Allow(string, RateLimitConfig) (bool, error) {
	return true, nil
}

func (l *NoopRateLimiter) Reset(string) error {
	return nil
}
