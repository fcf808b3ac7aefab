// Package ratelimit bounds how often a single chat may hit the bot.
package ratelimit

import "context"

// Config sets sliding-window ceilings for one key. A zero window is
// disabled.
type Config struct {
	PerMinute int
	PerHour   int
}

// Limiter reports whether one more request under the key fits the limits.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
