package ratelimiter

import (
	"testing"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestAllowUpToLimit(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 3,
		TimeFrame:            time.Minute,
		Enabled:              true,
	}, nil)

	for i := 0; i < 3; i++ {
		allowed, _ := rl.Allow("1.2.3.4")
		assert.True(t, allowed)
	}

	allowed, retryAfter := rl.Allow("1.2.3.4")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, retryAfter)

	// A different client has its own counter.
	allowed, _ = rl.Allow("5.6.7.8")
	assert.True(t, allowed)
}

func TestWindowResets(t *testing.T) {
	rl := NewRateLimiter(config.RateLimiterConfig{
		RequestsPerTimeFrame: 1,
		TimeFrame:            20 * time.Millisecond,
		Enabled:              true,
	}, nil)

	allowed, _ := rl.Allow("1.2.3.4")
	assert.True(t, allowed)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = rl.Allow("1.2.3.4")
	assert.True(t, allowed)
}
