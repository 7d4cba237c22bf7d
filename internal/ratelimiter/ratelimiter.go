package ratelimiter

import (
	"sync"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client within a fixed time
// window and rejects once the configured limit is reached.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]int
	limit   int
	window  time.Duration
	Enabled bool
	logger  *zap.SugaredLogger
}

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &FixedWindowRateLimiter{
		clients: make(map[string]int),
		limit:   cfg.RequestsPerTimeFrame,
		window:  cfg.TimeFrame,
		Enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed, and if not, how long until
// the current window resets.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	count, exists := rl.clients[clientID]
	if !exists {
		go rl.resetAfterWindow(clientID)
	}

	if count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client %s", clientID)
		return false, rl.window
	}

	rl.clients[clientID] = count + 1
	return true, 0
}

func (rl *FixedWindowRateLimiter) resetAfterWindow(clientID string) {
	time.Sleep(rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.clients, clientID)
}
