package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Catalog   bool      `json:"catalog"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// The catalog check is a plain reachability probe against the catalog base URL.
func StartHealthMonitor(redisClient *redis.Client, catalogBaseURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		httpClient := &http.Client{Timeout: 5 * time.Second}

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

			redisOK := false
			if redisClient != nil {
				if _, err := redisClient.Ping(ctx).Result(); err == nil {
					redisOK = true
				}
			}

			catalogOK := false
			if catalogBaseURL != "" {
				req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogBaseURL, nil)
				if err == nil {
					if resp, err := httpClient.Do(req); err == nil {
						resp.Body.Close()
						catalogOK = resp.StatusCode < http.StatusInternalServerError
					}
				}
			}
			cancel()

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:     redisOK,
				Catalog:   catalogOK,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}
