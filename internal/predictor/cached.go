package predictor

import (
	"time"

	"smartspend/internal/cache"
)

// Cached memoizes predictions by raw description. Predictions are pure
// functions of the input for a given bundle, so cached results never go
// stale within a process; the TTL only bounds memory for long-running
// servers.
type Cached struct {
	svc *Service
	lru *cache.LRU[string]
}

func NewCached(svc *Service, maxSize int, ttl time.Duration) *Cached {
	return &Cached{svc: svc, lru: cache.NewLRU[string](maxSize, ttl)}
}

func (c *Cached) Predict(description string) (string, error) {
	if category, ok := c.lru.Get(description); ok {
		return category, nil
	}
	category, err := c.svc.Predict(description)
	if err != nil {
		return "", err
	}
	c.lru.Set(description, category)
	return category, nil
}
