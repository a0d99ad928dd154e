package charts

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/couchcryptid/lake-extent-dashboard/internal/observability"
	"github.com/couchcryptid/lake-extent-dashboard/internal/view"
)

// ChartRenderer renders a chart description to markup.
type ChartRenderer interface {
	Render(ctx context.Context, c view.Chart) ([]byte, error)
}

// CachedRenderer wraps a ChartRenderer with an in-memory cache keyed by chart
// ID. Chart content is fixed for the process lifetime, so a zero TTL keeps
// entries forever.
type CachedRenderer struct {
	inner   ChartRenderer
	cache   *gocache.Cache
	metrics *observability.Metrics
}

// NewCachedRenderer creates a cache decorator around a renderer.
func NewCachedRenderer(inner ChartRenderer, ttl time.Duration, metrics *observability.Metrics) *CachedRenderer {
	expiration, cleanup := gocache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration, cleanup = ttl, 2*ttl
	}
	return &CachedRenderer{
		inner:   inner,
		cache:   gocache.New(expiration, cleanup),
		metrics: metrics,
	}
}

func (c *CachedRenderer) Render(ctx context.Context, ch view.Chart) ([]byte, error) {
	key := ch.ChartID()
	if v, ok := c.cache.Get(key); ok {
		c.metrics.ChartCache.WithLabelValues("hit").Inc()
		return v.([]byte), nil
	}
	c.metrics.ChartCache.WithLabelValues("miss").Inc()

	out, err := c.inner.Render(ctx, ch)
	if err != nil {
		// Failures are not cached so a later request can retry.
		return nil, err
	}
	c.cache.Set(key, out, gocache.DefaultExpiration)
	return out, nil
}
