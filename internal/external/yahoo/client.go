// Package yahoo fetches live quotes and daily price history from the
// Yahoo Finance gateway on RapidAPI. It implements contracts.QuoteProvider
// and contracts.HistoryProvider.
package yahoo

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/niveshlabs/nivesh/pkg/config"
	"github.com/niveshlabs/nivesh/pkg/httputil"
	"github.com/niveshlabs/nivesh/pkg/logger"
	"github.com/niveshlabs/nivesh/pkg/redis"
)

const providerName = "yahoo"

// Client talks to the RapidAPI Yahoo Finance gateway.
//
// Retries are disabled: the calling pipelines treat a failed fetch as
// terminal for that symbol and move on. Two limiters guard the gateway:
// an in-process pacer spreads requests evenly, and when Redis is enabled
// a sliding-window limiter enforces the same budget across processes.
type Client struct {
	http  *httputil.Client
	cache *redis.Cache
	cfg   config.YahooConfig
	pacer *rate.Limiter
	log   *logger.Logger
}

// New creates a Yahoo client. With Redis disabled the cache is a no-op and
// the shared limiter admits everything.
func New(cfg *config.Config, log *logger.Logger, redisClient *redis.Client) *Client {
	perMinute := cfg.Yahoo.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = 30
	}

	httpClient := httputil.NewWithTimeout(cfg, log, 15*time.Second).
		DisableRetry().
		WithRateLimiter(redis.NewRateLimiter(redisClient, "nivesh"), redis.RateLimitConfig{
			Key:    "yahoo",
			Limit:  perMinute,
			Window: time.Minute,
		})

	return &Client{
		http:  httpClient,
		cache: redis.NewCache(redisClient, "nivesh"),
		cfg:   cfg.Yahoo,
		pacer: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		log:   log,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"x-rapidapi-key":  c.cfg.APIKey,
		"x-rapidapi-host": c.cfg.APIHost,
	}
}
