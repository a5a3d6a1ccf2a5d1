// Package geo resolves IP addresses through an external HTTP geolocation
// service. Lookups are rate limited and guarded by a circuit breaker; the
// fraud detector treats every error as "location unknown".
package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"promotrack/internal/config/configs"
	"promotrack/internal/core/domain"
	"promotrack/internal/metrics"
)

const breakerName = "geo-lookup"

// ErrRateLimited is returned when the outgoing lookup budget is exhausted.
var ErrRateLimited = errors.New("geo: rate limited")

type lookupResponse struct {
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
}

// Client implements port.Geolocator.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	cb      *gobreaker.CircuitBreaker[*domain.Geo]
	logger  *slog.Logger
}

// NewClient creates a client for the service at cfg.URL. The IP is appended
// to the URL path. A 404 means the service knows nothing about the IP.
func NewClient(cfg configs.Geo, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("geo: invalid url %q", cfg.URL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 150 * time.Millisecond
	}
	if cfg.BreakerFailures == 0 {
		cfg.BreakerFailures = 5
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = 30 * time.Second
	}
	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	cb := gobreaker.NewCircuitBreaker[*domain.Geo](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state transition",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Client{
		base:    base,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, burst),
		cb:      cb,
		logger:  logger,
	}, nil
}

// Locate returns the location of ip, or nil when the service does not know
// it.
func (c *Client) Locate(ctx context.Context, ip string) (*domain.Geo, error) {
	if !c.limiter.Allow() {
		metrics.GeoLookupsTotal.WithLabelValues("rejected").Inc()
		return nil, ErrRateLimited
	}
	geo, err := c.cb.Execute(func() (*domain.Geo, error) {
		return c.lookup(ctx, ip)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.GeoLookupsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	case err != nil:
		metrics.GeoLookupsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	metrics.GeoLookupsTotal.WithLabelValues("success").Inc()
	return geo, nil
}

func (c *Client) lookup(ctx context.Context, ip string) (*domain.Geo, error) {
	u := c.base.JoinPath(url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geo lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("geo lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return nil, fmt.Errorf("geo lookup: decode: %w", err)
	}
	country := body.CountryCode
	if country == "" {
		country = body.Country
	}
	if country == "" {
		return nil, nil
	}
	return &domain.Geo{Country: strings.ToUpper(country), City: body.City}, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
