package fetch

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/aatrey56/fpl-monthly-standings/internal/store"
)

const DefaultBaseURL = "https://fantasy.premierleague.com/api"

var (
	// ErrStatus marks a non-200 upstream response.
	ErrStatus = errors.New("unexpected upstream status")
	// ErrMalformed marks a body that does not meet the expected shape.
	ErrMalformed = errors.New("malformed upstream payload")
)

type Client struct {
	HTTP      *http.Client
	Cache     *store.RunCache
	BaseURL   string
	UserAgent string
	Limiter   *rate.Limiter
	Log       logrus.FieldLogger
	UseCache  bool
	// MaxStandingsPages caps how many standings pages one roster fetch walks.
	MaxStandingsPages int
}

func NewClient(cache *store.RunCache) *Client {
	return &Client{
		HTTP:              &http.Client{Timeout: 20 * time.Second},
		Cache:             cache,
		BaseURL:           DefaultBaseURL,
		UserAgent:         "fpl-monthly-standings/1.0",
		Limiter:           rate.NewLimiter(rate.Limit(4), 1),
		Log:               logrus.StandardLogger(),
		UseCache:          true,
		MaxStandingsPages: 20,
	}
}

// SetRate paces requests to rps per second. rps <= 0 disables pacing.
func (c *Client) SetRate(rps float64) {
	if rps <= 0 {
		c.Limiter = nil
		return
	}
	c.Limiter = rate.NewLimiter(rate.Limit(rps), 1)
}

// ForRun returns a copy of c with a fresh, empty cache.
func (c *Client) ForRun() *Client {
	cp := *c
	cp.Cache = store.NewRunCache()
	return &cp
}

// FetchRaw GETs urlPath (like "/fixtures/") once per run and returns the
// decoded body. A non-200 status is returned as ErrStatus; nothing is retried.
func (c *Client) FetchRaw(ctx context.Context, urlPath string) ([]byte, error) {
	if c.UseCache && c.Cache.Exists(urlPath) {
		c.Log.WithField("path", urlPath).Debug("upstream cache hit")
		return c.Cache.ReadRaw(urlPath)
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", urlPath, err)
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", urlPath, err)
	}
	c.Log.WithFields(logrus.Fields{
		"path":     urlPath,
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start).Round(time.Millisecond),
	}).Debug("upstream GET")

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s failed: %d body=%s: %w", urlPath, resp.StatusCode, truncate(body, 200), ErrStatus)
	}

	if c.UseCache {
		c.Cache.WriteRaw(urlPath, body)
	}
	return body, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "br":
		reader = brotli.NewReader(resp.Body)
	}
	return io.ReadAll(reader)
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
