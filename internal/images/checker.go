package images

import (
	"context"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultProbeTimeout bounds a single existence probe. The image host
// is slow for misses, so the timeout doubles as the negative answer.
const DefaultProbeTimeout = 5 * time.Second

// Checker probes URLs for existence with a first-byte range request.
// Results are cached for the lifetime of the run so no URL is probed
// twice, even when many products share image heads.
type Checker struct {
	client *resty.Client

	mu    sync.Mutex
	cache map[string]bool
}

// NewChecker creates a checker with the given probe timeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "yumejin-matrixify-export/1.0")

	return &Checker{
		client: client,
		cache:  make(map[string]bool),
	}
}

// Exists reports whether url responds to a range request. Any
// transport or protocol failure counts as absent; probing never fails
// the run.
func (c *Checker) Exists(ctx context.Context, url string) bool {
	c.mu.Lock()
	if exists, ok := c.cache[url]; ok {
		c.mu.Unlock()
		return exists
	}
	c.mu.Unlock()

	exists := c.probe(ctx, url)

	c.mu.Lock()
	c.cache[url] = exists
	c.mu.Unlock()
	return exists
}

// probe fetches the first byte of url. 200 and 304 cover hosts that
// ignore range requests.
func (c *Checker) probe(ctx context.Context, url string) bool {
	res, err := c.client.R().
		SetContext(ctx).
		SetHeader("Range", "bytes=0-0").
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return false
	}
	if body := res.RawBody(); body != nil {
		body.Close()
	}

	switch res.StatusCode() {
	case 200, 206, 304:
		return true
	default:
		return false
	}
}
