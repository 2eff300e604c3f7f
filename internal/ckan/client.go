package ckan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"investment-dashboard/internal/metrics"
)

// DatastoreURL builds the datastore_search endpoint descriptor. It is fixed
// at process start and never mutated at runtime.
func DatastoreURL(baseURL, resourceID string, limit int) string {
	return fmt.Sprintf("%s/api/3/action/datastore_search?resource_id=%s&limit=%d",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(resourceID), limit)
}

// Client fetches datastore payloads with process-lifetime memoization. A URL
// already fetched in this process is served from the cache without a network
// call, and concurrent callers for the same URL share one in-flight request.
type Client struct {
	httpClient *http.Client
	cache      *memoCache
	group      singleflight.Group
	log        *logrus.Logger
}

// NewClient builds a Client. A nil httpClient falls back to
// http.DefaultClient: no retry, no timeout beyond the transport default.
func NewClient(httpClient *http.Client, log *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		cache:      newMemoCache(),
		log:        log,
	}
}

// Fetch returns the response body for rawURL, issuing at most one GET per
// distinct URL per process lifetime. Failures wrap ErrAcquire with either a
// *NetworkError or a *StatusError as the cause.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if body, ok := c.cache.get(rawURL); ok {
		metrics.ObserveFetch(metrics.OutcomeCacheHit)
		return body, nil
	}

	v, err, _ := c.group.Do(rawURL, func() (interface{}, error) {
		// A caller that lost the singleflight race may arrive after the
		// winner populated the cache.
		if body, ok := c.cache.get(rawURL); ok {
			metrics.ObserveFetch(metrics.OutcomeCacheHit)
			return body, nil
		}
		body, err := c.fetchOnce(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		c.cache.put(rawURL, body)
		metrics.ObserveFetch(metrics.OutcomeFetched)
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// FetchedAt reports when the payload for rawURL was cached, if it was.
func (c *Client) FetchedAt(rawURL string) (fetchedAt time.Time, ok bool) {
	return c.cache.fetchedAt(rawURL)
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAcquire, &NetworkError{URL: rawURL, Err: err})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveFetch(metrics.OutcomeNetworkError)
		c.log.WithError(err).WithField("url", rawURL).Warn("datastore request failed")
		return nil, fmt.Errorf("%w: %w", ErrAcquire, &NetworkError{URL: rawURL, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveFetch(metrics.OutcomeStatusError)
		c.log.WithFields(logrus.Fields{"url": rawURL, "status": resp.StatusCode}).
			Warn("datastore returned non-success status")
		return nil, fmt.Errorf("%w: %w", ErrAcquire, &StatusError{URL: rawURL, StatusCode: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveFetch(metrics.OutcomeNetworkError)
		return nil, fmt.Errorf("%w: %w", ErrAcquire, &NetworkError{URL: rawURL, Err: err})
	}
	return body, nil
}
