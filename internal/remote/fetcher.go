package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrUnexpectedStatus error = errors.New("unexpected response status")
	ErrTooLarge         error = errors.New("response body too large")
)

// Fetcher downloads remote resources with a per call timeout and a cap on the
// body size. It never retries.
type Fetcher struct {
	client   HTTPClient
	timeout  time.Duration
	maxBytes int64
}

func NewFetcher(client HTTPClient, timeout time.Duration, maxBytes int64) *Fetcher {
	return &Fetcher{
		client:   client,
		timeout:  timeout,
		maxBytes: maxBytes,
	}
}

// Fetch issues a GET for rawURL. Statuses outside 2xx are reported as
// ErrUnexpectedStatus and bodies above the size cap as ErrTooLarge.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Resource{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Resource{}, fmt.Errorf("get %q: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Resource{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if resp.ContentLength > f.maxBytes {
		return Resource{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return Resource{}, fmt.Errorf("read body: %w", err)
	}

	if int64(len(body)) > f.maxBytes {
		return Resource{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, f.maxBytes)
	}

	return Resource{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
