package l10n

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

//go:generate mockgen -source=$GOFILE -package mock_l10n -destination=test/mock/$GOFILE

// Fetcher retrieves remote resources: the translation build and flag icons.
type Fetcher interface {
	// Get opens url for reading. size is -1 when the server does not announce it.
	Get(ctx context.Context, url string) (body io.ReadCloser, size int64, err error)
}

// HTTPFetcher is a Fetcher over plain HTTP(S).
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher returns a fetcher using http.DefaultClient.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: http.DefaultClient}
}

// Get issues a GET request. Any non-2xx status is an error.
func (f *HTTPFetcher) Get(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, resp.ContentLength, nil
}
