package images

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxFetchSize = 10 * 1024 * 1024

type Fetcher struct {
	Client  *http.Client
	MaxSize int64
}

// NewFetcher returns a Fetcher whose requests never outlive timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		Client:  &http.Client{Timeout: timeout},
		MaxSize: maxFetchSize,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if int64(len(data)) > f.MaxSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrFetch, url, f.MaxSize)
	}

	img, err := Decode(data, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return img, nil
}
