// Package images is the client for the external image lookup service:
// query string in, image bytes out.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound — по запросу не нашлось ни одной картинки.
var ErrNotFound = errors.New("images: not found")

type Provider interface {
	Fetch(ctx context.Context, query string) ([]byte, error)
}

type Client struct {
	BaseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) Fetch(ctx context.Context, query string) ([]byte, error) {
	u := c.BaseURL + "?q=" + url.QueryEscape(query) + "&limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("images: status %d: %s", resp.StatusCode, string(b))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}
