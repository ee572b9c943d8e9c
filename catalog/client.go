package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/gomi-schedule/config"
)

// Client queries a CKAN catalog and downloads its resources.
type Client struct {
	httpClient *http.Client
	cfg        config.CatalogConfig
	download   config.DownloadConfig
}

// NewClient creates a catalog client. A nil httpClient uses a fresh http.Client.
func NewClient(httpClient *http.Client, cfg config.CatalogConfig, download config.DownloadConfig) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient, cfg: cfg, download: download}
}

// SearchURL returns the package_search endpoint this client queries.
func (c *Client) SearchURL() string {
	return c.cfg.SearchURL
}

// Search returns the best package for query. The configured search term is
// appended to the query and up to cfg.Rows candidates are requested.
func (c *Client) Search(ctx context.Context, query string) (Package, error) {
	ctx, cancel := withTimeoutMS(ctx, c.cfg.TimeoutMS)
	defer cancel()

	q := url.Values{}
	q.Set("q", joinQuery(query, c.cfg.SearchTerm))
	q.Set("rows", strconv.Itoa(c.cfg.Rows))

	resp, err := c.get(ctx, c.cfg.SearchURL+"?"+q.Encode(), "application/json")
	if err != nil {
		return Package{}, fmt.Errorf("failed to search catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Package{}, &StatusError{Op: OpSearch, StatusCode: resp.StatusCode}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return Package{}, fmt.Errorf("failed to decode search response: %w", err)
	}
	if !sr.Success || len(sr.Result.Results) == 0 {
		return Package{}, ErrNoDatasetFound
	}
	return pickPackage(sr.Result.Results, c.cfg.TitleHint), nil
}

// Download fetches the raw bytes of a resource, bounded by download.maxBytes.
func (c *Client) Download(ctx context.Context, resourceURL string) ([]byte, error) {
	ctx, cancel := withTimeoutMS(ctx, c.download.TimeoutMS)
	defer cancel()

	resp, err := c.get(ctx, resourceURL, "*/*")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", resourceURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: OpDownload, StatusCode: resp.StatusCode}
	}

	limit := c.download.MaxBytes
	if limit <= 0 {
		return io.ReadAll(resp.Body)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", resourceURL, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("resource exceeds %d bytes", limit)
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, rawURL, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	return c.httpClient.Do(req)
}

func joinQuery(query, term string) string {
	if term == "" {
		return query
	}
	return query + " " + term
}

func withTimeoutMS(ctx context.Context, ms int) (context.Context, context.CancelFunc) {
	if ms <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(ms)*time.Millisecond)
}
