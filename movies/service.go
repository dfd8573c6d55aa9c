// Package movies, client for the external movie-metadata API.
package movies

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/user/movie-memo-go/config"
)

// Client talks to the external movie-metadata API. It is read-only and
// independent of the resource entities; its failures never enter the storage
// error taxonomy.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new movie API client from the application
// configuration.
func NewClient(cfg *config.MovieAPIConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search queries the API's movie search endpoint and returns one page of
// results unchanged.
func (c *Client) Search(ctx context.Context, query string) (*SearchMovieResult, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	searchURL := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("movie search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("movie API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result SearchMovieResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return &result, nil
}
