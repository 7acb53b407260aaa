// Package library talks to the companion library service: mistake
// analysis listings, per-knowledge-point stats, and reading briefs
// matched against subscription keywords.
package library

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL points at a locally running library service.
const DefaultBaseURL = "http://localhost:8000"

// Client is a thin HTTP client for the library service. Calls take a
// context for cancellation; there is no retry, a failed call surfaces
// its error and leaves no partial state.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// NewClient creates a library client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AnalysisItem is one entry of the mistake-analysis listing.
type AnalysisItem struct {
	ID        string   `json:"id"`
	Question  string   `json:"question"`
	Answer    string   `json:"answer"`
	Analysis  string   `json:"analysis"`
	Knowledge []string `json:"knowledge"`
	CreatedAt string   `json:"createdAt"`
}

// AnalysisPage is one page of analysis items.
type AnalysisPage struct {
	Items []AnalysisItem `json:"items"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int            `json:"total"`
}

// KnowledgeStats summarizes stored history for one knowledge point.
type KnowledgeStats struct {
	Knowledge string  `json:"knowledge"`
	Total     int     `json:"total"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// Brief is one reading brief returned by a keyword query.
type Brief struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags"`
	ReadTime  string   `json:"readTime"`
	Source    string   `json:"source"`
	SourceURL string   `json:"sourceUrl"`
	CreatedAt string   `json:"createdAt"`
	Keywords  []string `json:"keywords,omitempty"`
}

// FetchAnalysis lists mistake analyses, paginated.
func (c *Client) FetchAnalysis(ctx context.Context, page, size int) (*AnalysisPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var out AnalysisPage
	if err := c.getJSON(ctx, "/api/analysis", q, &out); err != nil {
		return nil, fmt.Errorf("fetch analysis: %w", err)
	}
	return &out, nil
}

// FetchKnowledgeStats returns stored stats for one knowledge point.
func (c *Client) FetchKnowledgeStats(ctx context.Context, knowledge string) (*KnowledgeStats, error) {
	q := url.Values{}
	q.Set("knowledge", knowledge)

	var out KnowledgeStats
	if err := c.getJSON(ctx, "/api/knowledge/stats", q, &out); err != nil {
		return nil, fmt.Errorf("fetch knowledge stats: %w", err)
	}
	return &out, nil
}

// QueryBriefs fetches reading briefs matching the given keywords.
func (c *Client) QueryBriefs(ctx context.Context, keywords []string, limit int) ([]Brief, error) {
	body, err := json.Marshal(map[string]any{
		"keywords": keywords,
		"limit":    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("encode briefs query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/library/briefs/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("query briefs: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query briefs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query briefs: request failed (%d)", resp.StatusCode)
	}

	var out struct {
		Items []Brief `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("query briefs: decode response: %w", err)
	}
	return out.Items, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed (%d)", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
