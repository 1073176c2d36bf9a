package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// SearchPath is the tRPC batch endpoint for factory search.
const SearchPath = "/api/trpc/aiAgent.searchFactories"

// DefaultTimeout bounds a single search request.
const DefaultTimeout = 45 * time.Second

// Client posts search queries to the site API.
type Client struct {
	http     *resty.Client
	language string
}

// NewClient creates a search client for baseURL (e.g. https://ifrof.com).
// A zero timeout uses DefaultTimeout.
func NewClient(baseURL, language string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "blogseed-probe")

	return &Client{http: httpClient, language: language}
}

// searchInput is the tRPC batch envelope: {"0":{"json":{...}}}.
type searchInput struct {
	JSON searchParams `json:"json"`
}

type searchParams struct {
	Query    string `json:"query"`
	Language string `json:"language"`
}

// Result records the outcome of one query.
type Result struct {
	Query     string
	RequestID string
	Status    int
	Duration  time.Duration
	Body      string
	Err       error
}

// OK reports a 2xx response.
func (r Result) OK() bool {
	return r.Err == nil && r.Status >= 200 && r.Status < 300
}

// Search runs one query. Transport failures are reported in Result.Err,
// not returned, so callers can carry on with the next query.
func (c *Client) Search(ctx context.Context, query string) Result {
	res := Result{Query: query, RequestID: uuid.NewString()}

	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", res.RequestID).
		SetQueryParam("batch", "1").
		SetBody(map[string]searchInput{
			"0": {JSON: searchParams{Query: query, Language: c.language}},
		}).
		Post(SearchPath)
	res.Duration = time.Since(start)

	if err != nil {
		res.Err = fmt.Errorf("request failed: %w", err)
		return res
	}

	res.Status = resp.StatusCode()
	res.Body = resp.String()
	return res
}
