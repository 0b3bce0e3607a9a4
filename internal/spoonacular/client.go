package spoonacular

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkoski/recipefinder/internal/logging"
)

const (
	// DefaultBaseURL is the public endpoint of the Spoonacular API
	DefaultBaseURL = "https://api.spoonacular.com"

	// APIKeyEnvVar is the environment variable holding the API key
	APIKeyEnvVar = "SPOONACULAR_API_KEY"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultMaxRetries is the default number of retry attempts for failed requests
	DefaultMaxRetries = 3

	// DefaultRetryDelay is the default delay between retry attempts
	DefaultRetryDelay = 1 * time.Second

	// DefaultMaxRetryDelay is the maximum delay for exponential backoff
	DefaultMaxRetryDelay = 30 * time.Second

	// DefaultPageSize is how many recipes a search fetch requests by default
	DefaultPageSize = 10

	// DefaultSimilarCount is how many similar recipes a lookup requests by default
	DefaultSimilarCount = 5
)

// Client is an HTTP client for the Spoonacular recipe API.
//
// All methods return typed *APIError values so callers can degrade
// failures into user-visible messages instead of crashes.
type Client struct {
	// BaseURL of the API (e.g. "https://api.spoonacular.com")
	BaseURL string

	// APIKey sent as the apiKey query parameter on every request
	APIKey string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// MaxRetries is the maximum number of retry attempts for failed requests
	MaxRetries int

	// RetryDelay is the initial delay between retry attempts
	RetryDelay time.Duration

	// MaxRetryDelay is the maximum delay for exponential backoff
	MaxRetryDelay time.Duration

	// UseExponentialBackoff enables exponential backoff for retries
	UseExponentialBackoff bool
}

// NewClient creates a new API client with default settings.
func NewClient(apiKey string) *Client {
	return NewClientWithURL(DefaultBaseURL, apiKey)
}

// NewClientWithURL creates a new client against a custom base URL.
// Used for self-hosted proxies and for tests against httptest servers.
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL:               baseURL,
		APIKey:                apiKey,
		HTTPClient:            &http.Client{Timeout: DefaultTimeout},
		MaxRetries:            DefaultMaxRetries,
		RetryDelay:            DefaultRetryDelay,
		MaxRetryDelay:         DefaultMaxRetryDelay,
		UseExponentialBackoff: true,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// SetRetry configures retry behavior
func (c *Client) SetRetry(maxRetries int, retryDelay time.Duration) {
	c.MaxRetries = maxRetries
	c.RetryDelay = retryDelay
}

// Search queries recipes by free text with pagination.
// count is the page size, offset the zero-based index into the API-side
// result ordering. An empty slice (no error) means the window is past the
// end of the results or the query has no matches.
func (c *Client) Search(query string, count, offset int) ([]RecipeSummary, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(count))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.get("/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, NewParseError("failed to parse search response", err)
	}

	logging.LogSearch(query, offset, count, len(resp.Results))

	return resp.Results, nil
}

// GetDetail fetches the full record for one recipe, including nutrition.
func (c *Client) GetDetail(id int) (*RecipeDetail, error) {
	params := url.Values{}
	params.Set("includeNutrition", "true")

	body, err := c.get(fmt.Sprintf("/recipes/%d/information", id), params)
	if err != nil {
		return nil, err
	}

	var detail RecipeDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, NewParseError("failed to parse recipe detail", err)
	}

	return &detail, nil
}

// GetSimilar fetches up to count recipes similar to the given recipe id.
func (c *Client) GetSimilar(id, count int) ([]RecipeSummary, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(count))

	body, err := c.get(fmt.Sprintf("/recipes/%d/similar", id), params)
	if err != nil {
		return nil, err
	}

	// The similar endpoint returns a bare JSON array, not an envelope.
	var results []RecipeSummary
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, NewParseError("failed to parse similar recipes response", err)
	}

	return results, nil
}

// get performs a GET request with the retry loop applied.
func (c *Client) get(endpoint string, params url.Values) ([]byte, error) {
	var lastErr error
	currentDelay := c.RetryDelay

	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(currentDelay)

			if c.UseExponentialBackoff {
				currentDelay *= 2
				if currentDelay > c.MaxRetryDelay {
					currentDelay = c.MaxRetryDelay
				}
			}
		}

		body, err := c.getAttempt(endpoint, params)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, lastErr
}

// getAttempt performs a single GET request against the API.
func (c *Client) getAttempt(endpoint string, params url.Values) ([]byte, error) {
	if c.APIKey == "" {
		return nil, NewAuthError("no API key configured (set " + APIKeyEnvVar + ")")
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("apiKey", c.APIKey)

	reqURL := c.BaseURL + endpoint + "?" + query.Encode()

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, NewNetworkError("failed to create request", err)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		classified := ClassifyNetworkError(err, endpoint)
		classified.Message = "request failed"
		return nil, classified
	}
	defer func() { _ = resp.Body.Close() }()

	logging.LogAPIRequest(endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, NewAuthError("API rejected the key (check credentials)")
	case resp.StatusCode == http.StatusPaymentRequired:
		return nil, NewQuotaError("daily request quota exhausted")
	case resp.StatusCode == http.StatusNotFound:
		return nil, NewNotFoundError(fmt.Sprintf("no resource at %s", endpoint))
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(resp.Body)
		return nil, NewHTTPError(resp.StatusCode,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, truncate(string(body), 200)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", err)
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
