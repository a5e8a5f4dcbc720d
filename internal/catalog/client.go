// Package catalog retrieves official course listings from the university
// scheduling system. Retrieval is the only I/O-bound step around the matching
// engine: it is fallible, retryable, and cached; the engines themselves never
// touch the network.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jpierre/resume-insights/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for schedule requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeInsights/1.0)"

// Error represents a catalog retrieval failure. Retryable distinguishes
// transient failures (timeouts, 5xx) from permanent ones (bad term, 4xx).
type Error struct {
	URL       string
	Message   string
	Retryable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches course listings from the schedule API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// Options configures the catalog client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for schedule requests.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// NewClient creates a catalog client for the given schedule API base URL.
func NewClient(baseURL string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid base URL", Cause: err}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		userAgent:  opts.UserAgent,
	}, nil
}

// scheduleResponse is the wire shape of one schedule API page.
type scheduleResponse struct {
	Courses []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	} `json:"courses"`
}

// FetchTerm retrieves all course listings for an academic term. The term
// identifier is passed through to the API untouched; matching logic never
// inspects it.
func (c *Client) FetchTerm(ctx context.Context, term string) ([]types.CourseRecord, error) {
	return c.fetch(ctx, term, "")
}

// FetchTermPrefixes retrieves listings for several department prefixes
// concurrently and merges them, de-duplicated by course code and sorted for
// stable output.
func (c *Client) FetchTermPrefixes(ctx context.Context, term string, prefixes []string) ([]types.CourseRecord, error) {
	if len(prefixes) == 0 {
		return c.FetchTerm(ctx, term)
	}

	var mu sync.Mutex
	seen := make(map[string]bool)
	var merged []types.CourseRecord

	g, gCtx := errgroup.WithContext(ctx)
	for _, prefix := range prefixes {
		g.Go(func() error {
			courses, err := c.fetch(gCtx, term, prefix)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			for _, course := range courses {
				if !seen[course.Code] {
					seen[course.Code] = true
					merged = append(merged, course)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(merged, func(i, j int) bool { return merged[i].Code < merged[j].Code })
	return merged, nil
}

func (c *Client) fetch(ctx context.Context, term, prefix string) ([]types.CourseRecord, error) {
	requestURL, err := c.buildURL(term, prefix)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{URL: requestURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{URL: requestURL, Message: "HTTP request failed", Retryable: true, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: requestURL, Message: "failed to read response body", Retryable: true, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{
			URL:       requestURL,
			Message:   fmt.Sprintf("HTTP status %d", resp.StatusCode),
			Retryable: resp.StatusCode >= 500,
		}
	}

	return decodeCourses(requestURL, body)
}

func (c *Client) buildURL(term, prefix string) (string, error) {
	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return "", &Error{URL: c.baseURL, Message: "invalid base URL", Cause: err}
	}

	query := parsed.Query()
	query.Set("term", term)
	if prefix != "" {
		query.Set("prefix", prefix)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// decodeCourses accepts both wire shapes the schedule system has used: a
// wrapped {"courses": [...]} object and a bare array.
func decodeCourses(requestURL string, body []byte) ([]types.CourseRecord, error) {
	var wrapped scheduleResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Courses != nil {
		courses := make([]types.CourseRecord, 0, len(wrapped.Courses))
		for _, course := range wrapped.Courses {
			courses = append(courses, types.CourseRecord{Code: course.Code, Name: course.Name})
		}
		return courses, nil
	}

	var bare []types.CourseRecord
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, &Error{URL: requestURL, Message: "failed to decode schedule response", Cause: err}
	}
	return bare, nil
}
