package pageviews

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/akarpov91/traffic-analytics/internal/common"
)

const (
	// DefaultBaseURL is the Wikimedia REST metrics root.
	DefaultBaseURL = "https://wikimedia.org/api/rest_v1"

	// apiDayLayout is the upstream date format: YYYYMMDD for URL segments,
	// with a trailing hour "00" on response timestamps.
	apiDayLayout       = "20060102"
	apiTimestampLayout = "2006010200"
)

// Client fetches daily per-article pageview counts from the Wikimedia REST
// API (free, no authentication; an identifying User-Agent is required).
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a Client using the given HTTP client. baseURL may be
// empty to use the public Wikimedia endpoint.
func NewClient(client *http.Client, baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: client,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Fetch retrieves the daily pageview series for an English Wikipedia article
// over the inclusive date range. It issues exactly one synchronous GET; the
// outcome is accepted as-is with no retries.
//
// A successful response without the expected items field yields (nil, nil):
// the request was valid but there is simply no data, which is distinct from
// the error cases.
func (c *Client) Fetch(ctx context.Context, article string, r DateRange) ([]Record, error) {
	if strings.TrimSpace(article) == "" {
		return nil, fmt.Errorf("%w: article title is empty", ErrInvalidInput)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	// Article titles use underscores in place of spaces.
	title := strings.ReplaceAll(article, " ", "_")

	u := fmt.Sprintf("%s/metrics/pageviews/per-article/en.wikipedia/all-access/user/%s/daily/%s/%s",
		c.baseURL,
		title,
		r.Start.Format(apiDayLayout),
		r.End.Format(apiDayLayout),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %q", ErrArticleNotFound, article)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRequestFailed, resp.StatusCode)
	}

	var payload struct {
		Items []struct {
			Timestamp string `json:"timestamp"`
			Views     int64  `json:"views"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProcessing, err)
	}

	// Valid request, no data field: benign empty result.
	if payload.Items == nil {
		return nil, nil
	}

	records := make([]Record, 0, len(payload.Items))
	for _, item := range payload.Items {
		ts, err := time.Parse(apiTimestampLayout, item.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("%w: bad timestamp %q: %v", ErrProcessing, item.Timestamp, err)
		}
		if item.Views < 0 {
			return nil, fmt.Errorf("%w: negative view count %d on %s", ErrProcessing, item.Views, item.Timestamp)
		}
		records = append(records, Record{
			Date:      common.Day(ts),
			Pageviews: item.Views,
		})
	}

	// The API returns items in chronological order; preserve it.
	return records, nil
}
