// Package ingest pulls raw vehicle listings from Apify actor runs and
// normalizes them into domain listings, abstracted behind an interface for
// testability.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultApifyBaseURL = "https://api.apify.com/v2"

// Client defines the interface for fetching raw listing items.
type Client interface {
	FetchLatestItems(ctx context.Context, runsToScan, itemsPerRun int) ([]json.RawMessage, error)
}

// ApifyClient implements Client against the Apify REST API. It scans the
// actor's most recent runs and collects every dataset item from each.
type ApifyClient struct {
	token   string
	actorID string
	baseURL string
	client  *http.Client
}

// ApifyOption configures the ApifyClient.
type ApifyOption func(*ApifyClient)

// WithBaseURL overrides the default Apify API base URL.
func WithBaseURL(u string) ApifyOption {
	return func(c *ApifyClient) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) ApifyOption {
	return func(c *ApifyClient) {
		c.client = hc
	}
}

// NewApifyClient creates a new Apify API client.
func NewApifyClient(token, actorID string, opts ...ApifyOption) *ApifyClient {
	c := &ApifyClient{
		token:   token,
		actorID: actorID,
		baseURL: defaultApifyBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apifyRunsResponse struct {
	Data struct {
		Items []apifyRun `json:"items"`
	} `json:"data"`
}

type apifyRun struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	StartedAt        string `json:"startedAt"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

// FetchLatestItems lists the actor's runs, takes the first runsToScan, and
// concatenates their dataset items. itemsPerRun <= 0 fetches every item of
// each run. A run without a dataset ID is skipped silently.
func (c *ApifyClient) FetchLatestItems(
	ctx context.Context,
	runsToScan, itemsPerRun int,
) ([]json.RawMessage, error) {
	if c.token == "" || c.actorID == "" {
		return nil, fmt.Errorf("apify token or actor ID not configured")
	}

	runs, err := c.listRuns(ctx)
	if err != nil {
		return nil, err
	}
	if runsToScan > 0 && len(runs) > runsToScan {
		runs = runs[:runsToScan]
	}

	var items []json.RawMessage
	for _, run := range runs {
		if run.DefaultDatasetID == "" {
			continue
		}

		runItems, err := c.datasetItems(ctx, run.DefaultDatasetID, itemsPerRun)
		if err != nil {
			return nil, fmt.Errorf("fetching dataset %s: %w", run.DefaultDatasetID, err)
		}
		items = append(items, runItems...)
	}

	return items, nil
}

func (c *ApifyClient) listRuns(ctx context.Context) ([]apifyRun, error) {
	params := url.Values{}
	params.Set("token", c.token)
	params.Set("desc", "true")

	u := fmt.Sprintf("%s/acts/%s/runs?%s", c.baseURL, c.actorID, params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("listing actor runs: %w", err)
	}

	var resp apifyRunsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing runs response: %w", err)
	}

	return resp.Data.Items, nil
}

func (c *ApifyClient) datasetItems(
	ctx context.Context,
	datasetID string,
	limit int,
) ([]json.RawMessage, error) {
	params := url.Values{}
	params.Set("token", c.token)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	u := fmt.Sprintf("%s/datasets/%s/items?%s", c.baseURL, datasetID, params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("parsing dataset items: %w", err)
	}

	return items, nil
}

func (c *ApifyClient) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apify API error (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}
