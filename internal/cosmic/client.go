// Package cosmic implements a read-only client for the Cosmic headless
// content API. A Client is a configured handle to one bucket (dataset):
// bucket slug, read key, and API environment. It exposes two operations,
// Find (object lists) and FindOne (single object), that decode the
// response envelope into caller-supplied typed values.
package cosmic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the production Cosmic API endpoint.
const DefaultBaseURL = "https://api.cosmicjs.com/v3"

// ErrNotFound reports that the query matched no objects. It is a valid
// outcome for lookups, distinct from a transport or API failure.
var ErrNotFound = errors.New("cosmic: not found")

// APIError is a non-404 error response from the content API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cosmic API error (status %d): %s", e.Status, e.Body)
}

// Config holds the credentials and target dataset for a Client.
type Config struct {
	BucketSlug  string
	ReadKey     string
	Environment string // API environment, e.g. "staging"; empty uses the bucket default
	BaseURL     string // defaults to DefaultBaseURL
}

// Client is a configured handle to one Cosmic bucket. It is safe for
// concurrent use and immutable after construction.
type Client struct {
	config Config
	client *http.Client
}

// New creates a Client for the given bucket.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Query describes one objects request: the entity type, optional
// equality filters, a field projection, and the relation-expansion depth.
type Query struct {
	Type  string
	Slug  string            // exact slug match (single-object lookups)
	ID    string            // exact id match (single-object lookups)
	Meta  map[string]any    // metadata equality filters, e.g. {"featured": true}
	Props []string          // field projection; empty requests all fields
	Depth int               // relation-expansion depth
}

// selector builds the JSON query document the API expects in the
// "query" parameter.
func (q Query) selector() map[string]any {
	sel := map[string]any{"type": q.Type}
	if q.Slug != "" {
		sel["slug"] = q.Slug
	}
	if q.ID != "" {
		sel["id"] = q.ID
	}
	for k, v := range q.Meta {
		sel["metadata."+k] = v
	}
	return sel
}

// listEnvelope is the response wrapper for Find calls.
type listEnvelope struct {
	Objects json.RawMessage `json:"objects"`
	Total   int             `json:"total"`
}

// singleEnvelope is the response wrapper for FindOne calls.
type singleEnvelope struct {
	Object json.RawMessage `json:"object"`
}

// Find fetches all objects matching the query and unmarshals them into
// out, which must be a pointer to a slice of the entity type. It returns
// the total object count reported by the API. A query matching nothing
// returns ErrNotFound; callers decide whether that is an empty result
// or a failure.
func (c *Client) Find(ctx context.Context, q Query, out any) (int, error) {
	body, err := c.get(ctx, q)
	if err != nil {
		return 0, err
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return 0, fmt.Errorf("cosmic decode envelope: %w", err)
	}
	if err := json.Unmarshal(envelope.Objects, out); err != nil {
		return 0, fmt.Errorf("cosmic decode objects: %w", err)
	}
	return envelope.Total, nil
}

// FindOne fetches a single object matching the query and unmarshals it
// into out, which must be a pointer to the entity type. A query matching
// nothing returns ErrNotFound.
func (c *Client) FindOne(ctx context.Context, q Query, out any) error {
	body, err := c.get(ctx, q)
	if err != nil {
		return err
	}

	var envelope singleEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("cosmic decode envelope: %w", err)
	}
	if len(envelope.Object) == 0 || string(envelope.Object) == "null" {
		return ErrNotFound
	}
	if err := json.Unmarshal(envelope.Object, out); err != nil {
		return fmt.Errorf("cosmic decode object: %w", err)
	}
	return nil
}

// get performs the HTTP call against the objects endpoint and returns
// the raw response body. 404 maps to ErrNotFound, any other non-200
// status to *APIError.
func (c *Client) get(ctx context.Context, q Query) ([]byte, error) {
	selector, err := json.Marshal(q.selector())
	if err != nil {
		return nil, fmt.Errorf("cosmic marshal query: %w", err)
	}

	params := url.Values{}
	params.Set("read_key", c.config.ReadKey)
	params.Set("query", string(selector))
	if len(q.Props) > 0 {
		params.Set("props", strings.Join(q.Props, ","))
	}
	if q.Depth > 0 {
		params.Set("depth", strconv.Itoa(q.Depth))
	}
	if c.config.Environment != "" {
		params.Set("environment", c.config.Environment)
	}

	endpoint := fmt.Sprintf("%s/buckets/%s/objects?%s", c.config.BaseURL, c.config.BucketSlug, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("cosmic request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cosmic http: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cosmic read body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
