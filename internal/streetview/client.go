package streetview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"

	imagePath    = "/maps/api/streetview"
	metadataPath = "/maps/api/streetview/metadata"

	// maxBodyBytes bounds response reads. Street View images are capped at
	// 640x640 by the API, so this is generous.
	maxBodyBytes = 16 << 20
)

// Client is a minimal HTTP client for the Google Street View Static API.
// It issues a single GET per call with no retries; every upstream failure is
// terminal for that call.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (useful for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient sets a custom http.Client (e.g., with proxy or custom transport).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New constructs a Client with sane defaults.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// FetchImage retrieves a Street View image for the given location selector
// and display parameters, returning the raw image bytes.
//
// The API reports some failures (e.g. no imagery at the location) as an HTTP
// 200 with a JSON error payload instead of image bytes; those are detected by
// content type and surfaced as an *APIError.
func (c *Client) FetchImage(ctx context.Context, loc Location, opts ImageOptions) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if err := loc.validate(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("size", opts.Size)
	q.Set("heading", formatAngle(opts.Heading))
	q.Set("pitch", formatAngle(opts.Pitch))
	q.Set("fov", formatAngle(opts.FOV))
	q.Set("source", string(opts.Source))
	q.Set("return_error_code", "true")
	q.Set("key", c.apiKey)
	if !loc.isPano() {
		q.Set("radius", strconv.Itoa(opts.Radius))
	}
	loc.apply(q)

	res, err := c.get(ctx, imagePath, q)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, readAPIError(res)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("streetview: reading image body: %w", err)
	}

	// An error payload delivered with HTTP 200 is JSON, not image bytes.
	ct := res.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return nil, parseErrorPayload(res.StatusCode, body)
	}
	return body, nil
}

// FetchMetadata retrieves panorama metadata for the given location selector.
// A parsed status other than "OK" is an *APIError carrying the literal status
// string (e.g. "ZERO_RESULTS").
func (c *Client) FetchMetadata(ctx context.Context, loc Location, opts MetadataOptions) (Metadata, error) {
	if c.apiKey == "" {
		return Metadata{}, ErrMissingAPIKey
	}
	if err := loc.validate(); err != nil {
		return Metadata{}, err
	}
	opts = opts.Normalize()
	if err := opts.validate(); err != nil {
		return Metadata{}, err
	}

	q := url.Values{}
	q.Set("source", string(opts.Source))
	q.Set("key", c.apiKey)
	if !loc.isPano() {
		q.Set("radius", strconv.Itoa(opts.Radius))
	}
	loc.apply(q)

	res, err := c.get(ctx, metadataPath, q)
	if err != nil {
		return Metadata{}, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return Metadata{}, readAPIError(res)
	}

	var meta Metadata
	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(&meta); err != nil {
		return Metadata{}, fmt.Errorf("streetview: decoding metadata: %w", err)
	}
	if meta.Status != StatusOK {
		return Metadata{}, &APIError{StatusCode: res.StatusCode, Status: meta.Status}
	}
	return meta, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("streetview: request failed: %w", err)
	}
	return res, nil
}

// readAPIError builds an APIError from a non-2xx response, decoding any JSON
// error payload for the message.
func readAPIError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	return parseErrorPayload(res.StatusCode, body)
}

func parseErrorPayload(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode}
	var payload struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Status = payload.Status
		apiErr.Message = payload.ErrorMessage
	}
	if apiErr.Status == "" && apiErr.Message == "" && statusCode >= 200 && statusCode < 300 {
		apiErr.Message = "received non-image response from API"
	}
	return apiErr
}

// formatAngle renders angle parameters without trailing zeros, so whole
// degrees serialize as integers ("90", not "90.000000").
func formatAngle(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
