package tower

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// API defines the tower operations Lander depends on.
// This interface is implemented by *Client and can be used for testing.
type API interface {
	ListAirports(ctx context.Context) ([]Airport, error)
	AirportStatus(ctx context.Context, airportID string) (StatusResponse, error)
	Land(ctx context.Context, airportID string) (LandResponse, error)
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the tower HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "127.0.0.1:8080"
	defaultUserAgent = "lander/0.1"
)

// NewClient builds a Client for the given base URL. A bare host:port is
// treated as http.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// ListAirports retrieves the landable airports in server order.
func (c *Client) ListAirports(ctx context.Context) ([]Airport, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Airport
	if err := c.do(ctx, http.MethodGet, "/airports", &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// AirportStatus retrieves the busy/free state of one airport.
func (c *Client) AirportStatus(ctx context.Context, airportID string) (StatusResponse, error) {
	if c == nil {
		return StatusResponse{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(airportID) == "" {
		return StatusResponse{}, fmt.Errorf("airport id required")
	}
	var payload StatusResponse
	if err := c.do(ctx, http.MethodGet, "/airport-status/"+url.PathEscape(airportID), &payload); err != nil {
		return StatusResponse{}, err
	}
	return payload, nil
}

// Land submits a landing attempt at the given airport.
func (c *Client) Land(ctx context.Context, airportID string) (LandResponse, error) {
	if c == nil {
		return LandResponse{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(airportID) == "" {
		return LandResponse{}, fmt.Errorf("airport id required")
	}
	var payload LandResponse
	if err := c.do(ctx, http.MethodPost, "/land/"+url.PathEscape(airportID), &payload); err != nil {
		return LandResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, escapedPath string, dest any) error {
	rel, err := url.Parse(escapedPath)
	if err != nil {
		return fmt.Errorf("build path: %w", err)
	}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse base url %q: missing host", raw)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
