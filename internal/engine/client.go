package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"adcraft/internal/creative"
	"adcraft/pkg/httputil"
)

const (
	defaultBaseURL = "http://localhost:8000"

	// Timeout for the read-only convenience calls. The generate call
	// itself runs without one unless configured.
	supplementalTimeout = 10 * time.Second
)

// ErrGenerationFailed is returned for any non-2xx generate response. The
// server's own message is deliberately not surfaced on this path.
var ErrGenerationFailed = errors.New("Failed to generate creative.")

// MalformedPayloadError reports a 2xx generate response whose body did
// not decode into the expected shape.
type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed generation response: " + e.Reason
}

// Client calls the engine's HTTP API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOptions struct {
	BaseURL string
	// Timeout bounds every call when non-zero. Zero means the generate
	// round trip is allowed to take as long as the engine needs.
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

// generatePayload shadows GenerateResponse with pointer fields so a
// missing field is distinguishable from a zero value.
type generatePayload struct {
	AdCopy1          *string             `json:"ad_copy_1"`
	AdCopy2          *string             `json:"ad_copy_2"`
	CreativeBrief    *string             `json:"creative_brief"`
	PerformanceScore *float64            `json:"performance_score"`
	Creatives        []creative.Creative `json:"creatives"`
}

func (p *generatePayload) missingField() string {
	switch {
	case p.AdCopy1 == nil:
		return "ad_copy_1"
	case p.AdCopy2 == nil:
		return "ad_copy_2"
	case p.CreativeBrief == nil:
		return "creative_brief"
	case p.PerformanceScore == nil:
		return "performance_score"
	}
	return ""
}

// Generate submits one generation request. It makes exactly one attempt
// and maps failures onto three kinds: ErrGenerationFailed for non-2xx
// statuses, MalformedPayloadError for bodies that do not validate, and
// the underlying transport error otherwise.
func (c *Client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	httpReq, err := httputil.NewJSONRequest(ctx, http.MethodPost, c.baseURL+"/generate", req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ErrGenerationFailed
	}

	var payload generatePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &MalformedPayloadError{Reason: err.Error()}
	}
	if field := payload.missingField(); field != "" {
		return nil, &MalformedPayloadError{Reason: "missing or mistyped field " + field}
	}

	return &GenerateResponse{
		AdCopy1:          *payload.AdCopy1,
		AdCopy2:          *payload.AdCopy2,
		CreativeBrief:    *payload.CreativeBrief,
		PerformanceScore: *payload.PerformanceScore,
		Creatives:        payload.Creatives,
	}, nil
}

// Health checks that the engine answers on /health.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, supplementalTimeout)
	defer cancel()

	httpReq, err := httputil.NewJSONRequest(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return transportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return httputil.ResponseError(resp)
	}
	return nil
}

// Dashboard fetches the engine's campaign snapshot.
func (c *Client) Dashboard(ctx context.Context) (*DashboardData, error) {
	var data DashboardData
	if err := c.getJSON(ctx, "/dashboard", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Config fetches the engine's configuration report.
func (c *Client) Config(ctx context.Context) (map[string]any, error) {
	var data map[string]any
	if err := c.getJSON(ctx, "/config", &data); err != nil {
		return nil, err
	}
	return data, nil
}

// Simulate triggers rounds of simulated traffic for a region and returns
// the number of recorded events.
func (c *Client) Simulate(ctx context.Context, region string, rounds int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, supplementalTimeout)
	defer cancel()

	u := fmt.Sprintf("%s/simulate?region=%s&n=%d", c.baseURL, url.QueryEscape(region), rounds)
	httpReq, err := httputil.NewJSONRequest(ctx, http.MethodPost, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, transportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, httputil.ResponseError(resp)
	}

	var payload struct {
		OK     bool `json:"ok"`
		Events int  `json:"events"`
	}
	if err := httputil.DecodeJSON(resp.Body, &payload); err != nil {
		return 0, err
	}
	return payload.Events, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, supplementalTimeout)
	defer cancel()

	httpReq, err := httputil.NewJSONRequest(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return transportErr(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return httputil.ResponseError(resp)
	}
	return httputil.DecodeJSON(resp.Body, v)
}

// transportErr strips the url.Error envelope so the underlying failure's
// message reaches the caller unchanged.
func transportErr(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return ue.Err
	}
	return err
}
