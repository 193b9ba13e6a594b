package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// errorBodyLimit caps how much of an error response body is read back.
const errorBodyLimit = 4 << 10

// NewJSONRequest builds a request with a JSON-encoded body and the
// Content-Type header set. A nil body produces a bodyless request.
func NewJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// DecodeJSON decodes a JSON payload from r into v.
func DecodeJSON(r io.Reader, v any) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ResponseError summarizes a non-2xx response, preferring the server's
// {"error": ...} detail when the body carries one.
func ResponseError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, payload.Error)
	}

	if body := strings.TrimSpace(string(data)); body != "" {
		return fmt.Errorf("%s: %s", resp.Status, body)
	}
	return fmt.Errorf("%s", resp.Status)
}
