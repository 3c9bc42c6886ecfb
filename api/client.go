// Package api is the typed HTTP client for the dashboard backend. Every call
// runs under a hard deadline; non-success responses are classified into
// *APIError (server detail or status text) or ErrTimeout.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is used when no backend address is configured.
const DefaultBaseURL = "http://localhost:8000"

// DefaultTimeout is the hard per-request deadline.
const DefaultTimeout = 10 * time.Second

// Client issues requests against the dashboard backend.
type Client struct {
	Base string
	HTTP *http.Client

	// Timeout overrides the per-request deadline. Zero means DefaultTimeout.
	Timeout time.Duration
}

// New creates a Client for the given base URL. An empty base falls back to
// DefaultBaseURL.
func New(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		Base: strings.TrimRight(base, "/"),
		HTTP: http.DefaultClient,
	}
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

// do issues one HTTP call under the deadline and decodes the 2xx body into
// out. The request is cancelled when the deadline fires; the outcome is then
// ErrTimeout regardless of how the attempt ends afterward.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType, bearer string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// A malformed body on a success status is still an API failure.
		return &APIError{StatusCode: resp.StatusCode, Detail: fmt.Sprintf("malformed response body: %v", err)}
	}
	return nil
}

// decodeError extracts the server's detail field, falling back to the HTTP
// status text when the body is not the expected JSON shape.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	}
	return apiErr
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, buf, "application/json", "", out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	body := strings.NewReader(form.Encode())
	return c.do(ctx, http.MethodPost, path, body, "application/x-www-form-urlencoded", "", out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, "", "", out)
}
