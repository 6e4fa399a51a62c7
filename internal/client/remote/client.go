// Package remote implements the client for the authoritative backend
// service. Every domain operation maps to exactly one HTTP request; the
// outcome is normalized into the domain error taxonomy: transport failures
// become domain.ErrNoConnection, uniqueness violations on create/replace
// become domain.ErrConflict, and any other non-success response or decode
// failure is returned as a plain wrapped error.
//
// The package has no knowledge of the local cache. No retries and no
// timeouts are applied here; transport policy belongs to the injected HTTP
// client.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/treiher/valens-client/internal/domain"
)

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// substitute a scripted fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL string
	http    Doer
}

// NewClient returns a client for the service at baseURL (e.g.
// "http://localhost:5000"). The "api/" prefix is added per request.
func NewClient(baseURL string, doer Doer) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: doer}
}

// send issues one request and classifies the outcome. A transport error is
// reported as domain.ErrNoConnection, a 409 response as domain.ErrConflict.
// Any other non-2xx status is an error carrying the status text. The
// response body is returned for 2xx responses and must be closed by the
// caller.
func (c *Client) send(ctx context.Context, method, path string, body any) (io.ReadCloser, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	url := c.baseURL + "/api/" + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrNoConnection)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		if resp.StatusCode == http.StatusConflict {
			return nil, fmt.Errorf("%s %s: %w", method, path, domain.ErrConflict)
		}
		return nil, fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}

	return resp.Body, nil
}

// fetch issues a request and decodes the JSON response body into T.
func fetch[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var result T

	respBody, err := c.send(ctx, method, path, body)
	if err != nil {
		return result, err
	}
	defer respBody.Close()

	if err := json.NewDecoder(respBody).Decode(&result); err != nil {
		return result, fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return result, nil
}

// fetchNoContent issues a request and discards the response body, returning
// result on success.
func fetchNoContent[T any](ctx context.Context, c *Client, method, path string, body any, result T) (T, error) {
	respBody, err := c.send(ctx, method, path, body)
	if err != nil {
		return result, err
	}
	respBody.Close()
	return result, nil
}
