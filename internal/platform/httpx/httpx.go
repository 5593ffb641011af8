package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apperrors "uniplan/internal/platform/errors"
)

// TokenSource yields the current bearer token, or "" when unauthenticated.
type TokenSource interface {
	Token() string
}

// Client is the single REST client shared by every adapter/out. It joins
// paths onto the configured base URL, injects the bearer token, and maps
// responses onto the platform error taxonomy. No retries, no client-side
// timeout beyond the transport's own.
type Client struct {
	base   *url.URL
	http   *http.Client
	tokens TokenSource
	log    zerolog.Logger
}

func New(baseURL string, tokens TokenSource, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	return &Client{base: base, http: &http.Client{}, tokens: tokens, log: log}, nil
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete sends an optional JSON body; the planner endpoints key DELETE and
// PATCH by course_id in the body rather than the path.
func (c *Client) Delete(ctx context.Context, path string, body any) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	ref, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return fmt.Errorf("parse request path: %w", err)
	}
	target := c.base.ResolveReference(ref)
	if query != nil {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).Msg("transport failure")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
		return nil
	}

	c.log.Warn().Str("request_id", requestID).Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("backend error")
	return c.mapError(resp)
}

func (c *Client) mapError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.ErrUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	}
	var structured struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&structured); err == nil && structured.Detail != "" {
		return &apperrors.ValidationError{Detail: structured.Detail}
	}
	return fmt.Errorf("backend returned status %d", resp.StatusCode)
}
