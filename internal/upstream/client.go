package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spec-kit/repair-dashboard/internal/observability"
	apperrors "github.com/spec-kit/repair-dashboard/pkg/util"
)

// client is the shared plumbing for the two upstream adapters: plain JSON
// over HTTP, per-call context, no authentication token attached (auth is
// handled by the gate in front of the dashboard, not on this hop), no
// retries.
type client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
}

func (c *client) getJSON(ctx context.Context, operation, path string, query url.Values, out any) error {
	err := c.do(ctx, http.MethodGet, path, query, nil, out)
	c.metrics.RecordUpstream(c.name, operation, err == nil)
	return err
}

func (c *client) postJSON(ctx context.Context, operation, path string, query url.Values, body any) error {
	err := c.do(ctx, http.MethodPost, path, query, body, nil)
	c.metrics.RecordUpstream(c.name, operation, err == nil)
	return err
}

// Ping reports whether the upstream is reachable at all. Any HTTP answer
// counts as reachable; only transport-level failures do not.
func (c *client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func (c *client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperrors.NewUpstreamError(c.name, fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return apperrors.NewUpstreamError(c.name, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.NewUpstreamError(c.name, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFound(c.name+" resource", map[string]any{"path": path})
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apperrors.NewUpstreamError(c.name, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstreamError(c.name, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
