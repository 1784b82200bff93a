package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/config"
	"golang.org/x/oauth2"
)

// ErrBackendUnavailable is returned when the recognition backend cannot be reached.
var ErrBackendUnavailable = errors.New("recognition backend unavailable")

const maxErrorBody = 64 << 10

// APIError is a non-2xx answer from the recognition backend.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error [%d]: %s", e.StatusCode, e.Detail)
}

// Client talks to the recognition backend's /api/v1 REST surface.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a backend client. When a device id is configured every
// request carries a bearer token obtained from POST /auth/login.
func NewClient(cfg config.BackendConfig) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}

	if cfg.DeviceID != "" {
		login := &deviceTokenSource{
			client:   &http.Client{Timeout: cfg.Timeout},
			loginURL: c.baseURL + "/auth/login",
			deviceID: cfg.DeviceID,
			password: cfg.DevicePassword,
		}
		c.httpClient = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.ReuseTokenSource(nil, login),
			},
		}
	}
	return c
}

func (c *Client) url(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, endpoint string, in any, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}
	return c.do(ctx, method, endpoint, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s %s: %v", ErrBackendUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ErrBackendUnavailable, method, endpoint, err)
	}
	return nil
}

// decodeAPIError reads the backend's {"detail": ...} error body. Detail is a
// string for HTTP errors and a list for request validation errors.
func decodeAPIError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	apiErr := &APIError{StatusCode: resp.StatusCode, Detail: http.StatusText(resp.StatusCode)}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && len(body.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(body.Detail, &detail); err == nil {
			apiErr.Detail = detail
		} else {
			apiErr.Detail = string(body.Detail)
		}
	} else if text := strings.TrimSpace(string(raw)); text != "" {
		apiErr.Detail = text
	}
	return apiErr
}

// notFoundAs replaces a backend 404 with a domain sentinel.
func notFoundAs(err error, target error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", target, apiErr.Detail)
	}
	return err
}
