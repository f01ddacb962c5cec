// Package api implements the authenticated request gateway: every call to
// the TeamHub REST API is funneled through Client so the access token is
// attached uniformly and an expired token is transparently refreshed and the
// request retried, exactly once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/teamhub/teamhub-cli/internal/client/credentials"
	"github.com/teamhub/teamhub-cli/internal/logging"
)

type Client struct {
	baseURL string
	http    *http.Client
	creds   *credentials.Store
	log     logging.Logger
}

func NewClient(baseURL string, timeout time.Duration, creds *credentials.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		creds:   creds,
		log:     log.With("component", "api"),
	}
}

// Request issues one API call and decodes the JSON response into out (when
// out is non-nil and the response has a body). The access token, if stored,
// is attached as a bearer credential; its absence is not an error here, the
// server decides.
//
// On a 401 with a refresh token present, Request performs exactly one
// refresh-and-retry cycle: the retried request's outcome propagates as-is,
// never triggering a second refresh. If the refresh itself fails, stored
// credentials are cleared and ErrSessionExpired is returned.
func (c *Client) Request(ctx context.Context, method, endpoint string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	token := c.accessToken(ctx)
	resp, err := c.send(ctx, method, endpoint, payload, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.refreshToken(ctx) == "" {
			// No refresh attempted; surface the 401 with the server's message.
			return decodeResponse(resp, out)
		}
		drain(resp)

		newToken, err := c.RefreshAccessToken(ctx)
		if err != nil {
			// Refresh already clears the store on rejection; clear here too
			// so transport-level refresh failures end the session as well.
			_ = c.creds.Clear(ctx)
			c.log.Warn(ctx, "token refresh failed, session expired", "error", err)
			return ErrSessionExpired
		}

		resp, err = c.send(ctx, method, endpoint, payload, newToken)
		if err != nil {
			return err
		}
	}

	return decodeResponse(resp, out)
}

// send performs a single HTTP exchange. The caller owns the response body.
func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, token string) (*http.Response, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	return resp, nil
}

// decodeResponse consumes resp. A success with an empty body is a null
// result, not an error (PATCH/DELETE-style calls).
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body errorBody
		_ = json.Unmarshal(data, &body)
		return &RequestError{Status: resp.StatusCode, Message: body.message()}
	}

	if len(data) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// accessToken returns the stored access token, or "" when no usable record
// exists. Storage-level failures are normalized to absence.
func (c *Client) accessToken(ctx context.Context) string {
	creds, err := c.creds.Read(ctx)
	if err != nil || creds == nil {
		return ""
	}
	return creds.Access
}

func (c *Client) refreshToken(ctx context.Context) string {
	creds, err := c.creds.Read(ctx)
	if err != nil || creds == nil {
		return ""
	}
	return creds.Refresh
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
