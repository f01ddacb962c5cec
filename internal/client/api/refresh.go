package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const refreshEndpoint = "/auth/token/refresh/"

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token and persists the merged record. The previous refresh token is kept
// when the server does not rotate it; the cached user record is preserved.
//
// Without a stored refresh token it fails with ErrNoRefreshToken before any
// network call. A rejected exchange clears the store entirely and fails with
// ErrRefreshRejected: a refused refresh token is permanently invalid, so
// there is nothing left worth keeping.
func (c *Client) RefreshAccessToken(ctx context.Context) (string, error) {
	creds, err := c.creds.Read(ctx)
	if err != nil || creds == nil || creds.Refresh == "" {
		return "", ErrNoRefreshToken
	}

	payload, _ := json.Marshal(refreshRequest{Refresh: creds.Refresh})
	resp, err := c.send(ctx, http.MethodPost, refreshEndpoint, payload, "")
	if err != nil {
		return "", fmt.Errorf("refresh exchange failed: %w", err)
	}

	var result refreshResponse
	if err := decodeResponse(resp, &result); err != nil {
		_ = c.creds.Clear(ctx)
		c.log.Warn(ctx, "refresh token rejected by server", "error", err)
		return "", ErrRefreshRejected
	}

	newRefresh := result.Refresh
	if newRefresh == "" {
		newRefresh = creds.Refresh
	}
	if err := c.creds.Save(ctx, result.Access, newRefresh, creds.User); err != nil {
		return "", fmt.Errorf("failed to persist refreshed credentials: %w", err)
	}

	return result.Access, nil
}
