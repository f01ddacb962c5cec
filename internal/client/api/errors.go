package api

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRefreshToken means no refresh token is stored; a refresh was not
	// attempted and no network call was made.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrRefreshRejected means the server refused the refresh token. The
	// stored credentials have been cleared; the token is permanently invalid.
	ErrRefreshRejected = errors.New("refresh token rejected")

	// ErrSessionExpired is returned by Request after a failed
	// refresh-and-retry cycle. Callers must treat it as terminal and force
	// re-authentication.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// RequestError is any non-success HTTP outcome other than the
// refresh-related failures above.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// errorBody is the error shape the server returns: an object with optional
// "error" or "detail" string fields.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// message picks the most specific server-supplied message, falling back to a
// generic one.
func (b errorBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	if b.Detail != "" {
		return b.Detail
	}
	return "request failed"
}
