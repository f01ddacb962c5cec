package models

import "time"

// AuditEvent is a locally recorded trace of a user-visible action
// (login, logout, registration, profile change). Events never leave
// the local store.
type AuditEvent struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}
