// Package models holds the typed records exchanged with the TeamHub API and
// persisted locally. Field names mirror the server's JSON contract.
package models

// User is the server-owned representation of an authenticated principal.
// It is never derived locally: it is only populated from login/registration
// responses, /auth/me/ fetches, and profile updates.
type User struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	DateJoined string `json:"date_joined,omitempty"`
}

// UserPatch is a partial profile update. Nil fields are omitted from the
// request body so the server leaves them unchanged.
type UserPatch struct {
	Email *string `json:"email,omitempty"`
	Name  *string `json:"name,omitempty"`
}
