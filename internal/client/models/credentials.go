package models

// Credentials is the single durable auth record: the access/refresh token
// pair plus a denormalized copy of the user it belongs to. The tokens are
// either both present or the record does not exist; User may go stale
// relative to server truth between refreshes.
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
	User    *User  `json:"user,omitempty"`
}
