// Package audit implements the local audit trail: an append-mostly log of
// user-visible actions kept in the client database, newest first, capped so
// it cannot grow without bound.
package audit

import (
	"context"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

// MaxEvents is the retention cap; adding an event beyond it evicts the oldest.
const MaxEvents = 200

type Repository interface {
	// Add records a new event with a generated ID and current timestamp.
	Add(ctx context.Context, message string) (*models.AuditEvent, error)
	// List returns stored events, newest first.
	List(ctx context.Context) ([]models.AuditEvent, error)
	// Clear removes all stored events.
	Clear(ctx context.Context) error
}
