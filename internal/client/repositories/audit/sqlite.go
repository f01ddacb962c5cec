package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamhub/teamhub-cli/internal/client/models"
	"github.com/teamhub/teamhub-cli/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, message string) (*models.AuditEvent, error) {
	event := &models.AuditEvent{
		ID:      uuid.NewString(),
		Message: message,
		At:      time.Now().UTC(),
	}

	// Insert and trim atomically so a crash between the two cannot leave
	// the log over the retention cap.
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO audit_events (id, message, at) VALUES (?, ?, ?)`,
			event.ID, event.Message, event.At.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("failed to add audit event: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM audit_events WHERE id NOT IN (
				SELECT id FROM audit_events ORDER BY at DESC, id LIMIT ?
			)`, MaxEvents)
		if err != nil {
			return fmt.Errorf("failed to trim audit events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.AuditEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, message, at FROM audit_events ORDER BY at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer rows.Close()

	var events []models.AuditEvent
	for rows.Next() {
		var e models.AuditEvent
		var at string
		if err := rows.Scan(&e.ID, &e.Message, &at); err != nil {
			return nil, fmt.Errorf("failed to scan audit event: %w", err)
		}
		e.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("failed to parse audit timestamp: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit events: %w", err)
	}
	return events, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM audit_events`)
	if err != nil {
		return fmt.Errorf("failed to clear audit events: %w", err)
	}
	return nil
}
