// Package credentials implements the persistent credential store: one
// JSON-encoded record holding the access/refresh token pair and a cached
// copy of the user, kept under a fixed key in the local metadata store.
//
// All credential persistence in the client goes through this package;
// nothing else reads or writes the underlying key.
package credentials

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/teamhub/teamhub-cli/internal/client/models"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/metadata"
)

// storageKey is the fixed metadata key the auth record lives under.
const storageKey = "auth"

type Store struct {
	repo metadata.Repository
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Save overwrites the stored record with the given tokens and user.
func (s *Store) Save(ctx context.Context, access, refresh string, user *models.User) error {
	data, err := json.Marshal(models.Credentials{Access: access, Refresh: refresh, User: user})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := s.repo.Set(ctx, storageKey, data); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Read returns the stored record, or (nil, nil) when no record exists or the
// stored value cannot be parsed. Corrupt or foreign data is treated as
// absence, never as an error.
func (s *Store) Read(ctx context.Context) (*models.Credentials, error) {
	data, err := s.repo.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var creds models.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, nil
	}
	return &creds, nil
}

// Clear removes the stored record. Clearing an empty store succeeds.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, storageKey); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
