// Package session implements the auth session controller: the single,
// process-wide reconciled view of "who is logged in". The Manager is the
// only writer of session state; everything else reads through its accessors.
//
// Failures are reported twice on purpose: returned to the caller for
// immediate handling, and mirrored into a readable error field for passive
// display. Local storage failures are absorbed and treated as absence;
// remote failures propagate.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamhub/teamhub-cli/internal/client/credentials"
	"github.com/teamhub/teamhub-cli/internal/client/models"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/audit"
	"github.com/teamhub/teamhub-cli/internal/client/services"
	"github.com/teamhub/teamhub-cli/internal/logging"
)

type Manager struct {
	mu      sync.RWMutex
	state   State
	user    *models.User
	lastErr string

	auth  services.AuthService
	creds *credentials.Store
	audit audit.Repository
	log   logging.Logger
}

func NewManager(auth services.AuthService, creds *credentials.Store, auditRepo audit.Repository, log logging.Logger) *Manager {
	return &Manager{
		state: StateUninitialized,
		auth:  auth,
		creds: creds,
		audit: auditRepo,
		log:   log.With("component", "session"),
	}
}

// Initialize reconciles the stored credential record with the server. A
// stored user is revalidated via /auth/me/; any failure there ends the
// session and clears the record. Call once at startup.
func (m *Manager) Initialize(ctx context.Context) {
	m.setState(StateLoading, nil)

	creds, err := m.creds.Read(ctx)
	if err != nil || creds == nil || creds.User == nil {
		m.setState(StateAnonymous, nil)
		return
	}

	user, err := m.auth.CurrentUser(ctx)
	if err != nil {
		m.log.Info(ctx, "stored credentials no longer valid", "error", err)
		_ = m.creds.Clear(ctx)
		m.setState(StateAnonymous, nil)
		return
	}

	m.setState(StateAuthenticated, user)
	m.log.Info(ctx, "session restored", "user", user.Email)
}

func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) (*services.AuthResponse, error) {
	m.setError("")

	resp, err := m.auth.Login(ctx, email, password, rememberMe)
	if err != nil {
		m.setError(err.Error())
		return nil, err
	}

	m.setState(StateAuthenticated, resp.User)
	m.recordAudit(ctx, "logged in as "+email)
	return resp, nil
}

func (m *Manager) Register(ctx context.Context, name, email, password, confirmPassword string) (*services.AuthResponse, error) {
	m.setError("")

	resp, err := m.auth.Register(ctx, name, email, password, confirmPassword)
	if err != nil {
		m.setError(err.Error())
		return nil, err
	}

	m.setState(StateAuthenticated, resp.User)
	m.recordAudit(ctx, "registered account "+email)
	return resp, nil
}

// Logout always tears the session down locally; the server-side call inside
// AuthService.Logout is best-effort and cannot block cleanup.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.auth.Logout(ctx)
	m.setState(StateAnonymous, nil)
	m.setError("")
	m.recordAudit(ctx, "logged out")
	return err
}

func (m *Manager) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	m.setError("")

	user, err := m.auth.UpdateProfile(ctx, patch)
	if err != nil {
		m.setError(err.Error())
		return nil, err
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	m.recordAudit(ctx, "updated profile")
	return user, nil
}

func (m *Manager) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	m.setError("")

	if err := m.auth.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		m.setError(err.Error())
		return err
	}
	m.recordAudit(ctx, "changed password")
	return nil
}

// TokenExpiry decodes the stored access token without verifying it and
// returns its expiry. Display only; authorization decisions stay with the
// server.
func (m *Manager) TokenExpiry(ctx context.Context) (time.Time, bool) {
	creds, err := m.creds.Read(ctx)
	if err != nil || creds == nil || creds.Access == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(creds.Access, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ---- accessors ----

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateAuthenticated && m.user != nil
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state == StateLoading
}

// Err returns the last recorded operation error, for passive display
// alongside the error returned to the failing caller.
func (m *Manager) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// ---- internals ----

func (m *Manager) setState(state State, user *models.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	m.mu.Unlock()
}

func (m *Manager) setError(msg string) {
	m.mu.Lock()
	m.lastErr = msg
	m.mu.Unlock()
}

func (m *Manager) recordAudit(ctx context.Context, message string) {
	if m.audit == nil {
		return
	}
	if _, err := m.audit.Add(ctx, message); err != nil {
		m.log.Warn(ctx, "failed to record audit event", "error", err)
	}
}
