package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/teamhub/teamhub-cli/internal/client/credentials"
	"github.com/teamhub/teamhub-cli/internal/client/models"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/audit"
	"github.com/teamhub/teamhub-cli/internal/client/repositories/metadata"
	"github.com/teamhub/teamhub-cli/internal/client/services"
	"github.com/teamhub/teamhub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// ---- fixtures ----

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fixture struct {
	manager *Manager
	store   *credentials.Store
	audit   audit.Repository
	gateway *stubGateway
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
CREATE TABLE audit_events (
  id      TEXT PRIMARY KEY,
  message TEXT NOT NULL,
  at      TEXT NOT NULL
);`)
	require.NoError(t, err)

	store := credentials.NewStore(metadata.NewSQLiteRepository(db))
	auditRepo := audit.NewSQLiteRepository(db)
	gw := &stubGateway{responses: map[string]stubResponse{}}
	auth := services.NewAuthService(gw, store, testLogger())

	return &fixture{
		manager: NewManager(auth, store, auditRepo, testLogger()),
		store:   store,
		audit:   auditRepo,
		gateway: gw,
	}
}

type stubResponse struct {
	Body any
	Err  error
}

// stubGateway implements services.Gateway with canned per-endpoint replies.
type stubGateway struct {
	responses map[string]stubResponse
	calls     []string
}

func (s *stubGateway) Request(ctx context.Context, method, endpoint string, body, out any) error {
	s.calls = append(s.calls, method+" "+endpoint)
	resp, ok := s.responses[endpoint]
	if !ok {
		return errors.New("unexpected call to " + endpoint)
	}
	if resp.Err != nil {
		return resp.Err
	}
	if resp.Body != nil && out != nil {
		data, err := json.Marshal(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	}
	return nil
}

func auditMessages(t *testing.T, repo audit.Repository) []string {
	t.Helper()
	events, err := repo.List(context.Background())
	require.NoError(t, err)
	messages := make([]string, 0, len(events))
	for _, e := range events {
		messages = append(messages, e.Message)
	}
	return messages
}

// ---- tests ----

func TestInitialize_NoStoredRecord_Anonymous(t *testing.T) {
	f := setup(t)
	require.Equal(t, StateUninitialized, f.manager.State())

	f.manager.Initialize(context.Background())

	require.Equal(t, StateAnonymous, f.manager.State())
	require.False(t, f.manager.IsAuthenticated())
	require.Empty(t, f.gateway.calls, "no stored user means no validation call")
}

func TestInitialize_StoredRecordValid_Authenticated(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, "acc", "ref", &models.User{ID: 1, Email: "a@x.com", Name: "Stale Name"}))
	f.gateway.responses["/auth/me/"] = stubResponse{Body: models.User{ID: 1, Email: "a@x.com", Name: "Fresh Name"}}

	f.manager.Initialize(ctx)

	require.Equal(t, StateAuthenticated, f.manager.State())
	require.True(t, f.manager.IsAuthenticated())
	// The server copy wins over the cached one.
	require.Equal(t, "Fresh Name", f.manager.User().Name)
}

func TestInitialize_StoredRecordRejected_AnonymousAndCleared(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, "dead-acc", "dead-ref", &models.User{ID: 1, Email: "a@x.com"}))
	f.gateway.responses["/auth/me/"] = stubResponse{Err: errors.New("unauthorized")}

	f.manager.Initialize(ctx)

	require.Equal(t, StateAnonymous, f.manager.State())
	require.Nil(t, f.manager.User())

	creds, err := f.store.Read(ctx)
	require.NoError(t, err)
	require.Nil(t, creds, "rejected credentials must be cleared")
}

func TestLogin_Success_AuthenticatedAndPersisted(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.gateway.responses["/auth/login/"] = stubResponse{Body: services.AuthResponse{
		Access:  "acc-token",
		Refresh: "ref-token",
		User:    &models.User{ID: 1, Email: "a@x.com"},
	}}

	resp, err := f.manager.Login(ctx, "a@x.com", "secret123", false)
	require.NoError(t, err)
	require.Equal(t, "a@x.com", resp.User.Email)

	require.Equal(t, StateAuthenticated, f.manager.State())
	require.True(t, f.manager.IsAuthenticated())
	require.Empty(t, f.manager.Err())

	creds, err := f.store.Read(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, creds.Access)
	require.NotEmpty(t, creds.Refresh)

	require.Contains(t, auditMessages(t, f.audit), "logged in as a@x.com")
}

func TestLogin_Failure_DualReporting(t *testing.T) {
	f := setup(t)
	f.manager.Initialize(context.Background())
	f.gateway.responses["/auth/login/"] = stubResponse{Err: errors.New("invalid email or password")}

	_, err := f.manager.Login(context.Background(), "a@x.com", "wrong", false)
	require.Error(t, err)

	// The failure is both returned and mirrored for passive display.
	require.Equal(t, "invalid email or password", f.manager.Err())
	require.Equal(t, StateAnonymous, f.manager.State())
	require.False(t, f.manager.IsAuthenticated())
}

func TestRegister_ShortPassword_NoNetworkCalls(t *testing.T) {
	f := setup(t)
	f.manager.Initialize(context.Background())

	_, err := f.manager.Register(context.Background(), "Alice", "a@x.com", "short", "short")
	require.ErrorIs(t, err, services.ErrValidation)
	require.Empty(t, f.gateway.calls, "validation failures must not reach the network")
	require.Equal(t, StateAnonymous, f.manager.State())
	require.NotEmpty(t, f.manager.Err())
}

func TestRegister_Success_AutoLogin(t *testing.T) {
	f := setup(t)
	f.gateway.responses["/auth/register/"] = stubResponse{Body: services.AuthResponse{
		Access:  "acc",
		Refresh: "ref",
		User:    &models.User{ID: 2, Email: "b@x.com"},
	}}

	_, err := f.manager.Register(context.Background(), "Bob", "b@x.com", "secret123", "secret123")
	require.NoError(t, err)
	require.True(t, f.manager.IsAuthenticated())
	require.Equal(t, int64(2), f.manager.User().ID)
}

func TestLogout_ServerError_StillAnonymousAndCleared(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, "acc", "ref", &models.User{ID: 1, Email: "a@x.com"}))
	f.gateway.responses["/auth/me/"] = stubResponse{Body: models.User{ID: 1, Email: "a@x.com"}}
	f.manager.Initialize(ctx)
	require.True(t, f.manager.IsAuthenticated())

	f.gateway.responses["/auth/logout/"] = stubResponse{Err: errors.New("network down")}

	require.NoError(t, f.manager.Logout(ctx))
	require.Equal(t, StateAnonymous, f.manager.State())
	require.Nil(t, f.manager.User())

	creds, err := f.store.Read(ctx)
	require.NoError(t, err)
	require.Nil(t, creds)

	require.Contains(t, auditMessages(t, f.audit), "logged out")
}

func TestUpdateProfile_Failure_UserUnchanged(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	require.NoError(t, f.store.Save(ctx, "acc", "ref", &models.User{ID: 1, Email: "a@x.com", Name: "Alice"}))
	f.gateway.responses["/auth/me/"] = stubResponse{Body: models.User{ID: 1, Email: "a@x.com", Name: "Alice"}}
	f.manager.Initialize(ctx)

	f.gateway.responses["/auth/me/"] = stubResponse{Err: errors.New("email already in use")}

	email := "taken@x.com"
	_, err := f.manager.UpdateProfile(ctx, models.UserPatch{Email: &email})
	require.Error(t, err)
	require.Equal(t, "Alice", f.manager.User().Name, "session user left unchanged on failure")
	require.Equal(t, "email already in use", f.manager.Err())
}

func TestTokenExpiry_DecodesStoredAccessToken(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, f.store.Save(ctx, token, "ref", nil))

	got, ok := f.manager.TokenExpiry(ctx)
	require.True(t, ok)
	require.Equal(t, exp.Unix(), got.Unix())
}

func TestTokenExpiry_NoToken(t *testing.T) {
	f := setup(t)
	_, ok := f.manager.TokenExpiry(context.Background())
	require.False(t, ok)
}
