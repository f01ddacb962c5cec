package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/teamhub/teamhub-cli/internal/client/credentials"
	"github.com/teamhub/teamhub-cli/internal/client/models"
	"github.com/teamhub/teamhub-cli/internal/logging"
)

// ErrValidation marks client-side pre-checks that fail before any network
// call is issued (e.g. password mismatch on registration).
var ErrValidation = errors.New("validation error")

// MinPasswordLength is enforced locally on registration and password change;
// the server applies its own policy on top.
const MinPasswordLength = 8

// AuthResponse is the server's reply to login/registration: a token pair
// plus the authenticated user.
type AuthResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Login/Register: authenticate against the server and persist the
//     credential record on success.
//   - Logout: best-effort server-side logout, then unconditional local cleanup.
//   - CurrentUser: fetch the authoritative profile of the logged-in user.
//   - UpdateProfile: partial profile update, mirrored into the stored record.
//   - ChangePassword / password reset: account maintenance calls.
type AuthService interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (*AuthResponse, error)
	Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, uid, token, password string) error
}

type authService struct {
	gateway Gateway
	creds   *credentials.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService bound to the given gateway and
// credential store.
func NewAuthService(gateway Gateway, creds *credentials.Store, log logging.Logger) AuthService {
	return &authService{gateway: gateway, creds: creds, log: log.With("component", "auth")}
}

type loginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

func (a *authService) Login(ctx context.Context, email, password string, rememberMe bool) (*AuthResponse, error) {
	var resp AuthResponse
	err := a.gateway.Request(ctx, http.MethodPost, "/auth/login/", loginRequest{
		Email:      email,
		Password:   password,
		RememberMe: rememberMe,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Access != "" && resp.Refresh != "" {
		if err := a.creds.Save(ctx, resp.Access, resp.Refresh, resp.User); err != nil {
			return nil, fmt.Errorf("login succeeded but credentials were not saved: %w", err)
		}
	}
	return &resp, nil
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
}

func (a *authService) Register(ctx context.Context, name, email, password, confirmPassword string) (*AuthResponse, error) {
	if err := validateRegistration(name, email, password, confirmPassword); err != nil {
		return nil, err
	}

	var resp AuthResponse
	err := a.gateway.Request(ctx, http.MethodPost, "/auth/register/", registerRequest{
		Name:      name,
		Email:     email,
		Password:  password,
		Password2: confirmPassword,
	}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Access != "" && resp.Refresh != "" {
		if err := a.creds.Save(ctx, resp.Access, resp.Refresh, resp.User); err != nil {
			return nil, fmt.Errorf("registration succeeded but credentials were not saved: %w", err)
		}
	}
	return &resp, nil
}

func validateRegistration(name, email, password, confirmPassword string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	if password != confirmPassword {
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}
	return nil
}

type logoutRequest struct {
	Refresh string `json:"refresh"`
}

// Logout notifies the server so the refresh token can be blacklisted, then
// clears local credentials. The server call is best-effort: its failure is
// logged and discarded, local cleanup happens regardless.
func (a *authService) Logout(ctx context.Context) error {
	creds, err := a.creds.Read(ctx)
	if err == nil && creds != nil && creds.Refresh != "" {
		if err := a.gateway.Request(ctx, http.MethodPost, "/auth/logout/", logoutRequest{Refresh: creds.Refresh}, nil); err != nil {
			a.log.Warn(ctx, "server-side logout failed, clearing local session anyway", "error", err)
		}
	}
	return a.creds.Clear(ctx)
}

func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.gateway.Request(ctx, http.MethodGet, "/auth/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	var user models.User
	if err := a.gateway.Request(ctx, http.MethodPut, "/auth/me/", patch, &user); err != nil {
		return nil, err
	}

	// Keep the denormalized user in the credential record current.
	creds, err := a.creds.Read(ctx)
	if err == nil && creds != nil {
		if err := a.creds.Save(ctx, creds.Access, creds.Refresh, &user); err != nil {
			return nil, fmt.Errorf("profile updated but local record was not: %w", err)
		}
	}
	return &user, nil
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (a *authService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return a.gateway.Request(ctx, http.MethodPost, "/auth/change-password/", changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	}, nil)
}

func (a *authService) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	return a.gateway.Request(ctx, http.MethodPost, "/auth/password-reset/", map[string]string{"email": email}, nil)
}

func (a *authService) ConfirmPasswordReset(ctx context.Context, uid, token, password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLength)
	}
	return a.gateway.Request(ctx, http.MethodPost, "/auth/password-reset-confirm/", map[string]string{
		"uid":      uid,
		"token":    token,
		"password": password,
	}, nil)
}
