package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/teamhub/teamhub-cli/internal/client/models"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	remember, err := GetSimpleText(a.reader, "Stay logged in? (y/N)", a.out)
	if err != nil {
		return err
	}

	_, err = a.session.Login(ctx, email, password, strings.EqualFold(remember, "y"))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.session.User().Email)
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	_, err = a.session.Register(ctx, name, email, password, confirm)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Account created, logged in as %s\n", a.session.User().Email)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
	if exp, ok := a.session.TokenExpiry(ctx); ok {
		fmt.Fprintf(a.out, "Access token expires at %s\n", exp.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *App) Update(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "New name (empty to keep)", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		return err
	}

	var patch models.UserPatch
	if name != "" {
		patch.Name = &name
	}
	if email != "" {
		patch.Email = &email
	}
	if patch.Name == nil && patch.Email == nil {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	user, err := a.session.UpdateProfile(ctx, patch)
	if err != nil {
		fmt.Fprintf(a.out, "Update failed: %s\n", err)
		return err
	}
	fmt.Fprintf(a.out, "Profile updated: %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) Passwd(ctx context.Context) error {
	oldPassword, err := GetPassword("Current password", a.out)
	if err != nil {
		return err
	}
	newPassword, err := GetPassword("New password", a.out)
	if err != nil {
		return err
	}

	if err := a.session.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		fmt.Fprintf(a.out, "Password change failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout cleanup failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
