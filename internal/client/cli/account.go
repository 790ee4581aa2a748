package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/fruitie/internal/client/client"
)

func (a *App) Register(ctx context.Context) error {
	var req client.RegisterRequest
	var err error

	if req.Name, err = GetSimpleText(a.reader, "-Enter name", a.out); err != nil {
		return a.fail(ctx, "register", err)
	}
	if req.Email, err = GetSimpleText(a.reader, "-Enter email", a.out); err != nil {
		return a.fail(ctx, "register", err)
	}
	if req.Password, err = GetPassword(a.out); err != nil {
		return a.fail(ctx, "register", err)
	}
	if req.Location, err = GetSimpleText(a.reader, "-Enter location (optional)", a.out); err != nil {
		return a.fail(ctx, "register", err)
	}
	if req.PhoneNumber, err = GetSimpleText(a.reader, "-Enter phone number (optional)", a.out); err != nil {
		return a.fail(ctx, "register", err)
	}

	user, err := a.api.Register(ctx, req)
	if err != nil {
		return a.fail(ctx, "register", err)
	}
	printlnFn(fmt.Sprintf("Registered %s <%s>, type 'login' to sign in", user.Name, user.Email))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "-Enter email", a.out)
	if err != nil {
		return a.fail(ctx, "login", err)
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(ctx, "login", err)
	}

	if err := a.api.Login(ctx, email, password); err != nil {
		return a.fail(ctx, "login", err)
	}

	a.mu.Lock()
	a.userEmail = strings.ToLower(strings.TrimSpace(email))
	a.mu.Unlock()

	printlnFn("Login successful")
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return client.ErrUnauthorized
	}
	u, err := a.api.Profile(ctx)
	if err != nil {
		return a.fail(ctx, "profile", err)
	}

	printlnFn("Name:    ", u.Name)
	printlnFn("Email:   ", u.Email)
	printlnFn("Role:    ", u.Role)
	if u.Location != "" {
		printlnFn("Location:", u.Location)
	}
	if u.PhoneNumber != "" {
		printlnFn("Phone:   ", u.PhoneNumber)
	}
	return nil
}

// fail reports err to the user in plain words and logs the details.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.logger.Warn(ctx, op+" failed", "error", err)
	printlnFn(describe(err))
	return err
}

func describe(err error) string {
	var statusErr *client.StatusError
	var netErr *client.NetworkError

	switch {
	case errors.As(err, &statusErr) && len(statusErr.Fields) > 0:
		keys := make([]string, 0, len(statusErr.Fields))
		for k := range statusErr.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var b strings.Builder
		b.WriteString("Please fix the following:")
		for _, k := range keys {
			fmt.Fprintf(&b, "\n  %s: %s", k, statusErr.Fields[k])
		}
		return b.String()
	case errors.Is(err, client.ErrUnauthorized):
		return "Invalid email or password"
	case errors.Is(err, client.ErrConflict):
		return "An account with this email already exists"
	case errors.As(err, &netErr):
		return "Server unavailable, try again later"
	case errors.As(err, &statusErr):
		return "Error: " + statusErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
