package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/gophaccounts/internal/client/client"
)

// Test seams for interactive input.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

var errPasswordsDiffer = errors.New("passwords do not match")

// argOrPrompt returns args[0] when present and asks for the value otherwise.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) newPassword() (string, error) {
	password, err := getPassword(a.reader, a.out, "New password")
	if err != nil {
		return "", err
	}
	again, err := getPassword(a.reader, a.out, "Repeat password")
	if err != nil {
		return "", err
	}
	if password != again {
		return "", errPasswordsDiffer
	}
	return password, nil
}

func (a *App) Version(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	v, err := a.api.Version(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server version:", v)
	return nil
}

func (a *App) Register(ctx context.Context, args []string) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return err
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered %s. Check %s for the verification token.\n", u.GetId(), u.GetEmail())
	return nil
}

func (a *App) Verify(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter verification token")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.VerifyEmail(ctx, token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Email verified.")
	return nil
}

func (a *App) Resend(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.ResendVerifyEmail(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Verification email sent.")
	return nil
}

func (a *App) Forgot(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.RequestReset(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password reset email sent.")
	return nil
}

func (a *App) Reset(ctx context.Context, args []string) error {
	token, err := a.argOrPrompt(args, "Enter reset token")
	if err != nil {
		return err
	}
	password, err := a.newPassword()
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.ResetPassword(ctx, token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed. Log in with the new password.")
	return nil
}

func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out, "Password")
	if err != nil {
		return err
	}
	remember, err := getConfirm(a.reader, "Remember this device?", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.auth.Login(ctx, email, password, remember); err != nil {
		return err
	}
	a.email = email
	fmt.Fprintln(a.out, "Logged in as", email)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.email = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) Me(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.api.Me(ctx)
	if err != nil {
		return a.authFailure(ctx, err)
	}

	verified := "no"
	if u.GetEmailVerifiedAt() != nil {
		verified = u.GetEmailVerifiedAt().AsTime().Format(time.RFC3339)
	}
	fmt.Fprintf(a.out, "ID:       %s\nName:     %s\nEmail:    %s\nRole:     %s\nVerified: %s\n",
		u.GetId(), u.GetName(), u.GetEmail(), u.GetRole(), verified)
	return nil
}

func (a *App) Sessions(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.api.Sessions(ctx)
	if err != nil {
		return a.authFailure(ctx, err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tLAST SEEN\tREMEMBERED\t")
	for _, s := range list {
		id := s.GetId()
		if s.GetCurrent() {
			id += " *"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t\n", id,
			s.GetCreatedAt().AsTime().Format(time.RFC3339), s.GetUpdatedAt().AsTime().Format(time.RFC3339), s.GetRemembered())
	}
	return tw.Flush()
}

func (a *App) Kill(ctx context.Context, args []string) error {
	id, err := a.argOrPrompt(args, "Enter session id")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.api.KillSession(ctx, id); err != nil {
		return a.authFailure(ctx, err)
	}
	fmt.Fprintln(a.out, "Session revoked.")
	return nil
}

func (a *App) KillAll(ctx context.Context, _ []string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	n, err := a.api.KillSessions(ctx)
	if err != nil {
		return a.authFailure(ctx, err)
	}
	fmt.Fprintf(a.out, "Revoked %d session(s).\n", n)

	// the current session was among them
	a.email = ""
	return a.auth.Forget(ctx)
}

// authFailure forgets local tokens the server no longer accepts.
func (a *App) authFailure(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn() {
		a.email = ""
		if ferr := a.auth.Forget(ctx); ferr != nil {
			return errors.Join(err, ferr)
		}
		return fmt.Errorf("%w (please log in again)", err)
	}
	return err
}
