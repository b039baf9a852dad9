package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
)

// Login prompts for credentials and signs in through the session store.
// A failure is reported with the message the session recorded.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	info, err := a.session.Login(ctx, email, password)
	if err != nil {
		a.log.Debug(ctx, "login failed", "error", err)
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", a.session.State().Error)
		a.session.ClearError()
		return nil
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", info.User.FullName())
	if !a.session.IsAdmin() {
		fmt.Fprintln(a.out, "Note: this account is not an administrator; most commands will be refused.")
	}
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the signed-in user and what the stored token claims.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if st.UserInfo == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := st.UserInfo.User
	fmt.Fprintf(a.out, "%s <%s>\n", u.FullName(), u.Email)
	fmt.Fprintf(a.out, "  id:    %s\n", u.ID)
	fmt.Fprintf(a.out, "  role:  %s\n", u.Role)
	fmt.Fprintf(a.out, "  admin: %t\n", st.IsAdmin())

	token, err := a.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	claims, err := transport.InspectToken(token)
	if err != nil {
		fmt.Fprintln(a.out, "  token: not a readable JWT")
		return nil
	}
	if claims.ExpiresAt.IsZero() {
		fmt.Fprintln(a.out, "  token: no expiry")
		return nil
	}
	state := "valid"
	if claims.Expired(time.Now()) {
		state = "expired"
	}
	fmt.Fprintf(a.out, "  token: %s until %s\n", state, claims.ExpiresAt.Format(time.RFC3339))
	return nil
}
