package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sellhub/internal/client/errmap"
	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// secret reads a password: without echo on a terminal, as a plain line
// otherwise (piped input).
func (a *App) secret(prompt string) (string, error) {
	if !a.ttyIn {
		return getSimpleText(a.reader, prompt, a.out)
	}
	return getPassword(prompt, a.out)
}

// Register shows the sign-up form, validates the passwords locally and
// creates the account. On success the login page is opened; on failure the
// mapped error sentence is shown and the form can be resubmitted.
func (a *App) Register(ctx context.Context) error {
	p := a.palette()

	username, err := getSimpleText(a.reader, "Username (Enter your username)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email (Enter your email)", a.out)
	if err != nil {
		return err
	}
	password, err := a.secret("Password")
	if err != nil {
		return err
	}
	confirm, err := a.secret("Confirm Password")
	if err != nil {
		return err
	}

	creds := models.RegisterCredentials{Username: username, Password: password, Email: email}
	if err := creds.Validate(confirm); err != nil {
		fmt.Fprintln(a.out, p.danger(errmap.Message(err, errmap.Register)))
		return err
	}

	fmt.Fprintln(a.out, p.muted("Creating account..."))
	if err := a.session.Register(ctx, creds); err != nil {
		a.log.Info(ctx, "registration failed", "username", username, "error", err)
		fmt.Fprintln(a.out, p.danger(errmap.Message(err, errmap.Register)))
		return err
	}

	a.log.Info(ctx, "registration succeeded", "username", username)
	return a.Open(ctx, router.PathLogin)
}

// Login shows the sign-in form and authenticates. On success the dashboard
// is opened; on failure the mapped error sentence is shown.
func (a *App) Login(ctx context.Context) error {
	p := a.palette()

	username, err := getSimpleText(a.reader, "Login (Enter your login)", a.out)
	if err != nil {
		return err
	}
	password, err := a.secret("Password")
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, p.muted("Signing in..."))
	if err := a.session.Login(ctx, models.LoginCredentials{Username: username, Password: password}); err != nil {
		a.log.Info(ctx, "login unsuccessful", "username", username, "error", err)
		fmt.Fprintln(a.out, p.danger(errmap.Message(err, errmap.Login)))
		return err
	}

	a.log.Info(ctx, "login successful", "username", username)
	return a.Open(ctx, router.PathDashboard)
}

// Logout forgets the session and opens the home page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, a.palette().danger("Logout failed: "+err.Error()))
		return err
	}
	return a.Open(ctx, router.PathHome)
}

// Refresh re-fetches the signed-in user's profile. A rejected token signs
// the user out.
func (a *App) Refresh(ctx context.Context) error {
	p := a.palette()
	if err := a.session.RefreshUser(ctx); err != nil {
		fmt.Fprintln(a.out, p.danger("Session expired, you have been signed out."))
		a.render(ctx)
		return err
	}
	if st := a.session.State(); st.IsAuthenticated {
		fmt.Fprintln(a.out, p.muted("Profile refreshed: "+st.User.DisplayName()))
	} else {
		fmt.Fprintln(a.out, p.muted("Not signed in."))
	}
	return nil
}

// SignIn is the navbar's sign-in button: a stored token that the server
// still accepts opens the home page, anything else clears the stored
// session and opens the login page.
func (a *App) SignIn(ctx context.Context) error {
	if a.session.Verify(ctx) {
		return a.Open(ctx, router.PathHome)
	}
	return a.Open(ctx, router.PathLogin)
}
