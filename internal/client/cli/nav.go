package cli

import (
	"context"
	"fmt"
	"strings"
)

// Open is a full page load: the path becomes a new history entry, the
// session is re-initialised from storage and the page is rendered.
func (a *App) Open(ctx context.Context, path string) error {
	a.router.Navigate(normalizePath(path))
	a.load(ctx)
	return nil
}

func (a *App) load(ctx context.Context) {
	a.session.Initialize(ctx)
	a.render(ctx)
}

// Back re-renders the previous history entry without reloading the session.
func (a *App) Back(ctx context.Context) error {
	if !a.router.Back() {
		fmt.Fprintln(a.out, a.palette().muted("No previous page."))
		return nil
	}
	a.render(ctx)
	return nil
}

// Forward is the inverse of Back.
func (a *App) Forward(ctx context.Context) error {
	if !a.router.Forward() {
		fmt.Fprintln(a.out, a.palette().muted("No next page."))
		return nil
	}
	a.render(ctx)
	return nil
}

// normalizePath accepts "login" as shorthand for "/login". Anything else is
// kept verbatim so unknown paths still reach the not-found page.
func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
