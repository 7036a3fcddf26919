package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/mattn/go-isatty"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette paints text with ANSI colours for the active theme. When disabled
// (output is not a terminal) text is returned unchanged.
type palette struct {
	enabled bool
	theme   models.Theme
}

func (a *App) palette() palette {
	return palette{enabled: a.color, theme: a.theme}
}

func (p palette) paint(code, s string) string {
	if !p.enabled {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func (p palette) accent(s string) string {
	if p.theme == models.ThemeLight {
		return p.paint("1;34", s)
	}
	return p.paint("1;36", s)
}

func (p palette) text(s string) string {
	if p.theme == models.ThemeLight {
		return p.paint("30", s)
	}
	return p.paint("97", s)
}

func (p palette) muted(s string) string {
	return p.paint("90", s)
}

func (p palette) danger(s string) string {
	return p.paint("31", s)
}

func (a *App) loadTheme(ctx context.Context) {
	t, err := a.store.Theme(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading stored theme failed", "error", err)
	}
	a.theme = t
}

// ToggleTheme switches between light and dark and persists the choice.
func (a *App) ToggleTheme(ctx context.Context) error {
	next := a.theme.Toggle()
	if err := a.store.SetTheme(ctx, next); err != nil {
		a.log.Error(ctx, "saving theme failed", "error", err)
		fmt.Fprintln(a.out, a.palette().danger("Could not save theme: "+err.Error()))
		return err
	}
	a.theme = next
	fmt.Fprintln(a.out, a.palette().muted("Theme: "+string(next)))
	return nil
}
