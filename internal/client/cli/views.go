package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/client/router"
	"github.com/dmitrijs2005/sellhub/internal/client/tokeninfo"
)

type feature struct {
	title       string
	description string
}

// landing is the home page copy.
var landing = struct {
	title       string
	subtitle    string
	description string
	features    []feature
	ctaText     string
	ctaPath     string
}{
	title:       "SellHub",
	subtitle:    "Your All-in-One E-commerce Sales Hub",
	description: "Synchronize, analyze, and optimize your online sales across multiple platforms.",
	features: []feature{
		{
			title:       "Multi-Platform Synchronization",
			description: "Seamlessly sync your sales data from WooCommerce and Shopify in one centralized dashboard.",
		},
		{
			title:       "Refund Analysis & Insights",
			description: "Get AI-powered tips and recommendations on what to change to reduce refunds and improve customer satisfaction.",
		},
		{
			title:       "Restock Prediction",
			description: "Smart predictions about product quantity needed for restocking. Get monthly restock recommendations based on sales patterns.",
		},
	},
	ctaText: "Get Started",
	ctaPath: router.PathRegister,
}

var navLinks = []struct {
	label string
	path  string
}{
	{"Dashboard", "/dashboard"},
	{"Orders", "/orders"},
	{"Refunds", "/refunds"},
	{"Inventory", "/inventory"},
	{"Invoices", "/invoices"},
}

const rule = "----------------------------------------------------------------"

// render writes the navbar and the view for the current path.
func (a *App) render(ctx context.Context) {
	var b strings.Builder
	p := a.palette()
	s := a.session.State()

	renderNavbar(&b, p, s)

	switch a.router.View() {
	case router.ViewHome:
		renderHome(&b, p)
	case router.ViewLogin:
		renderLogin(&b, p)
	case router.ViewRegister:
		renderRegister(&b, p)
	case router.ViewDashboard:
		renderDashboard(&b, p, s, a.now())
	default:
		renderNotFound(&b, p, a.router.Current())
	}

	a.log.Debug(ctx, "rendered", "path", a.router.Current(), "view", string(a.router.View()))
	fmt.Fprint(a.out, b.String())
}

func renderNavbar(w io.Writer, p palette, s models.Session) {
	brand := "/"
	if s.IsAuthenticated {
		brand = router.PathDashboard
	}
	fmt.Fprintf(w, "%s %s", p.accent("SellHub"), p.muted("["+brand+"]"))

	if s.IsAuthenticated {
		links := make([]string, 0, len(navLinks))
		for _, l := range navLinks {
			links = append(links, p.text(l.label)+" "+p.muted(l.path))
		}
		fmt.Fprintf(w, " | %s", strings.Join(links, "  "))
		fmt.Fprintf(w, " | %s %s", p.text(s.User.DisplayName()), p.muted("@"+s.User.Username))
	} else {
		fmt.Fprintf(w, " | %s", p.accent("Sign in"))
	}

	fmt.Fprintf(w, " | %s\n%s\n", themeIndicator(p), p.muted(rule))
}

func themeIndicator(p palette) string {
	if p.theme == models.ThemeLight {
		return p.accent("light") + p.muted("/dark")
	}
	return p.muted("light/") + p.accent("dark")
}

func renderHome(w io.Writer, p palette) {
	fmt.Fprintln(w, p.accent(landing.title))
	fmt.Fprintln(w, p.text(landing.subtitle))
	fmt.Fprintln(w, p.muted(landing.description))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  [ %s ]  %s\n\n", p.accent(landing.ctaText), p.muted("open "+landing.ctaPath))

	for _, f := range landing.features {
		fmt.Fprintf(w, "  * %s\n    %s\n", p.text(f.title), p.muted(f.description))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, p.text("Ready to streamline your e-commerce operations?"))
	fmt.Fprintf(w, "%s  %s\n", p.accent("Already have an account? Sign in"), p.muted("open "+router.PathLogin))
}

func renderLogin(w io.Writer, p palette) {
	fmt.Fprintln(w, p.text("Sign in to your account"))
	fmt.Fprintln(w, p.muted("Welcome back to SellHub"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Type %s to enter your login and password.\n", p.accent("login"))
	fmt.Fprintf(w, "%s %s  %s\n", p.muted("Don't have an account?"), p.accent("Sign up"), p.muted("open "+router.PathRegister))
}

func renderRegister(w io.Writer, p palette) {
	fmt.Fprintln(w, p.text("Create your account"))
	fmt.Fprintln(w, p.muted("Sign up to get started with SellHub"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Type %s to enter your username, email and password.\n", p.accent("register"))
	fmt.Fprintf(w, "%s %s  %s\n", p.muted("Already have an account?"), p.accent("Sign in"), p.muted("open "+router.PathLogin))
}

func renderDashboard(w io.Writer, p palette, s models.Session, now time.Time) {
	fmt.Fprintln(w, p.text("Dashboard"))
	fmt.Fprintln(w, p.muted("Welcome to your SellHub dashboard. More features coming soon!"))
	fmt.Fprintln(w)

	if !s.IsAuthenticated {
		fmt.Fprintln(w, p.muted("You are not signed in."))
		return
	}

	fmt.Fprintf(w, "Signed in as %s (@%s)\n", p.text(s.User.DisplayName()), s.User.Username)

	info, err := tokeninfo.Parse(s.Token)
	switch {
	case err != nil, info.ExpiresAt.IsZero():
		return
	case info.Expired(now):
		fmt.Fprintln(w, p.danger("Session token has expired."))
	default:
		fmt.Fprintf(w, "%s\n", p.muted(fmt.Sprintf("Session expires in %s (%s)",
			info.Remaining(now).Round(time.Minute), info.ExpiresAt.Local().Format(time.RFC1123))))
	}
}

func renderNotFound(w io.Writer, p palette, path string) {
	fmt.Fprintln(w, p.danger("404 - Page Not Found"))
	fmt.Fprintln(w, p.muted("Nothing lives at "+path+"."))
}
