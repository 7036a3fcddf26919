package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/sellhub/internal/client/client"
	"github.com/dmitrijs2005/sellhub/internal/client/config"
	"github.com/dmitrijs2005/sellhub/internal/client/models"
	"github.com/dmitrijs2005/sellhub/internal/client/router"
	"github.com/dmitrijs2005/sellhub/internal/client/services"
	"github.com/dmitrijs2005/sellhub/internal/client/store"
	"github.com/dmitrijs2005/sellhub/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	api     client.Client
	store   *store.Store
	session *services.SessionManager
	router  *router.Router
	theme   models.Theme
	color   bool
	ttyIn   bool
	reader  *bufio.Reader
	out     io.Writer
	log     logging.Logger
	now     func() time.Time
}

// NewApp opens the local database at c.DatabasePath and builds an App talking
// to the API at c.APIURL on the process's stdin/stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := store.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, fmt.Errorf("open database: %w", err)
	}

	a := newApp(db, client.NewHTTPClient(c.APIURL, log), os.Stdin, os.Stdout, log)
	a.config = c
	a.color = isTerminal(os.Stdout)
	a.ttyIn = isTerminal(os.Stdin)
	return a, nil
}

func newApp(db *sql.DB, api client.Client, in io.Reader, out io.Writer, log logging.Logger) *App {
	st := store.New(db)
	return &App{
		db:      db,
		api:     api,
		store:   st,
		session: services.NewSessionManager(api, st, log),
		router:  router.New(router.DefaultRoutes(), router.PathHome),
		theme:   models.DefaultTheme,
		reader:  bufio.NewReader(in),
		out:     out,
		log:     log,
		now:     time.Now,
	}
}

// Run loads the start page and serves commands until the user exits, input
// ends or ctx is cancelled. The database is closed on return.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.session.Subscribe(func(s models.Session) {
		a.log.Debug(ctx, "session changed",
			"authenticated", s.IsAuthenticated,
			"loading", s.IsLoading,
			"user", s.User.DisplayName(),
		)
	})
	a.loadTheme(ctx)

	printlnFn("Welcome to SellHub (type 'help' for commands)")
	a.load(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// getStatus renders the prompt status: current path and, when signed in,
// the user's name.
func (a *App) getStatus() string {
	s := a.router.Current()
	if st := a.session.State(); st.IsAuthenticated {
		s = s + " " + st.User.DisplayName()
	}
	return fmt.Sprintf("(%s)", s)
}

// Health pings the API and reports whether it is reachable.
func (a *App) Health(ctx context.Context) error {
	p := a.palette()
	if err := a.api.Ping(ctx); err != nil {
		a.log.Warn(ctx, "health check failed", "error", err)
		fmt.Fprintln(a.out, p.danger("Server unavailable: "+err.Error()))
		return err
	}
	fmt.Fprintln(a.out, p.accent("Server is up."))
	return nil
}
