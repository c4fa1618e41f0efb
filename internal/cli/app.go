// Package cli implements the interactive terminal client. Commands are
// dispatched through the navigation guard so access rules match the routes
// they correspond to.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/blogkeeper/internal/api"
	"github.com/dmitrijs2005/blogkeeper/internal/config"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/credentials"
	"github.com/dmitrijs2005/blogkeeper/internal/router"
	"github.com/dmitrijs2005/blogkeeper/internal/session"
	"github.com/dmitrijs2005/blogkeeper/internal/stores"
)

type App struct {
	config        *config.Config
	log           logging.Logger
	api           *api.Client
	session       *session.Store
	articles      *stores.ArticleStore
	notifications *stores.NotificationStore
	guard         *router.Guard
	forms         *formValidator
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := credentials.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)

	out := os.Stdout
	opts := []api.Option{
		api.WithTimeout(cfg.RequestTimeout),
		api.WithNotifier(NewConsoleNotifier(out)),
		api.WithProgress(api.PromProgress{}),
		api.WithLogger(log),
	}
	if cfg.CookieHeader != "" {
		opts = append(opts, api.WithCookieSource(func() string { return cfg.CookieHeader }))
	}
	client := api.New(cfg.ServerBaseURL, creds, opts...)

	sess := session.NewStore(ctx, client, creds, log)
	client.OnSessionExpired(func() {
		sess.Invalidate()
		fmt.Fprintln(out, "You have been signed out. Use 'login' to sign in again.")
	})

	return &App{
		config:        cfg,
		log:           log,
		api:           client,
		session:       sess,
		articles:      stores.NewArticleStore(client, log),
		notifications: stores.NewNotificationStore(client, log),
		guard:         router.NewGuard(sess, log),
		forms:         newFormValidator(),
		reader:        bufio.NewReader(os.Stdin),
		out:           out,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return u.Username
	}
	if a.session.State() == session.StatePending {
		return "restoring"
	}
	return "guest"
}

// navigate runs a guard check for the command's route. A redirect to the
// login route prompts the user to sign in; other redirects are reported.
func (a *App) navigate(ctx context.Context, name string) bool {
	route := router.Lookup(name)
	d := a.guard.Check(ctx, route)
	if d.Allowed {
		return true
	}
	switch d.Redirect {
	case router.RouteLogin:
		fmt.Fprintln(a.out, "Please sign in first ('login').")
	default:
		fmt.Fprintln(a.out, "You do not have access to that.")
	}
	return false
}
