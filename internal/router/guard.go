package router

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/session"
)

// Session is the slice of the session store the guard consults.
type Session interface {
	State() session.State
	IsAuthenticated() bool
	IsAdmin() bool
	FetchCurrentUser(ctx context.Context) (*models.User, error)
}

// Decision is the outcome of a guard check. When Allowed is false, Redirect
// names the route to go to instead; ReturnTo carries the originally intended
// path for a post-login bounce back.
type Decision struct {
	Allowed  bool
	Redirect string
	ReturnTo string
}

type Guard struct {
	sess Session
	log  logging.Logger
}

func NewGuard(sess Session, log logging.Logger) *Guard {
	return &Guard{sess: sess, log: log}
}

// Check decides whether navigation to the route may proceed. A pending
// session (persisted token, user not yet loaded) is resolved before any
// access requirement is evaluated, so a restored session is not bounced to
// login while its profile fetch is still in flight.
func (g *Guard) Check(ctx context.Context, route Route) Decision {
	if (route.RequiresAuth || route.RequiresAdmin) && g.sess.State() == session.StatePending {
		if _, err := g.sess.FetchCurrentUser(ctx); err != nil {
			g.log.Warn(ctx, "session restore failed", "route", route.Name, "error", err)
		}
	}

	if route.RequiresAuth && !g.sess.IsAuthenticated() {
		return Decision{Redirect: RouteLogin, ReturnTo: route.Path}
	}

	if route.RequiresAdmin && !g.sess.IsAdmin() {
		return Decision{Redirect: RouteHome}
	}

	// Unrestricted routes still warm the session up so the UI can show the
	// signed-in state, but a fetch failure does not block navigation.
	if g.sess.State() == session.StatePending {
		if _, err := g.sess.FetchCurrentUser(ctx); err != nil {
			g.log.Warn(ctx, "session restore failed", "route", route.Name, "error", err)
		}
	}

	return Decision{Allowed: true}
}
