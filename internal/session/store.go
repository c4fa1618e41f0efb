// Package session holds the client-side record of the current authentication
// token and logged-in user. It is the single source of truth for the
// "authenticated" and "admin" predicates and owns the persisted credential
// record's lifecycle.
package session

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/credentials"
)

// State describes the session lifecycle position.
type State int

const (
	// StateAnonymous: no token, no user.
	StateAnonymous State = iota
	// StatePending: a token is held (typically restored from the persisted
	// record) but the user has not been loaded yet.
	StatePending
	// StateAuthenticated: token and user are both present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// UserAPI is the slice of the transport client the session store needs.
type UserAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error)
	UpdateAvatar(ctx context.Context, avatarURL string) error
}

// Store is the session store. All mutation goes through its methods;
// observers registered with Subscribe are invoked after every state change.
type Store struct {
	api   UserAPI
	creds credentials.Repository
	log   logging.Logger

	mu        sync.RWMutex
	token     string
	user      *models.User
	observers []func()
}

// NewStore builds a Store and restores a persisted token, if any, moving the
// session to the pending state until the user is fetched.
func NewStore(ctx context.Context, api UserAPI, creds credentials.Repository, log logging.Logger) *Store {
	s := &Store{api: api, creds: creds, log: log}
	if tok, err := creds.Get(ctx, common.CredentialKeyToken); err == nil && len(tok) > 0 {
		s.token = string(tok)
	}
	return s
}

// Subscribe registers fn to be called after every session state change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	obs := slices.Clone(s.observers)
	s.mu.RUnlock()
	for _, fn := range obs {
		fn()
	}
}

// Login authenticates against the backend. On success the session becomes
// authenticated and the credential record is persisted; on failure the prior
// state is kept and the error propagated.
func (s *Store) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = resp.Token
	u := resp.User
	s.user = &u
	s.mu.Unlock()

	if err := s.creds.Set(ctx, common.CredentialKeyToken, []byte(resp.Token)); err != nil {
		s.log.Warn(ctx, "failed to persist token", "error", err)
	}
	if resp.User.ID != "" {
		if err := s.creds.Set(ctx, common.CredentialKeyUserID, []byte(resp.User.ID)); err != nil {
			s.log.Warn(ctx, "failed to persist user id", "error", err)
		}
	}

	s.notify()
	return resp, nil
}

// Register creates an account. It does not change session state.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return s.api.Register(ctx, req)
}

// Logout attempts a server-side logout and clears the session regardless of
// the call's outcome: no stale session data may survive, even when the
// network call fails.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	if err != nil {
		s.log.Warn(ctx, "server-side logout failed", "error", err)
	}
	s.clear(ctx)
	return err
}

// FetchCurrentUser loads the user for a held token. Without a token it is a
// no-op returning (nil, nil). On failure the session drops to anonymous and
// the persisted credentials are erased.
func (s *Store) FetchCurrentUser(ctx context.Context) (*models.User, error) {
	s.mu.RLock()
	tok := s.token
	s.mu.RUnlock()
	if tok == "" {
		return nil, nil
	}

	u, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.clear(ctx)
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	if u.ID != "" {
		if err := s.creds.Set(ctx, common.CredentialKeyUserID, []byte(u.ID)); err != nil {
			s.log.Warn(ctx, "failed to persist user id", "error", err)
		}
	}

	s.notify()
	return u, nil
}

// UpdateProfile replaces the held user with the server's returned
// representation. It is a no-op when not authenticated.
func (s *Store) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	if !s.IsAuthenticated() {
		return nil, nil
	}

	u, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()

	s.notify()
	return u, nil
}

// UpdateAvatar uploads a new avatar URL and patches the held user in place.
// It is a no-op when not authenticated.
func (s *Store) UpdateAvatar(ctx context.Context, avatarURL string) error {
	if !s.IsAuthenticated() {
		return nil
	}

	if err := s.api.UpdateAvatar(ctx, avatarURL); err != nil {
		return err
	}

	s.mu.Lock()
	if s.user != nil {
		s.user.AvatarURL = avatarURL
	}
	s.mu.Unlock()

	s.notify()
	return nil
}

// Invalidate drops the in-memory session without touching the server. The
// transport calls it (via the session-expired hook) after a 401 has already
// erased the persisted record.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.notify()
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.creds.Delete(ctx, common.CredentialKeyToken); err != nil {
		s.log.Warn(ctx, "failed to erase token", "error", err)
	}
	if err := s.creds.Delete(ctx, common.CredentialKeyUserID); err != nil {
		s.log.Warn(ctx, "failed to erase user id", "error", err)
	}

	s.notify()
}

// IsAuthenticated holds iff both token and user are present.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// IsAdmin holds iff the current user's roles contain the admin role.
// Absence of a user implies not-admin.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && slices.Contains(s.user.Roles, common.AdminRole)
}

// State reports the lifecycle position derived from token and user presence.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch {
	case s.token == "":
		return StateAnonymous
	case s.user == nil:
		return StatePending
	default:
		return StateAuthenticated
	}
}

// CurrentUser returns a copy of the held user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the held access token, or the empty string.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
