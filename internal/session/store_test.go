package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/models"
	"github.com/dmitrijs2005/blogkeeper/internal/repositories/credentials"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ---- fake user API ----

// fakeUserAPI implements UserAPI for unit tests, recording last-call
// arguments and returning canned results.
type fakeUserAPI struct {
	LoginResp *models.LoginResponse
	LoginErr  error
	LastLogin models.LoginRequest

	RegisterResp *models.User
	RegisterErr  error

	LogoutErr    error
	LogoutCalled bool

	CurrentResp *models.User
	CurrentErr  error

	UpdateResp *models.User
	UpdateErr  error
	LastUpdate models.ProfileUpdate

	AvatarErr  error
	LastAvatar string
}

func (f *fakeUserAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.LastLogin = req
	return f.LoginResp, f.LoginErr
}

func (f *fakeUserAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	return f.RegisterResp, f.RegisterErr
}

func (f *fakeUserAPI) Logout(ctx context.Context) error {
	f.LogoutCalled = true
	return f.LogoutErr
}

func (f *fakeUserAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.CurrentResp, f.CurrentErr
}

func (f *fakeUserAPI) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	f.LastUpdate = req
	return f.UpdateResp, f.UpdateErr
}

func (f *fakeUserAPI) UpdateAvatar(ctx context.Context, avatarURL string) error {
	f.LastAvatar = avatarURL
	return f.AvatarErr
}

func newStore(t *testing.T, api *fakeUserAPI) (*Store, credentials.Repository) {
	t.Helper()
	creds := credentials.NewMemoryRepository()
	return NewStore(context.Background(), api, creds, logging.NewNop()), creds
}

func credValue(t *testing.T, creds credentials.Repository, key string) []byte {
	t.Helper()
	v, err := creds.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// ---- lifecycle ----

func TestNewStore_StartsAnonymous(t *testing.T) {
	s, _ := newStore(t, &fakeUserAPI{})
	require.Equal(t, StateAnonymous, s.State())
	require.False(t, s.IsAuthenticated())
	require.False(t, s.IsAdmin())
}

func TestNewStore_RestoresPersistedToken_Pending(t *testing.T) {
	creds := credentials.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, common.CredentialKeyToken, []byte("persisted")))

	s := NewStore(ctx, &fakeUserAPI{}, creds, logging.NewNop())
	require.Equal(t, StatePending, s.State())
	require.False(t, s.IsAuthenticated())
}

func TestLogin_Success_AuthenticatesAndPersists(t *testing.T) {
	api := &fakeUserAPI{LoginResp: &models.LoginResponse{
		Token: "tok-1",
		User:  models.User{ID: "u-1", Username: "alice"},
	}}
	s, creds := newStore(t, api)

	resp, err := s.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "tok-1", resp.Token)
	require.Equal(t, "alice", api.LastLogin.Username)

	require.Equal(t, StateAuthenticated, s.State())
	require.True(t, s.IsAuthenticated())
	require.Equal(t, []byte("tok-1"), credValue(t, creds, common.CredentialKeyToken))
	require.Equal(t, []byte("u-1"), credValue(t, creds, common.CredentialKeyUserID))
}

func TestLogin_Failure_KeepsPriorState(t *testing.T) {
	api := &fakeUserAPI{LoginErr: errors.New("bad credentials")}
	s, creds := newStore(t, api)

	_, err := s.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})
	require.Error(t, err)
	require.Equal(t, StateAnonymous, s.State())
	require.Nil(t, credValue(t, creds, common.CredentialKeyToken))
}

func TestFetchCurrentUser_NoToken_NoOp(t *testing.T) {
	api := &fakeUserAPI{CurrentResp: &models.User{ID: "u-1"}}
	s, _ := newStore(t, api)

	u, err := s.FetchCurrentUser(context.Background())
	require.NoError(t, err)
	require.Nil(t, u)
	require.Equal(t, StateAnonymous, s.State())
}

func TestFetchCurrentUser_Success_Authenticates(t *testing.T) {
	creds := credentials.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, common.CredentialKeyToken, []byte("persisted")))

	api := &fakeUserAPI{CurrentResp: &models.User{ID: "u-1", Username: "alice"}}
	s := NewStore(ctx, api, creds, logging.NewNop())

	u, err := s.FetchCurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "u-1", u.ID)
	require.Equal(t, StateAuthenticated, s.State())
	require.Equal(t, []byte("u-1"), credValue(t, creds, common.CredentialKeyUserID))
}

func TestFetchCurrentUser_Failure_DropsToAnonymousAndErases(t *testing.T) {
	creds := credentials.NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, creds.Set(ctx, common.CredentialKeyToken, []byte("stale")))
	require.NoError(t, creds.Set(ctx, common.CredentialKeyUserID, []byte("u-1")))

	api := &fakeUserAPI{CurrentErr: errors.New("unauthorized")}
	s := NewStore(ctx, api, creds, logging.NewNop())

	_, err := s.FetchCurrentUser(ctx)
	require.Error(t, err)
	require.Equal(t, StateAnonymous, s.State())
	require.Nil(t, credValue(t, creds, common.CredentialKeyToken))
	require.Nil(t, credValue(t, creds, common.CredentialKeyUserID))
}

func TestLogout_ClearsEvenWhenServerCallFails(t *testing.T) {
	api := &fakeUserAPI{
		LoginResp: &models.LoginResponse{Token: "tok", User: models.User{ID: "u-1"}},
		LogoutErr: errors.New("server error"),
	}
	s, creds := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginRequest{Username: "a", Password: "b"})
	require.NoError(t, err)

	err = s.Logout(ctx)
	require.Error(t, err)
	require.True(t, api.LogoutCalled)

	// post-condition: anonymous, nothing persisted
	require.Equal(t, StateAnonymous, s.State())
	require.False(t, s.IsAuthenticated())
	require.Nil(t, credValue(t, creds, common.CredentialKeyToken))
	require.Nil(t, credValue(t, creds, common.CredentialKeyUserID))
}

func TestUpdateProfile_NotAuthenticated_NoOp(t *testing.T) {
	api := &fakeUserAPI{UpdateResp: &models.User{ID: "u-1"}}
	s, _ := newStore(t, api)

	u, err := s.UpdateProfile(context.Background(), models.ProfileUpdate{Nickname: "x"})
	require.NoError(t, err)
	require.Nil(t, u)
	require.Empty(t, api.LastUpdate.Nickname)
}

func TestUpdateProfile_ReplacesHeldUser(t *testing.T) {
	api := &fakeUserAPI{
		LoginResp:  &models.LoginResponse{Token: "tok", User: models.User{ID: "u-1", Nickname: "old"}},
		UpdateResp: &models.User{ID: "u-1", Nickname: "new"},
	}
	s, _ := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginRequest{})
	require.NoError(t, err)

	u, err := s.UpdateProfile(ctx, models.ProfileUpdate{Nickname: "new"})
	require.NoError(t, err)
	require.Equal(t, "new", u.Nickname)
	require.Equal(t, "new", s.CurrentUser().Nickname)
}

func TestUpdateAvatar_PatchesInPlace(t *testing.T) {
	api := &fakeUserAPI{
		LoginResp: &models.LoginResponse{Token: "tok", User: models.User{ID: "u-1"}},
	}
	s, _ := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginRequest{})
	require.NoError(t, err)

	require.NoError(t, s.UpdateAvatar(ctx, "http://img/new.png"))
	require.Equal(t, "http://img/new.png", api.LastAvatar)
	require.Equal(t, "http://img/new.png", s.CurrentUser().AvatarURL)
}

func TestIsAdmin_RequiresAdminRole(t *testing.T) {
	api := &fakeUserAPI{LoginResp: &models.LoginResponse{
		Token: "tok",
		User:  models.User{ID: "u-1", Roles: []string{"USER"}},
	}}
	s, _ := newStore(t, api)
	ctx := context.Background()

	_, err := s.Login(ctx, models.LoginRequest{})
	require.NoError(t, err)
	require.False(t, s.IsAdmin())

	api.LoginResp.User.Roles = []string{"USER", "ADMIN"}
	_, err = s.Login(ctx, models.LoginRequest{})
	require.NoError(t, err)
	require.True(t, s.IsAdmin())
}

func TestInvalidate_DropsInMemorySession(t *testing.T) {
	api := &fakeUserAPI{LoginResp: &models.LoginResponse{Token: "tok", User: models.User{ID: "u-1"}}}
	s, _ := newStore(t, api)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	s.Invalidate()
	require.Equal(t, StateAnonymous, s.State())
	require.Nil(t, s.CurrentUser())
}

func TestSubscribe_NotifiedOnChange(t *testing.T) {
	api := &fakeUserAPI{LoginResp: &models.LoginResponse{Token: "tok", User: models.User{ID: "u-1"}}}
	s, _ := newStore(t, api)

	calls := 0
	s.Subscribe(func() { calls++ })

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	s.Invalidate()
	require.Equal(t, 2, calls)
}

// ---- token claims ----

func TestTokenInfo_NoSession(t *testing.T) {
	s, _ := newStore(t, &fakeUserAPI{})
	_, err := s.TokenInfo()
	require.ErrorIs(t, err, common.ErrNoSession)
}

func TestTokenInfo_ParsesClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u-1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	require.NoError(t, err)

	api := &fakeUserAPI{LoginResp: &models.LoginResponse{Token: raw, User: models.User{ID: "u-1"}}}
	s, _ := newStore(t, api)

	_, err = s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	info, err := s.TokenInfo()
	require.NoError(t, err)
	require.Equal(t, "u-1", info.Subject)
	require.Equal(t, exp.Unix(), info.ExpiresAt.Unix())
}

func TestTokenInfo_NotAJWT(t *testing.T) {
	api := &fakeUserAPI{LoginResp: &models.LoginResponse{Token: "opaque", User: models.User{ID: "u-1"}}}
	s, _ := newStore(t, api)

	_, err := s.Login(context.Background(), models.LoginRequest{})
	require.NoError(t, err)

	_, err = s.TokenInfo()
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
