package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/memberdesk/internal/client/api"
	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeStorage struct {
	mu      sync.Mutex
	entries map[string]string
	clears  int
}

func newFakeStorage(kv ...string) *fakeStorage {
	s := &fakeStorage{entries: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		s.entries[kv[i]] = kv[i+1]
	}
	return s
}

func (s *fakeStorage) get(k string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[k]
}

func (s *fakeStorage) Token(context.Context) (string, error) {
	return s.get(common.StorageKeyAuthToken), nil
}

func (s *fakeStorage) UserID(context.Context) (string, error) {
	return s.get(common.StorageKeyUserID), nil
}

func (s *fakeStorage) Save(_ context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[common.StorageKeyAuthToken] = token
	s.entries[common.StorageKeyUserID] = userID
	return nil
}

func (s *fakeStorage) RemoveToken(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, common.StorageKeyAuthToken)
	return nil
}

func (s *fakeStorage) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = map[string]string{}
	s.clears++
	return nil
}

type fakeAuth struct {
	resp  *api.LoginResponse
	err   error
	calls int
}

func (a *fakeAuth) Login(context.Context, string, string) (*api.LoginResponse, error) {
	a.calls++
	return a.resp, a.err
}

type fakeUsers struct {
	info  map[string]*models.UserAllInfo
	err   error
	calls int
	// before runs ahead of the lookup, letting tests interleave operations.
	before func()
}

func (u *fakeUsers) FetchUserInfo(_ context.Context, id string) (*models.UserAllInfo, error) {
	u.calls++
	if u.before != nil {
		u.before()
	}
	if u.err != nil {
		return nil, u.err
	}
	info, ok := u.info[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return info, nil
}

type fakeNav struct {
	routes []string
}

func (n *fakeNav) Navigate(route string) { n.routes = append(n.routes, route) }

type fakeCache struct{ clears int }

func (c *fakeCache) Clear() { c.clears++ }

func adminInfo(id string) *models.UserAllInfo {
	return &models.UserAllInfo{User: models.User{ID: id, Role: common.RoleAdmin, FirstName: "Asha"}}
}

type fixture struct {
	store   *Store
	storage *fakeStorage
	auth    *fakeAuth
	users   *fakeUsers
	nav     *fakeNav
	cache   *fakeCache
}

func newFixture(storage *fakeStorage) *fixture {
	f := &fixture{
		storage: storage,
		auth:    &fakeAuth{},
		users:   &fakeUsers{info: map[string]*models.UserAllInfo{}},
		nav:     &fakeNav{},
		cache:   &fakeCache{},
	}
	f.store = NewStore(Config{
		Storage:   f.storage,
		Auth:      f.auth,
		Users:     f.users,
		Navigator: f.nav,
		Logger:    logging.Discard(),
	})
	f.store.AddInvalidator(f.cache)
	return f
}

// ---- tests ----

func TestNewStore_StartsLoading(t *testing.T) {
	f := newFixture(newFakeStorage())
	st := f.store.State()
	assert.True(t, st.IsLoading)
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.UserInfo)
}

func TestInitialize_NoUserID_NoNetwork(t *testing.T) {
	f := newFixture(newFakeStorage())

	f.store.Initialize(context.Background())

	assert.Equal(t, State{}, f.store.State())
	assert.Zero(t, f.users.calls)
}

func TestInitialize_Success(t *testing.T) {
	f := newFixture(newFakeStorage(common.StorageKeyUserID, "U1", common.StorageKeyAuthToken, "T1"))
	f.users.info["U1"] = adminInfo("U1")

	f.store.Initialize(context.Background())

	st := f.store.State()
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	assert.Equal(t, "U1", st.UserInfo.User.ID)
	assert.True(t, f.store.IsAdmin())
	assert.Equal(t, "T1", f.storage.get(common.StorageKeyAuthToken))
}

func TestInitialize_FetchFails_ClearsToken(t *testing.T) {
	f := newFixture(newFakeStorage(common.StorageKeyUserID, "U1", common.StorageKeyAuthToken, "T1"))
	f.users.err = errors.New("connection refused")

	f.store.Initialize(context.Background())

	st := f.store.State()
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Nil(t, st.UserInfo)
	assert.Equal(t, "connection refused", st.Error)
	assert.Empty(t, f.storage.get(common.StorageKeyAuthToken))
	assert.Equal(t, "U1", f.storage.get(common.StorageKeyUserID))
}

func TestLogin_Success(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.resp = &api.LoginResponse{Success: true, Token: "T1", User: models.User{ID: "U1"}}
	f.users.info["U1"] = adminInfo("U1")

	info, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "U1", info.User.ID)

	st := f.store.State()
	assert.True(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Empty(t, st.Error)
	assert.Same(t, f.users.info["U1"], st.UserInfo)

	assert.Equal(t, "T1", f.storage.get(common.StorageKeyAuthToken))
	assert.Equal(t, "U1", f.storage.get(common.StorageKeyUserID))
	assert.Equal(t, 1, f.auth.calls)
	assert.Equal(t, 1, f.users.calls)
}

func TestLogin_Failure_PrefersServerMessage(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.err = &transport.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}

	_, err := f.store.Login(context.Background(), "a@b.com", "bad")
	require.Error(t, err)

	var apiErr *transport.APIError
	require.ErrorAs(t, err, &apiErr)
	st := f.store.State()
	assert.Equal(t, "Invalid credentials", st.Error)
	assert.False(t, st.IsAuthenticated)
	assert.False(t, st.IsLoading)
	assert.Zero(t, f.users.calls)
}

func TestLogin_Failure_GenericMessage(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.resp = &api.LoginResponse{Token: "T1", User: models.User{ID: "U1"}}
	f.users.err = errors.New("dial tcp: refused")

	_, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)
	assert.Equal(t, msgLoginFailed, f.store.State().Error)
	// The token was stored before the second round trip failed.
	assert.Equal(t, "T1", f.storage.get(common.StorageKeyAuthToken))
}

func TestLogin_StaleCompletionDropped(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.resp = &api.LoginResponse{Token: "T1", User: models.User{ID: "U1"}}
	f.users.info["U1"] = adminInfo("U1")
	f.users.before = func() {
		f.users.before = nil
		require.NoError(t, f.store.Logout(context.Background()))
	}

	_, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.ErrorIs(t, err, ErrSuperseded)
	assert.Equal(t, State{}, f.store.State())
}

func TestLogout_ResetsAndNavigates(t *testing.T) {
	f := newFixture(newFakeStorage(common.StorageKeyUserID, "U1", common.StorageKeyAuthToken, "T1", "other", "x"))
	f.users.info["U1"] = adminInfo("U1")
	f.store.Initialize(context.Background())
	require.True(t, f.store.State().IsAuthenticated)

	require.NoError(t, f.store.Logout(context.Background()))

	assert.Equal(t, State{}, f.store.State())
	assert.Empty(t, f.storage.get("other"))
	assert.Equal(t, []string{common.RouteLogin}, f.nav.routes)
	assert.Equal(t, 1, f.cache.clears)
}

func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(newFakeStorage(common.StorageKeyUserID, "U1"))

	require.NoError(t, f.store.Logout(context.Background()))
	once := f.store.State()
	require.NoError(t, f.store.Logout(context.Background()))

	assert.Equal(t, once, f.store.State())
	assert.Equal(t, State{}, f.store.State())
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(newFakeStorage())

	name := "Ravi"
	f.store.UpdateUser(models.UserPatch{FirstName: &name})
	assert.Nil(t, f.store.State().UserInfo)
	assert.Zero(t, f.cache.clears)

	f.auth.resp = &api.LoginResponse{Token: "T1", User: models.User{ID: "U1"}}
	original := adminInfo("U1")
	f.users.info["U1"] = original
	_, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	f.store.UpdateUser(models.UserPatch{FirstName: &name})
	assert.Equal(t, "Ravi", f.store.State().UserInfo.User.FirstName)
	assert.Equal(t, "Asha", original.User.FirstName)
	assert.Equal(t, 1, f.cache.clears)
}

func TestClearError(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.err = errors.New("boom")
	_, _ = f.store.Login(context.Background(), "a", "b")
	require.NotEmpty(t, f.store.State().Error)

	f.store.ClearError()
	assert.Empty(t, f.store.State().Error)
}

func TestWatchAdmin_FiresOnChange(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.auth.resp = &api.LoginResponse{Token: "T1", User: models.User{ID: "U1"}}
	f.users.info["U1"] = adminInfo("U1")

	var seen []bool
	stop := f.store.WatchAdmin(func(admin bool) { seen = append(seen, admin) })
	defer stop()

	_, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	role := "member"
	f.store.UpdateUser(models.UserPatch{Role: &role})
	f.store.ClearError()

	assert.Equal(t, []bool{false, true, false}, seen)
}

func TestSubscribe(t *testing.T) {
	f := newFixture(newFakeStorage())

	var states []State
	stop := f.store.Subscribe(func(st State) { states = append(states, st) })
	f.store.Initialize(context.Background())
	stop()
	f.store.ClearError()

	require.Len(t, states, 2)
	assert.True(t, states[0].IsLoading)
	assert.Equal(t, State{}, states[1])
}

func TestGuards(t *testing.T) {
	f := newFixture(newFakeStorage())
	f.store.Initialize(context.Background())

	assert.False(t, f.store.RequireAuth())
	assert.False(t, f.store.RequireAdmin())
	assert.Equal(t, []string{common.RouteLogin, common.RouteLogin}, f.nav.routes)

	f.auth.resp = &api.LoginResponse{Token: "T1", User: models.User{ID: "U1"}}
	f.users.info["U1"] = &models.UserAllInfo{User: models.User{ID: "U1", Role: "member"}}
	_, err := f.store.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	f.nav.routes = nil
	assert.True(t, f.store.RequireAuth())
	assert.False(t, f.store.RequireAdmin())
	assert.Equal(t, []string{common.RouteUnauthorized}, f.nav.routes)
}

func TestForbiddenResponse_LogsOutOnce(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"jwt expired"}`))
	}))
	t.Cleanup(srv.Close)

	storage := newFakeStorage(common.StorageKeyUserID, "U1", common.StorageKeyAuthToken, "T1")
	c, err := transport.New(transport.Config{BaseURL: srv.URL, Tokens: storage, Logger: logging.Discard()})
	require.NoError(t, err)
	nav := &fakeNav{}
	store := NewStore(Config{
		Storage:   storage,
		Auth:      api.New(c).Auth,
		Users:     api.New(c).Core,
		Navigator: nav,
	})
	c.OnForbidden(store.HandleForbidden)

	store.Initialize(context.Background())

	assert.EqualValues(t, 1, hits.Load())
	assert.Equal(t, 1, storage.clears)
	assert.Empty(t, storage.get(common.StorageKeyUserID))
	assert.Empty(t, storage.get(common.StorageKeyAuthToken))
	st := store.State()
	assert.False(t, st.IsAuthenticated)
	assert.Nil(t, st.UserInfo)
	assert.False(t, st.IsLoading)
	assert.Contains(t, st.Error, "jwt expired")
	assert.Equal(t, []string{common.RouteLogin}, nav.routes)
}

func TestLogin_ForbiddenUserInfo_RecordsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/auth/login" {
			_, _ = w.Write([]byte(`{"success":true,"token":"T1","user":{"_id":"U1"}}`))
			return
		}
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"not an admin"}`))
	}))
	t.Cleanup(srv.Close)

	storage := newFakeStorage()
	c, err := transport.New(transport.Config{BaseURL: srv.URL, Tokens: storage, Logger: logging.Discard()})
	require.NoError(t, err)
	nav := &fakeNav{}
	apis := api.New(c)
	store := NewStore(Config{Storage: storage, Auth: apis.Auth, Users: apis.Core, Navigator: nav})
	c.OnForbidden(store.HandleForbidden)

	info, err := store.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSuperseded)
	assert.ErrorIs(t, err, transport.ErrForbidden)
	assert.Nil(t, info)

	st := store.State()
	assert.Equal(t, State{Error: "not an admin"}, st)
	assert.Equal(t, 1, storage.clears)
	assert.Empty(t, storage.get(common.StorageKeyAuthToken))
	assert.Equal(t, []string{common.RouteLogin}, nav.routes)
}
