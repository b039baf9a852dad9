package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
	"github.com/dmitrijs2005/memberdesk/internal/common"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
)

const roleAdmin = common.RoleAdmin

// Config wires a Store to its collaborators.
type Config struct {
	Storage   Storage
	Auth      Authenticator
	Users     UserInfoFetcher
	Navigator Navigator
	Logger    logging.Logger
}

type Store struct {
	storage Storage
	auth    Authenticator
	users   UserInfoFetcher
	nav     Navigator
	log     logging.Logger

	mu         sync.Mutex
	state      State
	generation uint64
	lastAdmin  bool

	nextID        int
	subscribers   map[int]func(State)
	adminWatchers map[int]func(bool)
	invalidators  []Invalidator
}

// NewStore returns a store in the loading state; call Initialize once at
// startup.
func NewStore(cfg Config) *Store {
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		storage:       cfg.Storage,
		auth:          cfg.Auth,
		users:         cfg.Users,
		nav:           cfg.Navigator,
		log:           log.With("component", "session"),
		state:         State{IsLoading: true},
		subscribers:   map[int]func(State){},
		adminWatchers: map[int]func(bool){},
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) IsAdmin() bool {
	return s.State().IsAdmin()
}

// Subscribe registers fn for every state change and immediately delivers
// the current state. The returned func unregisters it.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	st := s.state
	s.mu.Unlock()

	fn(st)
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// WatchAdmin registers fn for changes of the derived admin flag and
// immediately delivers the current value.
func (s *Store) WatchAdmin(fn func(bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.adminWatchers[id] = fn
	admin := s.state.IsAdmin()
	s.mu.Unlock()

	fn(admin)
	return func() {
		s.mu.Lock()
		delete(s.adminWatchers, id)
		s.mu.Unlock()
	}
}

// AddInvalidator registers a cache dropped on logout and on user updates.
func (s *Store) AddInvalidator(inv Invalidator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidators = append(s.invalidators, inv)
}

// begin starts a new operation and returns its generation.
func (s *Store) begin(update func(*State)) uint64 {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	update(&s.state)
	s.mu.Unlock()
	s.notify()
	return gen
}

// commit applies update only if gen is still current.
func (s *Store) commit(gen uint64, update func(*State)) bool {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return false
	}
	update(&s.state)
	s.mu.Unlock()
	s.notify()
	return true
}

func (s *Store) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.generation
}

func (s *Store) mutate(update func(*State)) {
	s.mu.Lock()
	update(&s.state)
	s.mu.Unlock()
	s.notify()
}

// notify delivers the current state outside the lock so callbacks may call
// back into the store.
func (s *Store) notify() {
	s.mu.Lock()
	st := s.state
	subs := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	admin := st.IsAdmin()
	var watchers []func(bool)
	if admin != s.lastAdmin {
		s.lastAdmin = admin
		for _, fn := range s.adminWatchers {
			watchers = append(watchers, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(st)
	}
	for _, fn := range watchers {
		fn(admin)
	}
}

func (s *Store) invalidate() {
	s.mu.Lock()
	invs := append([]Invalidator(nil), s.invalidators...)
	s.mu.Unlock()
	for _, inv := range invs {
		inv.Clear()
	}
}

// Initialize hydrates the session from the persisted user id. Without an id
// the session becomes anonymous without a network call. A failed fetch
// removes the stored token and records the failure in State.Error.
func (s *Store) Initialize(ctx context.Context) {
	userID, err := s.storage.UserID(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to read stored user id", "error", err)
	}
	if userID == "" {
		s.begin(func(st *State) { *st = State{} })
		return
	}

	gen := s.begin(func(st *State) { st.IsLoading = true })

	info, err := s.users.FetchUserInfo(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "failed to fetch user", "user_id", userID, "error", err)
		if !s.current(gen) {
			return
		}
		if rmErr := s.storage.RemoveToken(ctx); rmErr != nil {
			s.log.Error(ctx, "failed to remove stored token", "error", rmErr)
		}
		msg := err.Error()
		if msg == "" {
			msg = msgAuthFailed
		}
		s.commit(gen, func(st *State) { *st = State{Error: msg} })
		return
	}

	if s.commit(gen, func(st *State) { *st = State{UserInfo: info, IsAuthenticated: true} }) {
		s.log.Info(ctx, "session restored", "user_id", userID)
	}
}

// Login authenticates, persists the token and user id, then loads the full
// user record. On failure the session becomes anonymous with the server's
// message (or a generic one) in State.Error, and the error is returned.
func (s *Store) Login(ctx context.Context, email, password string) (*models.UserAllInfo, error) {
	gen := s.begin(func(st *State) {
		st.IsLoading = true
		st.Error = ""
	})

	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, s.fail(ctx, gen, err)
	}
	if !s.current(gen) {
		return nil, ErrSuperseded
	}
	if err := s.storage.Save(ctx, resp.Token, resp.User.ID); err != nil {
		return nil, s.fail(ctx, gen, err)
	}

	info, err := s.users.FetchUserInfo(ctx, resp.User.ID)
	if err != nil {
		return nil, s.fail(ctx, gen, err)
	}

	if !s.commit(gen, func(st *State) { *st = State{UserInfo: info, IsAuthenticated: true} }) {
		return nil, ErrSuperseded
	}
	s.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	return info, nil
}

func (s *Store) fail(ctx context.Context, gen uint64, err error) error {
	msg := transport.ServerMessage(err, msgLoginFailed)
	s.log.Warn(ctx, "login failed", "error", err)
	// A superseded attempt still reports its own failure to the caller.
	s.commit(gen, func(st *State) { *st = State{Error: msg} })
	return err
}

// Logout clears all persisted storage, resets the session, drops registered
// caches and navigates to the login route. Calling it while anonymous is
// harmless. The state is reset even if the storage could not be cleared.
func (s *Store) Logout(ctx context.Context) error {
	return s.reset(ctx, true)
}

// HandleForbidden ends the session; it matches transport.ForbiddenFunc.
// It does not supersede the Initialize or Login whose request was refused,
// so that operation still records its failure in State.Error.
func (s *Store) HandleForbidden(ctx context.Context) {
	s.log.Warn(ctx, "access forbidden, logging out")
	_ = s.reset(ctx, false)
}

func (s *Store) reset(ctx context.Context, supersede bool) error {
	err := s.storage.Clear(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to clear storage", "error", err)
	}
	if supersede {
		s.begin(func(st *State) { *st = State{} })
	} else {
		s.mutate(func(st *State) { *st = State{} })
	}
	s.invalidate()
	s.navigate(common.RouteLogin)
	return err
}

// UpdateUser merges patch into the signed-in user without a network call.
// Without an active session it does nothing.
func (s *Store) UpdateUser(patch models.UserPatch) {
	applied := false
	s.mutate(func(st *State) {
		if st.UserInfo == nil {
			return
		}
		info := *st.UserInfo
		patch.Apply(&info.User)
		st.UserInfo = &info
		applied = true
	})
	if applied {
		s.invalidate()
	}
}

func (s *Store) ClearError() {
	s.mutate(func(st *State) { st.Error = "" })
}
