// Package members caches the result of the most recent member listing.
//
// The cache cannot tell when the server side changes. Any code path that
// creates or edits members elsewhere must call Clear, or patch the snapshot
// with UpdateMember/AddMember/RemoveMember and accept possible divergence.
package members

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/memberdesk/internal/client/models"
	"github.com/dmitrijs2005/memberdesk/internal/client/transport"
	"github.com/dmitrijs2005/memberdesk/internal/logging"
)

const msgFetchFailed = "Failed to fetch members"

// State is a snapshot of the cache. LastQuery is nil when the cached
// listing was unfiltered.
type State struct {
	Members   []models.User
	Total     int
	IsLoading bool
	Error     string
	LastQuery *string
}

// Lister fetches a member listing; a nil query means no filter.
type Lister interface {
	ListUsers(ctx context.Context, query *string) (*models.UserList, error)
}

type Store struct {
	lister Lister
	log    logging.Logger

	mu         sync.Mutex
	state      State
	generation uint64
}

func NewStore(lister Lister, log logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		lister: lister,
		log:    log.With("component", "members"),
		state:  emptyState(),
	}
}

func emptyState() State {
	return State{Members: []models.User{}}
}

// State returns a copy of the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() State {
	st := s.state
	st.Members = append([]models.User(nil), s.state.Members...)
	if st.Members == nil {
		st.Members = []models.User{}
	}
	if s.state.LastQuery != nil {
		q := *s.state.LastQuery
		st.LastQuery = &q
	}
	return st
}

// Fetch replaces the cache with the listing for query. A failure keeps the
// previous members and records the message in State.Error. A fetch
// overtaken by a newer Fetch or Clear leaves the state alone. The returned
// value is the snapshot after the call.
func (s *Store) Fetch(ctx context.Context, query *string) State {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	list, err := s.lister.ListUsers(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.log.Debug(ctx, "dropping stale member listing", "generation", gen)
		return s.snapshot()
	}
	if err != nil {
		s.log.Error(ctx, "failed to fetch members", "error", err)
		s.state.IsLoading = false
		s.state.Error = transport.ServerMessage(err, msgFetchFailed)
		return s.snapshot()
	}

	var lastQuery *string
	if query != nil {
		q := *query
		lastQuery = &q
	}
	s.state = State{
		Members:   append([]models.User{}, list.Users...),
		Total:     list.Total,
		LastQuery: lastQuery,
	}
	s.log.Debug(ctx, "members fetched", "count", len(list.Users), "total", list.Total, "filtered", lastQuery != nil)
	return s.snapshot()
}

func (s *Store) FetchAll(ctx context.Context) State {
	return s.Fetch(ctx, nil)
}

func (s *Store) Search(ctx context.Context, query string) State {
	return s.Fetch(ctx, &query)
}

// Clear resets the cache and discards any fetch still in flight.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.state = emptyState()
}

// UpdateMember patches the cached member with id, if present.
func (s *Store) UpdateMember(id string, patch models.UserPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make([]models.User, len(s.state.Members))
	copy(members, s.state.Members)
	for i := range members {
		if members[i].ID == id {
			patch.Apply(&members[i])
		}
	}
	s.state.Members = members
}

// AddMember puts m at the head of the cache. A cached member with the same
// id is replaced in place so ids stay unique.
func (s *Store) AddMember(m models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.state.Members {
		if existing.ID == m.ID {
			members := append([]models.User(nil), s.state.Members...)
			members[i] = m
			s.state.Members = members
			return
		}
	}
	s.state.Members = append([]models.User{m}, s.state.Members...)
	s.state.Total++
}

// RemoveMember drops the cached member with id, if present.
func (s *Store) RemoveMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make([]models.User, 0, len(s.state.Members))
	for _, m := range s.state.Members {
		if m.ID != id {
			members = append(members, m)
		}
	}
	if len(members) != len(s.state.Members) {
		s.state.Total--
	}
	s.state.Members = members
}
