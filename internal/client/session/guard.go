package session

import "github.com/dmitrijs2005/memberdesk/internal/common"

// RequireAuth redirects anonymous users to the login route.
func (s *Store) RequireAuth() bool {
	if !s.State().IsAuthenticated {
		s.navigate(common.RouteLogin)
		return false
	}
	return true
}

// RequireAdmin additionally sends authenticated non-admins to the
// unauthorized page.
func (s *Store) RequireAdmin() bool {
	st := s.State()
	if !st.IsAuthenticated {
		s.navigate(common.RouteLogin)
		return false
	}
	if !st.IsAdmin() {
		s.navigate(common.RouteUnauthorized)
		return false
	}
	return true
}

func (s *Store) navigate(route string) {
	if s.nav != nil {
		s.nav.Navigate(route)
	}
}
