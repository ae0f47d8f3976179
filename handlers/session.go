package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/notblessy/cryptotracker/dashboard"
)

const sessionCookie = "session_id"

// Session is one visitor's dashboard state. Render passes and events for a
// session are serialized through its lock.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	state    dashboard.State
	lastSeen time.Time
}

// Update runs fn with exclusive access to the session state.
func (s *Session) Update(fn func(state *dashboard.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	s.lastSeen = time.Now()
}

func (s *Session) State() dashboard.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[uuid.UUID]*Session)}
}

// Get returns the caller's session, starting a new one and setting the
// cookie when the request carries no known session id.
func (st *SessionStore) Get(c echo.Context) *Session {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			st.mu.Lock()
			sess, ok := st.sessions[id]
			st.mu.Unlock()
			if ok {
				return sess
			}
		}
	}

	sess := &Session{
		ID:       uuid.New(),
		state:    dashboard.NewState(),
		lastSeen: time.Now(),
	}
	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and reports how many
// were removed.
func (st *SessionStore) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, sess := range st.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
