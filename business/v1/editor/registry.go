package editor

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultIdle is how long an untouched session is kept.
const DefaultIdle = 30 * time.Minute

type entry struct {
	session  *Session
	lastUsed time.Time
}

// Registry keeps the open sessions of the HTTP API by session id. Sessions
// not looked up for longer than idle are dropped with their unsaved edits.
type Registry struct {
	mu       sync.Mutex
	idle     time.Duration
	now      func() time.Time
	sessions map[string]*entry
}

// NewRegistry returns an empty registry. An idle of zero keeps sessions
// until they are closed.
func NewRegistry(idle time.Duration) *Registry {
	return &Registry{
		idle:     idle,
		now:      time.Now,
		sessions: map[string]*entry{},
	}
}

// Open starts a session and registers it under a new id.
func (r *Registry) Open(ctx context.Context, p Params) (string, *Session, error) {
	s, err := Open(ctx, p)
	if err != nil {
		return "", nil, err
	}
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.sweep(now)
	r.sessions[id] = &entry{session: s, lastUsed: now}
	return id, s, nil
}

// Get returns a live session and marks it used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	e, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if r.expired(e, now) {
		delete(r.sessions, id)
		return nil, ErrSessionNotFound
	}
	e.lastUsed = now
	return e.session, nil
}

// Close discards a session and its unsaved edits.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Registry) sweep(now time.Time) {
	for id, e := range r.sessions {
		if r.expired(e, now) {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) expired(e *entry, now time.Time) bool {
	return r.idle > 0 && now.Sub(e.lastUsed) > r.idle
}
