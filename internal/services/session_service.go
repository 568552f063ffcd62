package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"corretoraBack/internal/models"
	"corretoraBack/internal/repositories"
)

var ErrSessionNotFound = errors.New("session not found")

// Session owns everything one browser works with: its listings, the draft
// being edited, the uploaded images and the dialog state.
type Session struct {
	ID       string
	Listings *repositories.PropertyRepository
	Images   *repositories.ImageRepository

	mu         sync.Mutex
	draft      models.Draft
	dialogOpen bool
	flash      string
	lastSeen   time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		Listings: repositories.NewPropertyRepository(),
		Images:   repositories.NewImageRepository(),
		draft:    models.NewDraft(),
		lastSeen: now,
	}
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	d.Features = append([]string{}, s.draft.Features...)
	return d
}

func (s *Session) DialogOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogOpen
}

func (s *Session) SetDialogOpen(open bool) {
	s.mu.Lock()
	s.dialogOpen = open
	s.mu.Unlock()
}

// TakeFlash returns the pending alert message and clears it.
func (s *Session) TakeFlash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.flash
	s.flash = ""
	return msg
}

func (s *Session) SetFlash(msg string) {
	s.mu.Lock()
	s.flash = msg
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// update runs fn with the session locked.
func (s *Session) update(fn func(d *models.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.draft)
}

type SessionService struct {
	TTL time.Duration
	Now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionService(ttl time.Duration) *SessionService {
	return &SessionService{
		TTL:      ttl,
		Now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (s *SessionService) Start(ctx context.Context) *Session {
	sess := newSession(uuid.NewString(), s.Now())

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *SessionService) Get(ctx context.Context, id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	sess.touch(s.Now())
	return sess, true
}

// GetOrStart returns the session for id, starting a new one when id is
// unknown or expired. The bool reports whether a new session was started.
func (s *SessionService) GetOrStart(ctx context.Context, id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(ctx, id); ok {
			return sess, false
		}
	}
	return s.Start(ctx), true
}

// End drops the session and releases every image it holds.
func (s *SessionService) End(ctx context.Context, id string) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	sess.Images.ReleaseAll(ctx)
	return nil
}

// ExpireIdle ends every session idle for longer than TTL and returns how
// many were ended. A zero TTL keeps sessions forever.
func (s *SessionService) ExpireIdle(ctx context.Context, now time.Time) (int, error) {
	if s.TTL <= 0 {
		return 0, nil
	}

	s.mu.Lock()
	var expired []*Session
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.TTL {
			expired = append(expired, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range expired {
		sess.Images.ReleaseAll(ctx)
	}
	return len(expired), ctx.Err()
}

// EndAll ends every session, releasing their images, and returns how many
// were open.
func (s *SessionService) EndAll(ctx context.Context) int {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Images.ReleaseAll(ctx)
	}
	return len(all)
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
