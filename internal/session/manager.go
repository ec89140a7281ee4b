package session

import (
	"errors"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/parkview/go-grievance-backend/internal/domain"
)

var (
	// ErrInvalidToken is returned for tokens that fail signature or claim
	// validation.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrSessionNotFound is returned for well-formed tokens whose session no
	// longer exists (logout, expiry, or a process restart).
	ErrSessionNotFound = errors.New("session not found")
)

// Manager issues HS256 bearer tokens and tracks the live sessions behind
// them. Sessions live only in process memory; tokens from a previous process
// are rejected with ErrSessionNotFound even when the signature still checks
// out.
type Manager struct {
	secret []byte
	ttl    time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session

	now func() time.Time // test seam
}

// NewManager returns a Manager signing with secret; sessions expire after
// ttl.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Issue creates a session for user and returns the signed bearer token.
func (m *Manager) Issue(user domain.User) (string, *Session, error) {
	now := m.now().UTC()
	sid := uuid.NewString()

	claims := jwt.MapClaims{
		"sid": sid,
		"sub": user.Username,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
		"iss": "grievance-portal",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, err
	}

	sess := &Session{
		ID:         sid,
		User:       user,
		CreatedAt:  now,
		expiresAt:  now.Add(m.ttl),
		votedPosts: make(map[string]struct{}),
	}

	m.mu.Lock()
	m.sessions[sid] = sess
	m.mu.Unlock()

	return token, sess, nil
}

// Lookup validates a bearer token and returns its live session.
func (m *Manager) Lookup(token string) (*Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, ErrInvalidToken
	}

	m.mu.RLock()
	sess, ok := m.sessions[sid]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if sess.expired(m.now().UTC()) {
		m.mu.Lock()
		delete(m.sessions, sid)
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Revoke ends the session behind token. Revoking an unknown or already
// revoked token is a no-op.
func (m *Manager) Revoke(token string) {
	sess, err := m.Lookup(token)
	if err != nil {
		return
	}
	m.mu.Lock()
	delete(m.sessions, sess.ID)
	m.mu.Unlock()
}
