package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is the fixed session lifetime. Expiry is measured from
// creation and never renewed by use.
const DefaultTTL = 24 * time.Hour

// Identity is the admin a valid token resolves to.
type Identity struct {
	AdminID  uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type entry struct {
	identity Identity
	timer    *time.Timer
}

// Store maps opaque session tokens to admin identities. All state is
// process-local; restarting the server logs every admin out.
type Store struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]entry
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{ttl: ttl, m: make(map[string]entry)}
}

// Create mints a 16-byte random token rendered as hex and schedules its
// fire-once removal after the store TTL.
func (s *Store) Create(id Identity) (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[token] = entry{
		identity: id,
		timer:    time.AfterFunc(s.ttl, func() { s.Destroy(token) }),
	}
	return token, nil
}

// Validate resolves a token to its identity.
func (s *Store) Validate(token string) (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.m[token]
	return e.identity, ok
}

// Destroy removes a token immediately.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.m[token]; ok {
		e.timer.Stop()
		delete(s.m, token)
	}
}
