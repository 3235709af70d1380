package adminclient

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"
)

// Admin is the signed-in principal as returned by /api/auth.
type Admin struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SessionData is what a SessionStore persists.
type SessionData struct {
	Token     string `json:"token"`
	Admin     *Admin `json:"admin,omitempty"`
	ExpiresAt int64  `json:"expiresAt"`
}

type SessionStore interface {
	Load() (*SessionData, error)
	Save(*SessionData) error
	Clear() error
}

// Session holds the bearer token for one admin. It is passed explicitly to
// the Client; there is no process-wide token.
type Session struct {
	mu    sync.RWMutex
	data  SessionData
	store SessionStore
	now   func() time.Time
}

// NewSession restores any saved session from store. A nil store keeps the
// session in memory only.
func NewSession(store SessionStore) (*Session, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	s := &Session{store: store, now: time.Now}
	saved, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if saved != nil {
		s.data = *saved
	}
	return s, nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.expiredLocked() {
		return ""
	}
	return s.data.Token
}

func (s *Session) Admin() *Admin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.Admin == nil {
		return nil
	}
	a := *s.data.Admin
	return &a
}

func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(s.data.ExpiresAt, 0)
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) expiredLocked() bool {
	return s.data.ExpiresAt > 0 && !s.now().Before(time.Unix(s.data.ExpiresAt, 0))
}

func (s *Session) Set(token string, admin *Admin, expiresAt time.Time) error {
	data := SessionData{Token: token, Admin: admin}
	if !expiresAt.IsZero() {
		data.ExpiresAt = expiresAt.Unix()
	}
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	return s.store.Save(&data)
}

func (s *Session) Clear() error {
	s.mu.Lock()
	s.data = SessionData{}
	s.mu.Unlock()
	return s.store.Clear()
}

// =========================
// Stores
// =========================

type MemoryStore struct {
	mu   sync.Mutex
	data *SessionData
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load() (*SessionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	d := *m.data
	return &d, nil
}

func (m *MemoryStore) Save(d *SessionData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *d
	m.data = &cp
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// FileStore keeps the session as JSON on disk, readable by the owner only.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (f *FileStore) Load() (*SessionData, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var d SessionData
	if err := sonic.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	return &d, nil
}

func (f *FileStore) Save(d *SessionData) error {
	raw, err := sonic.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, raw, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
