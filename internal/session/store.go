package session

import (
	"context"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrExpired  = errors.New("session expired")
)

// Store persists sessions keyed by token hash.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Find(ctx context.Context, tokenHash string) (*Session, error)
	SaveView(ctx context.Context, id uuid.UUID, v View) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// HashToken is the stored form of a cookie token.
func HashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	byHash map[string]*Session
	byID   map[uuid.UUID]*Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byHash: make(map[string]*Session),
		byID:   make(map[uuid.UUID]*Session),
	}
}

func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	cp.LastView.Compare = append(cp.LastView.Compare[:0:0], s.LastView.Compare...)
	m.byHash[s.TokenHash] = &cp
	m.byID[s.ID] = &cp
	return nil
}

func (m *MemoryStore) Find(ctx context.Context, tokenHash string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byHash[tokenHash]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	cp.LastView.Compare = append(cp.LastView.Compare[:0:0], s.LastView.Compare...)
	return &cp, nil
}

func (m *MemoryStore) SaveView(ctx context.Context, id uuid.UUID, v View) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	v.Compare = append(v.Compare[:0:0], v.Compare...)
	s.LastView = v
	return nil
}

func (m *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for hash, s := range m.byHash {
		if s.Expired(now) {
			delete(m.byHash, hash)
			delete(m.byID, s.ID)
			n++
		}
	}
	return n, nil
}
