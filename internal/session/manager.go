package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/metrics"
	"github.com/PendemixAI/vax-tracker/internal/view"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure a Manager.
type Options struct {
	TTL time.Duration
	// FixedSeed gives every session the same dataset when set.
	FixedSeed *int64
	Logger    *zap.Logger
	Now       func() time.Time
}

// Manager starts and resolves sessions and hands each one its dataset.
type Manager struct {
	store Store
	cache *dataset.Cache
	ttl   time.Duration
	seed  *int64
	log   *zap.Logger

	now     func() time.Time
	newSeed func() int64
}

func NewManager(store Store, cache *dataset.Cache, opts Options) *Manager {
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop()
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Manager{
		store:   store,
		cache:   cache,
		ttl:     ttl,
		seed:    opts.FixedSeed,
		log:     lg,
		now:     now,
		newSeed: dataset.TimeSeed,
	}
}

// Start creates a session and returns it with the cookie token.
func (m *Manager) Start(ctx context.Context) (*Session, string, error) {
	token := uuid.NewString()
	now := m.now()

	seed := m.newSeed()
	if m.seed != nil {
		seed = *m.seed
	}

	s := &Session{
		ID:        uuid.New(),
		TokenHash: HashToken(token),
		Seed:      seed,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	metrics.ObserveSessionStart()
	m.log.Debug("session started", zap.String("session_id", s.ID.String()), zap.Int64("seed", seed))
	return s, token, nil
}

// Resolve finds the live session for token. It returns ErrNotFound or
// ErrExpired when the caller needs a new one.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	s, err := m.store.Find(ctx, HashToken(token))
	if err != nil {
		return nil, err
	}
	if s.Expired(m.now()) {
		return nil, ErrExpired
	}
	return s, nil
}

// ResolveOrStart resolves token, starting a new session when it is missing,
// unknown or expired. The returned token is empty when the existing one is
// still valid.
func (m *Manager) ResolveOrStart(ctx context.Context, token string) (*Session, string, error) {
	s, err := m.Resolve(ctx, token)
	if err == nil {
		return s, "", nil
	}
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrExpired) {
		return nil, "", err
	}
	return m.Start(ctx)
}

// Dataset returns the table for the session's seed, generating it on first
// use.
func (m *Manager) Dataset(ctx context.Context, s *Session) (*dataset.Table, error) {
	return m.cache.Get(ctx, s.Seed)
}

// SaveView remembers st as the session's last view.
func (m *Manager) SaveView(ctx context.Context, s *Session, st view.ViewState) error {
	v := ViewFromState(st)
	if err := m.store.SaveView(ctx, s.ID, v); err != nil {
		return err
	}
	s.LastView = v
	return nil
}

// Prune deletes every expired session.
func (m *Manager) Prune(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx, m.now())
}

// TTL is the lifetime of new sessions.
func (m *Manager) TTL() time.Duration { return m.ttl }
