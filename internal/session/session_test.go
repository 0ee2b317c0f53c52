package session_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PendemixAI/vax-tracker/internal/dataset"
	"github.com/PendemixAI/vax-tracker/internal/db"
	"github.com/PendemixAI/vax-tracker/internal/export"
	"github.com/PendemixAI/vax-tracker/internal/session"
	"github.com/PendemixAI/vax-tracker/internal/view"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newManager(t *testing.T, store session.Store, seed *int64) (*session.Manager, *clock, *int32) {
	t.Helper()
	var builds int32
	cache := dataset.NewCache(4, func(s int64) *dataset.Table {
		atomic.AddInt32(&builds, 1)
		return dataset.NewTable(s, nil)
	})
	c := &clock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := session.NewManager(store, cache, session.Options{TTL: time.Hour, FixedSeed: seed, Now: c.now})
	return m, c, &builds
}

func TestHashToken(t *testing.T) {
	a, b := session.HashToken("token"), session.HashToken("token")
	if a != b || len(a) != 64 {
		t.Fatalf("expected stable 64-char hash, got %q and %q", a, b)
	}
	if session.HashToken("other") == a {
		t.Error("different tokens hashed equal")
	}
}

func TestManager_StartAndResolve(t *testing.T) {
	store := session.NewMemoryStore()
	m, _, _ := newManager(t, store, nil)
	ctx := context.Background()

	s, token, err := m.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if token == "" || s.TokenHash == token {
		t.Fatal("token must be returned and stored only as a hash")
	}

	got, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.ID != s.ID || got.Seed != s.Seed {
		t.Errorf("resolved a different session: %+v vs %+v", got, s)
	}

	if _, err := m.Resolve(ctx, "unknown"); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestManager_ExpiredSessionIsReplaced(t *testing.T) {
	m, c, _ := newManager(t, session.NewMemoryStore(), nil)
	ctx := context.Background()

	s, token, _ := m.Start(ctx)
	c.t = c.t.Add(2 * time.Hour)

	if _, err := m.Resolve(ctx, token); !errors.Is(err, session.ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
	fresh, newToken, err := m.ResolveOrStart(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if newToken == "" || fresh.ID == s.ID {
		t.Error("expected a new session for an expired token")
	}

	n, err := m.Prune(ctx)
	if err != nil || n != 1 {
		t.Errorf("expected 1 pruned session, got %d, %v", n, err)
	}
}

func TestManager_ResolveOrStartKeepsLiveSession(t *testing.T) {
	m, _, _ := newManager(t, session.NewMemoryStore(), nil)
	ctx := context.Background()
	s, token, _ := m.Start(ctx)

	got, newToken, err := m.ResolveOrStart(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if newToken != "" || got.ID != s.ID {
		t.Errorf("expected the existing session, got new token %q", newToken)
	}
}

func TestManager_FixedSeedSharesDataset(t *testing.T) {
	seed := int64(77)
	m, _, builds := newManager(t, session.NewMemoryStore(), &seed)
	ctx := context.Background()

	a, _, _ := m.Start(ctx)
	b, _, _ := m.Start(ctx)
	if a.Seed != 77 || b.Seed != 77 {
		t.Fatalf("expected fixed seed, got %d and %d", a.Seed, b.Seed)
	}
	ta, _ := m.Dataset(ctx, a)
	tb, _ := m.Dataset(ctx, b)
	if ta != tb || *builds != 1 {
		t.Errorf("expected one shared table, got %d builds", *builds)
	}
}

func TestManager_SaveView(t *testing.T) {
	m, _, _ := newManager(t, session.NewMemoryStore(), nil)
	ctx := context.Background()
	s, token, _ := m.Start(ctx)

	st := view.ViewState{
		Country:  "JAPAN",
		Region:   "ASIA",
		TopN:     7,
		Compare:  []string{"JAPAN", "CHINA"},
		Download: export.Top50,
	}
	if err := m.SaveView(ctx, s, st); err != nil {
		t.Fatal(err)
	}
	got, _ := m.Resolve(ctx, token)
	if !reflect.DeepEqual(got.LastView.State(), st) {
		t.Errorf("expected %+v, got %+v", st, got.LastView.State())
	}
	if (session.View{}).State().Country != "" {
		t.Error("empty view should yield the zero state")
	}
}

// TestGormStore runs against a real database when DATABASE_URL is set.
func TestGormStore(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping Postgres session store test")
	}
	gdb, err := db.Connect(dsn, nil)
	if err != nil {
		t.Fatal(err)
	}
	store := session.NewGormStore(gdb)
	if err := store.Migrate(); err != nil {
		t.Fatal(err)
	}

	m, c, _ := newManager(t, store, nil)
	ctx := context.Background()
	s, token, err := m.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SaveView(ctx, s, view.ViewState{Country: "PERU", Compare: []string{"PERU", "CHILE"}}); err != nil {
		t.Fatal(err)
	}
	got, err := m.Resolve(ctx, token)
	if err != nil {
		t.Fatal(err)
	}
	if got.LastView.Country != "PERU" || len(got.LastView.Compare) != 2 {
		t.Errorf("unexpected stored view: %+v", got.LastView)
	}

	c.t = c.t.Add(2 * time.Hour)
	if n, err := m.Prune(ctx); err != nil || n < 1 {
		t.Errorf("expected the session to be pruned, got %d, %v", n, err)
	}
}
