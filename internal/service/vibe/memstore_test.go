package vibe

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

// memStore is an in-memory store for concurrency tests. RunInTx serializes
// transactions; data access is guarded separately so reads outside a
// transaction proceed concurrently with it.
type memStore struct {
	txMu sync.Mutex

	mu      sync.Mutex
	users   map[uuid.UUID]*domain.User
	posts   map[uuid.UUID]*domain.VibePost
	pulses  map[pulseKey]struct{}
	remixes map[uuid.UUID][]*domain.RemixEntry
}

type pulseKey struct {
	post uuid.UUID
	user uuid.UUID
	kind domain.ReactionKind
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]*domain.User{},
		posts:   map[uuid.UUID]*domain.VibePost{},
		pulses:  map[pulseKey]struct{}{},
		remixes: map[uuid.UUID][]*domain.RemixEntry{},
	}
}

func notFound(id uuid.UUID) error {
	return fmt.Errorf("vibe_post %s: %w", id, domain.ErrNotFound)
}

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx)
}

// users

type memUsers struct{ *memStore }

func (m memUsers) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

// vibes

type memVibes struct{ *memStore }

func (m memVibes) Create(ctx context.Context, p *domain.VibePost) (*domain.VibePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.posts[p.ID] = &cp
	out := cp
	return &out, nil
}

func (m memVibes) GetByID(ctx context.Context, id uuid.UUID) (*domain.VibePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, notFound(id)
	}
	cp := *p
	return &cp, nil
}

func (m memVibes) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.posts[id]
	return ok, nil
}

func (m memVibes) LockByID(ctx context.Context, id uuid.UUID) error {
	_, err := m.GetByID(ctx, id)
	return err
}

func (m memVibes) List(ctx context.Context, f domain.VibeFilter) ([]*domain.VibePost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.VibePost, 0, len(m.posts))
	for _, p := range m.posts {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m memVibes) IncrementRemixCount(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return notFound(id)
	}
	p.RemixCount++
	return nil
}

// pulses

type memPulses struct{ *memStore }

func (m memPulses) Toggle(ctx context.Context, postID, userID uuid.UUID, kind domain.ReactionKind) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := pulseKey{post: postID, user: userID, kind: kind}
	if _, ok := m.pulses[k]; ok {
		delete(m.pulses, k)
		return false, nil
	}
	m.pulses[k] = struct{}{}
	return true, nil
}

func (m memPulses) CountsByPostIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]map[domain.ReactionKind]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := map[uuid.UUID]map[domain.ReactionKind]int{}
	for k := range m.pulses {
		if !want[k.post] {
			continue
		}
		if out[k.post] == nil {
			out[k.post] = map[domain.ReactionKind]int{}
		}
		out[k.post][k.kind]++
	}
	return out, nil
}

// remixes

type memRemixes struct{ *memStore }

func (m memRemixes) Create(ctx context.Context, e *domain.RemixEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.remixes[e.PostID] = append(m.remixes[e.PostID], &cp)
	return nil
}

func (m memRemixes) ListByPostID(ctx context.Context, postID uuid.UUID) ([]*domain.RemixEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.RemixEntry, len(m.remixes[postID]))
	copy(out, m.remixes[postID])
	return out, nil
}
