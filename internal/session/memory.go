package session

import (
	"context"
	"sync"
	"time"
)

type memoryFlag struct {
	token     string
	expiresAt time.Time
}

// MemoryGuard keeps busy flags in process. Used when no Redis is configured.
type MemoryGuard struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	flags map[string]memoryFlag
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	if ttl <= 0 {
		ttl = DefaultBusyTTL
	}
	return &MemoryGuard{
		ttl:   ttl,
		now:   time.Now,
		flags: make(map[string]memoryFlag),
	}
}

func (g *MemoryGuard) Acquire(ctx context.Context, sessionID string) (string, bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := BusyKey(sessionID)
	now := g.now()
	if flag, ok := g.flags[key]; ok && now.Before(flag.expiresAt) {
		return "", false, nil
	}

	token := newToken()
	g.flags[key] = memoryFlag{token: token, expiresAt: now.Add(g.ttl)}
	return token, true, nil
}

func (g *MemoryGuard) Release(ctx context.Context, sessionID, token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := BusyKey(sessionID)
	if flag, ok := g.flags[key]; ok && flag.token == token {
		delete(g.flags, key)
	}
	return nil
}

var _ Guard = (*MemoryGuard)(nil)
