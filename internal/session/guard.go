package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const DefaultBusyTTL = 5 * time.Minute

// ErrBusy is returned by Run when the session already has a query outstanding.
var ErrBusy = errors.New("an analysis is already in progress for this session")

// Guard holds the per-session busy flag: at most one outstanding query per
// session. A flag left behind by a crashed process expires after its TTL.
type Guard interface {
	// Acquire sets the flag and reports whether it was clear. The returned
	// token identifies this holder of the flag.
	Acquire(ctx context.Context, sessionID string) (token string, acquired bool, err error)

	// Release clears the flag if it is still held under token
	Release(ctx context.Context, sessionID, token string) error
}

// BusyKey generates the key of a session's busy flag
func BusyKey(sessionID string) string {
	return fmt.Sprintf("trends:session:%s:busy", sessionID)
}

func newToken() string {
	return uuid.NewString()
}

// Run executes fn while holding the session's busy flag.
func Run(ctx context.Context, g Guard, sessionID string, fn func() error) error {
	token, acquired, err := g.Acquire(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to acquire session flag: %w", err)
	}
	if !acquired {
		return ErrBusy
	}
	defer func() {
		if err := g.Release(context.WithoutCancel(ctx), sessionID, token); err != nil {
			log.Warn().Err(err).Str("session_id", sessionID).Msg("Failed to release session flag")
		}
	}()

	return fn()
}
