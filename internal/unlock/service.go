// Package unlock holds the session-scoped access gate for login-required
// portfolio rows. The shared password is compared server-side and a
// successful unlock is remembered per session token in Redis with a TTL.
//
// This gate is obfuscation, not a security boundary: the password is a
// single shared secret handed out by the portfolio owner. Treat it as UI
// gating with a server-side memory, nothing more.
package unlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tokenKeyPrefix = "unlock:token:"

var (
	// ErrWrongPassword is returned on a failed unlock attempt.
	ErrWrongPassword = errors.New("wrong password")
	// ErrUnavailable is returned when the session store cannot be
	// reached; the gate fails closed.
	ErrUnavailable = errors.New("session store unavailable")
)

// Service verifies the shared secret and tracks unlocked sessions.
type Service struct {
	rdb      *redis.Client
	password string
	ttl      time.Duration
}

func New(rdb *redis.Client, password string, ttl time.Duration) *Service {
	return &Service{rdb: rdb, password: password, ttl: ttl}
}

// Configured reports whether an unlock password is set at all. Without
// one, gated rows simply stay locked.
func (s *Service) Configured() bool {
	return s.password != ""
}

// TTL returns the session lifetime.
func (s *Service) TTL() time.Duration { return s.ttl }

// Unlock checks the submitted password against the shared secret with
// an exact, case-sensitive comparison. On a match it issues a fresh
// session token valid for the configured TTL.
func (s *Service) Unlock(ctx context.Context, password string) (string, error) {
	if !s.Configured() || password != s.password {
		return "", ErrWrongPassword
	}
	if s.rdb == nil {
		return "", ErrUnavailable
	}

	token := uuid.NewString()
	if err := s.rdb.Set(ctx, tokenKeyPrefix+token, "1", s.ttl).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return token, nil
}

// Unlocked reports whether the given session token is currently valid.
// Any failure (empty token, expired, store down) reads as locked.
func (s *Service) Unlocked(ctx context.Context, token string) bool {
	if token == "" || s.rdb == nil {
		return false
	}
	ok, err := s.rdb.Exists(ctx, tokenKeyPrefix+token).Result()
	return err == nil && ok > 0
}
